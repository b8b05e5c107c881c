package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Provider   ProviderConfig
	AI         AIConfig
	Blockchain BlockchainConfig
	Security   SecurityConfig
}

// SecurityConfig holds encryption material for server-side sessions
type SecurityConfig struct {
	SessionEncryptionKey string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds first-party token configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ProviderConfig holds the external auth provider's verification settings.
// The public key is the PEM the provider publishes for its ES256 tokens.
type ProviderConfig struct {
	Issuer    string
	AppID     string
	PublicKey string
}

// AIConfig holds the OpenAI-compatible completion endpoint settings
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// BlockchainConfig holds RPC endpoints and the verification job cadence
type BlockchainConfig struct {
	EthereumRPC    string
	BaseRPC        string
	PolygonRPC     string
	VerifyInterval time.Duration
	VerifyBatch    int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "pocketpay"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Provider: ProviderConfig{
			Issuer:    getEnv("AUTH_PROVIDER_ISSUER", "privy.io"),
			AppID:     getEnv("AUTH_PROVIDER_APP_ID", ""),
			PublicKey: getEnv("AUTH_PROVIDER_PUBLIC_KEY", ""),
		},
		AI: AIConfig{
			BaseURL: getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("AI_API_KEY", ""),
			Model:   getEnv("AI_MODEL", "gpt-4o-mini"),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "6368616e67652d746869732d33322d62797465732d6b65792d696e2d70726f64"),
		},
		Blockchain: BlockchainConfig{
			EthereumRPC:    getEnv("ETHEREUM_RPC_URL", "https://eth.llamarpc.com"),
			BaseRPC:        getEnv("BASE_RPC_URL", "https://mainnet.base.org"),
			PolygonRPC:     getEnv("POLYGON_RPC_URL", "https://polygon-rpc.com"),
			VerifyInterval: getEnvAsDuration("TX_VERIFY_INTERVAL", time.Minute),
			VerifyBatch:    getEnvAsInt("TX_VERIFY_BATCH", 50),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
