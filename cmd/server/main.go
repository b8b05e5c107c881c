package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pocketpay.backend/internal/config"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/infrastructure/blockchain"
	"pocketpay.backend/internal/infrastructure/jobs"
	"pocketpay.backend/internal/infrastructure/repositories"
	"pocketpay.backend/internal/interfaces/http/handlers"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/internal/usecases"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/jwt"
	"pocketpay.backend/pkg/logger"
	"pocketpay.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	identityRepo := repositories.NewIdentityRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	directoryRepo := repositories.NewDirectoryRepository(db)
	paymentRequestRepo := repositories.NewPaymentRequestRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	aiChatRepo := repositories.NewAiChatRepository(db)
	chainRepo := repositories.NewChainRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize provider token verifier. Without a public key only guest
	// login works.
	var verifier *identity.Verifier
	var providerVerifier usecases.ProviderVerifier
	if cfg.Provider.PublicKey != "" {
		verifier, err = identity.NewVerifier(cfg.Provider.Issuer, cfg.Provider.AppID, cfg.Provider.PublicKey)
		if err != nil {
			return fmt.Errorf("failed to initialize provider verifier: %w", err)
		}
		providerVerifier = verifier
	} else {
		log.Println("⚠️ AUTH_PROVIDER_PUBLIC_KEY not set, provider logins disabled")
	}

	// Initialize blockchain client factory
	clientFactory := blockchain.NewClientFactory(map[int64]string{
		1:    cfg.Blockchain.EthereumRPC,
		8453: cfg.Blockchain.BaseRPC,
		137:  cfg.Blockchain.PolygonRPC,
	})

	// Seed the chain and token registry
	if err := seedRegistry(context.Background(), chainRepo, tokenRepo, cfg.Blockchain); err != nil {
		log.Printf("⚠️ Registry seeding failed: %v", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(accountRepo, identityRepo, providerVerifier, jwtService, sessionStore)
	accountUsecase := usecases.NewAccountUsecase(accountRepo, identityRepo)
	friendUsecase := usecases.NewFriendUsecase(friendRepo, accountRepo)
	searchUsecase := usecases.NewContactSearchUsecase(directoryRepo, friendRepo)
	paymentRequestUsecase := usecases.NewPaymentRequestUsecase(paymentRequestRepo, friendRepo, accountRepo)
	transactionUsecase := usecases.NewTransactionUsecase(transactionRepo, paymentRequestRepo, accountRepo, uow)
	chatUsecase := usecases.NewChatUsecase(chatRepo, accountRepo)
	aiChatUsecase := usecases.NewAiChatUsecase(aiChatRepo, friendRepo, chainRepo, tokenRepo, cfg.AI)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	friendHandler := handlers.NewFriendHandler(friendUsecase, searchUsecase)
	paymentRequestHandler := handlers.NewPaymentRequestHandler(paymentRequestUsecase)
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	aiChatHandler := handlers.NewAiChatHandler(aiChatUsecase)
	chainHandler := handlers.NewChainHandler(chainRepo, tokenRepo)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, verifier, authUsecase.ResolveSubject)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	verificationJob := jobs.NewTxVerificationJob(transactionRepo, clientFactory, cfg.Blockchain.VerifyInterval, cfg.Blockchain.VerifyBatch)
	go verificationJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		accountHandler:        accountHandler,
		friendHandler:         friendHandler,
		paymentRequestHandler: paymentRequestHandler,
		transactionHandler:    transactionHandler,
		chatHandler:           chatHandler,
		aiChatHandler:         aiChatHandler,
		chainHandler:          chainHandler,
		authMiddleware:        authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		verificationJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 PocketPay Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func seedRegistry(ctx context.Context, chainRepo *repositories.ChainRepositoryImpl, tokenRepo *repositories.TokenRepositoryImpl, cfg config.BlockchainConfig) error {
	chains := []*entities.Chain{
		{ID: uuid.New(), ChainID: 1, Name: "Ethereum", RPCURL: cfg.EthereumRPC, IsActive: true},
		{ID: uuid.New(), ChainID: 8453, Name: "Base", RPCURL: cfg.BaseRPC, IsActive: true},
		{ID: uuid.New(), ChainID: 137, Name: "Polygon", RPCURL: cfg.PolygonRPC, IsActive: true},
	}
	for _, chain := range chains {
		if err := chainRepo.Create(ctx, chain); err != nil {
			return err
		}
	}

	zeroAddress := "0x0000000000000000000000000000000000000000"
	tokens := []*entities.Token{
		{ID: uuid.New(), ChainID: 1, Symbol: "ETH", Name: "Ether", Decimals: 18, ContractAddress: zeroAddress, IsNative: true},
		{ID: uuid.New(), ChainID: 1, Symbol: "USDC", Name: "USD Coin", Decimals: 6, ContractAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"},
		{ID: uuid.New(), ChainID: 1, Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, ContractAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"},
		{ID: uuid.New(), ChainID: 1, Symbol: "WBTC", Name: "Wrapped Bitcoin", Decimals: 8, ContractAddress: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"},
		{ID: uuid.New(), ChainID: 8453, Symbol: "ETH", Name: "Ether", Decimals: 18, ContractAddress: zeroAddress, IsNative: true},
		{ID: uuid.New(), ChainID: 8453, Symbol: "USDC", Name: "USD Coin", Decimals: 6, ContractAddress: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"},
		{ID: uuid.New(), ChainID: 8453, Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, ContractAddress: "0x4200000000000000000000000000000000000006"},
		{ID: uuid.New(), ChainID: 137, Symbol: "POL", Name: "Polygon Ecosystem Token", Decimals: 18, ContractAddress: zeroAddress, IsNative: true},
		{ID: uuid.New(), ChainID: 137, Symbol: "USDC", Name: "USD Coin", Decimals: 6, ContractAddress: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"},
		{ID: uuid.New(), ChainID: 137, Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, ContractAddress: "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"},
		{ID: uuid.New(), ChainID: 137, Symbol: "WBTC", Name: "Wrapped Bitcoin", Decimals: 8, ContractAddress: "0x1BFD67037B42Cf73acF2047067bd4F2C47D9BfD6"},
	}
	for _, token := range tokens {
		if err := tokenRepo.Create(ctx, token); err != nil {
			return err
		}
	}
	return nil
}
