package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/metrics"
)

// TransferIntentTool resolves a natural-language money-transfer intent into
// the concrete parameters a client needs to build the transaction: the
// recipient's wallet, the chain id and the token contract. It implements the
// langchaingo tools.Tool interface.
//
// Every failure is returned as a structured JSON payload with a nil Go error.
// The agent relays tool output to the model verbatim, so an error string must
// be something the model can explain to the user, not a stack of wrapped
// causes.
type TransferIntentTool struct {
	friendRepo repositories.FriendRepository
	chainRepo  repositories.ChainRepository
	tokenRepo  repositories.TokenRepository
	callerID   uuid.UUID
}

// NewTransferIntentTool creates the tool bound to the calling account. Only
// the caller's own contacts are resolvable as recipients.
func NewTransferIntentTool(
	friendRepo repositories.FriendRepository,
	chainRepo repositories.ChainRepository,
	tokenRepo repositories.TokenRepository,
	callerID uuid.UUID,
) *TransferIntentTool {
	return &TransferIntentTool{
		friendRepo: friendRepo,
		chainRepo:  chainRepo,
		tokenRepo:  tokenRepo,
		callerID:   callerID,
	}
}

func (t *TransferIntentTool) Name() string { return "resolve_transfer_intent" }

func (t *TransferIntentTool) Description() string {
	return `Resolve a money transfer intent into transaction parameters. ` +
		`Input must be a JSON string with keys "chain" (network name like "base", "ethereum" or "polygon"), ` +
		`"token" (symbol like "ETH" or "USDC"), "recipient" (the contact's username or email) and ` +
		`"amount" (decimal amount as a string). ` +
		`Returns transaction_info JSON the client can execute, or an error payload describing what could not be resolved.`
}

type transferIntentInput struct {
	Chain     string `json:"chain"`
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type transferIntentResult struct {
	Type             string `json:"type"`
	RecipientID      string `json:"recipientId"`
	RecipientName    string `json:"recipientName"`
	RecipientAddress string `json:"recipientAddress"`
	ChainID          int64  `json:"chainId"`
	ChainName        string `json:"chainName"`
	TokenSymbol      string `json:"tokenSymbol"`
	TokenAddress     string `json:"tokenAddress"`
	Decimals         int    `json:"decimals"`
	IsNative         bool   `json:"isNative"`
	Amount           string `json:"amount"`
}

func toolError(message string) string {
	payload, _ := json.Marshal(map[string]string{
		"type":  "error",
		"error": message,
	})
	return string(payload)
}

// Call resolves the intent. The chain is matched by name against the active
// chain registry, the recipient against the caller's contacts by exact
// username or email, and the token by symbol on the resolved chain.
func (t *TransferIntentTool) Call(ctx context.Context, input string) (string, error) {
	result, outcome := t.resolve(ctx, input)
	metrics.AssistantToolCalls.WithLabelValues(t.Name(), outcome).Inc()
	return result, nil
}

func (t *TransferIntentTool) resolve(ctx context.Context, input string) (string, string) {
	var intent transferIntentInput
	if err := json.Unmarshal([]byte(input), &intent); err != nil {
		return toolError("input must be a JSON object with chain, token, recipient and amount"), "bad_input"
	}
	if intent.Recipient == "" {
		return toolError("recipient is required"), "bad_input"
	}
	if intent.Amount == "" {
		return toolError("amount is required"), "bad_input"
	}

	chains, err := t.chainRepo.List(ctx)
	if err != nil {
		return toolError("chain registry is unavailable, try again later"), "registry_error"
	}
	chainName := strings.ToLower(strings.TrimSpace(intent.Chain))
	if chainName == "" {
		chainName = "base"
	}
	var chainID int64
	var resolvedChain string
	for _, chain := range chains {
		if strings.ToLower(chain.Name) == chainName {
			chainID = chain.ChainID
			resolvedChain = chain.Name
			break
		}
	}
	if chainID == 0 {
		return toolError("unsupported chain \"" + intent.Chain + "\", supported chains are Base, Ethereum and Polygon"), "unknown_chain"
	}

	symbol := strings.ToUpper(strings.TrimSpace(intent.Token))
	if symbol == "" {
		symbol = "ETH"
	}
	token, err := t.tokenRepo.GetBySymbol(ctx, symbol, chainID)
	if err != nil {
		return toolError("token \"" + symbol + "\" is not registered on " + resolvedChain), "unknown_token"
	}

	contacts, err := t.friendRepo.List(ctx, t.callerID)
	if err != nil {
		return toolError("contact list is unavailable, try again later"), "registry_error"
	}
	recipient := strings.TrimSpace(intent.Recipient)
	recipientLower := strings.ToLower(recipient)
	var matched *struct {
		id       uuid.UUID
		username string
		wallet   string
	}
	for _, contact := range contacts {
		if contact.Username == recipient || strings.ToLower(contact.Email) == recipientLower {
			matched = &struct {
				id       uuid.UUID
				username string
				wallet   string
			}{contact.AccountID, contact.Username, contact.WalletAddress}
			break
		}
	}
	if matched == nil {
		return toolError("no contact named \"" + recipient + "\" found, the recipient must be in your contact list"), "unknown_recipient"
	}
	if matched.wallet == "" {
		return toolError("contact \"" + matched.username + "\" has no wallet linked"), "no_wallet"
	}

	payload, _ := json.Marshal(transferIntentResult{
		Type:             "transaction_info",
		RecipientID:      matched.id.String(),
		RecipientName:    matched.username,
		RecipientAddress: matched.wallet,
		ChainID:          chainID,
		ChainName:        resolvedChain,
		TokenSymbol:      token.Symbol,
		TokenAddress:     token.ContractAddress,
		Decimals:         token.Decimals,
		IsNative:         token.IsNative,
		Amount:           intent.Amount,
	})
	return string(payload), "resolved"
}
