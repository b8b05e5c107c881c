package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/tools"
	"pocketpay.backend/internal/config"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/metrics"
	"pocketpay.backend/pkg/utils"
)

const (
	// maxAgentRounds caps the number of tool-use iterations per request
	maxAgentRounds = 6

	// maxSessionNameLen bounds the session name derived from the first message
	maxSessionNameLen = 35
)

// EmitFunc delivers one streaming event to the client
type EmitFunc func(eventType, content string)

// AiChatUsecase runs the payment assistant: an OpenAI-compatible tool-calling
// loop over the transfer-intent tool, with transcripts persisted per session.
type AiChatUsecase struct {
	aiChatRepo repositories.AiChatRepository
	friendRepo repositories.FriendRepository
	chainRepo  repositories.ChainRepository
	tokenRepo  repositories.TokenRepository
	cfg        config.AIConfig
	httpClient *http.Client
}

// NewAiChatUsecase creates a new AI chat usecase
func NewAiChatUsecase(
	aiChatRepo repositories.AiChatRepository,
	friendRepo repositories.FriendRepository,
	chainRepo repositories.ChainRepository,
	tokenRepo repositories.TokenRepository,
	cfg config.AIConfig,
) *AiChatUsecase {
	return &AiChatUsecase{
		aiChatRepo: aiChatRepo,
		friendRepo: friendRepo,
		chainRepo:  chainRepo,
		tokenRepo:  tokenRepo,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SetHTTPClient overrides the completion transport, used by tests
func (u *AiChatUsecase) SetHTTPClient(client *http.Client) {
	u.httpClient = client
}

// ListSessions returns the caller's session index
func (u *AiChatUsecase) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error) {
	return u.aiChatRepo.ListSessions(ctx, accountID)
}

// Transcript returns the full message history of one session
func (u *AiChatUsecase) Transcript(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error) {
	return u.aiChatRepo.ListBySession(ctx, accountID, sessionID)
}

// sessionNameFrom derives a display name from the first user message.
// Truncation counts runes so a multi-byte character is never split.
func sessionNameFrom(content string) string {
	name := strings.Join(strings.Fields(content), " ")
	if runes := []rune(name); len(runes) > maxSessionNameLen {
		name = string(runes[:maxSessionNameLen])
	}
	return name
}

// chatMessage is one entry of the OpenAI-compatible messages array
type chatMessage map[string]any

type completionToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Role      string               `json:"role"`
			Content   string               `json:"content"`
			ToolCalls []completionToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

const assistantSystemPrompt = `You are the payment assistant of a peer-to-peer payments app. ` +
	`You help the user send money to their contacts. ` +
	`When the user expresses a transfer intent, call resolve_transfer_intent to turn it into transaction parameters. ` +
	`Relay the tool's transaction_info payload to the user so the app can execute it. ` +
	`If the tool returns an error, explain the problem in one short sentence. ` +
	`You cannot move funds yourself and you must never invent wallet addresses, token contracts or contacts.`

// Chat runs one assistant round trip: the user message is persisted, the
// agent loop runs with the transfer-intent tool, the final answer is streamed
// through emit and persisted. The session name is fixed by the first user
// message of the session.
func (u *AiChatUsecase) Chat(ctx context.Context, accountID, sessionID uuid.UUID, content string, emit EmitFunc) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domainerrors.BadRequest("message content is required")
	}
	if u.cfg.APIKey == "" {
		return domainerrors.NewAppError(http.StatusServiceUnavailable, "assistant is not configured", errors.New("missing AI api key"))
	}

	history, err := u.aiChatRepo.ListBySession(ctx, accountID, sessionID)
	if err != nil {
		return err
	}

	sessionName := sessionNameFrom(content)
	if len(history) > 0 {
		sessionName = history[0].SessionName
	}

	if err := u.aiChatRepo.Append(ctx, &entities.AiChatMessage{
		ID:          utils.GenerateUUIDv7(),
		SessionID:   sessionID,
		AccountID:   accountID,
		SessionName: sessionName,
		Role:        "user",
		Content:     content,
		CreatedAt:   time.Now(),
	}); err != nil {
		return err
	}

	tool := NewTransferIntentTool(u.friendRepo, u.chainRepo, u.tokenRepo, accountID)
	toolRegistry := map[string]tools.Tool{
		tool.Name(): tool,
	}
	toolDefs := []map[string]any{
		buildToolDef(tool.Name(), tool.Description(), map[string]any{
			"chain":     map[string]any{"type": "string", "description": "Network name, e.g. base, ethereum, polygon"},
			"token":     map[string]any{"type": "string", "description": "Token symbol, e.g. ETH, USDC"},
			"recipient": map[string]any{"type": "string", "description": "Contact username or email"},
			"amount":    map[string]any{"type": "string", "description": "Decimal amount to send"},
		}, []string{"recipient", "amount"}),
	}

	messages := []chatMessage{
		{"role": "system", "content": assistantSystemPrompt},
	}
	for _, m := range history {
		if m.Role == "user" || m.Role == "assistant" {
			messages = append(messages, chatMessage{"role": m.Role, "content": m.Content})
		}
	}
	messages = append(messages, chatMessage{"role": "user", "content": content})

	var finalAnswer string
	for round := 0; round < maxAgentRounds; round++ {
		started := time.Now()
		resp, err := u.complete(ctx, messages, toolDefs)
		metrics.AssistantRoundDuration.WithLabelValues(u.cfg.Model).Observe(time.Since(started).Seconds())
		if err != nil {
			emit("error", "assistant is unavailable, try again later")
			return nil
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			finalAnswer = msg.Content
			break
		}

		messages = append(messages, chatMessage{
			"role":       "assistant",
			"content":    msg.Content,
			"tool_calls": msg.ToolCalls,
		})

		// some models repeat a tool_call_id within one response
		seenCallIDs := make(map[string]bool)
		for _, tc := range msg.ToolCalls {
			if seenCallIDs[tc.ID] {
				continue
			}
			seenCallIDs[tc.ID] = true

			var toolResult string
			if t, ok := toolRegistry[tc.Function.Name]; ok {
				toolResult, err = t.Call(ctx, tc.Function.Arguments)
				if err != nil {
					toolResult = "Error: " + err.Error()
				}
				emit("tool_call", tc.Function.Name)
			} else {
				toolResult = "Unknown tool: " + tc.Function.Name
			}

			messages = append(messages, chatMessage{
				"role":         "tool",
				"tool_call_id": tc.ID,
				"content":      toolResult,
			})
		}
	}

	if finalAnswer == "" {
		emit("error", "assistant could not produce an answer")
		return nil
	}

	emit("token", finalAnswer)

	if err := u.aiChatRepo.Append(ctx, &entities.AiChatMessage{
		ID:          utils.GenerateUUIDv7(),
		SessionID:   sessionID,
		AccountID:   accountID,
		SessionName: sessionName,
		Role:        "assistant",
		Content:     finalAnswer,
		CreatedAt:   time.Now(),
	}); err != nil {
		return err
	}

	emit("done", sessionID.String())
	return nil
}

// complete performs one OpenAI-compatible chat completion call
func (u *AiChatUsecase) complete(ctx context.Context, messages []chatMessage, toolDefs []map[string]any) (*completionResponse, error) {
	body, err := json.Marshal(map[string]any{
		"model":    u.cfg.Model,
		"messages": messages,
		"tools":    toolDefs,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(u.cfg.BaseURL, "/")+"/chat/completions",
		bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+u.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("completion endpoint returned " + resp.Status)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("completion response has no choices")
	}
	return &parsed, nil
}

// buildToolDef constructs an OpenAI-compatible tool definition
func buildToolDef(name, description string, properties map[string]any, required []string) map[string]any {
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        name,
			"description": description,
			"parameters": map[string]any{
				"type":       "object",
				"properties": properties,
				"required":   required,
			},
		},
	}
}
