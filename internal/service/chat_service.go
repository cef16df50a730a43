package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

const defaultChatSystemPrompt = "You are the travel assistant for an " +
	"agency website. Answer questions about destinations, packages and " +
	"deals in a friendly, concise tone. If a question is unrelated to " +
	"travel, politely steer the visitor back to trip planning."

// chatCompleter is the slice of the OpenAI client the service uses; tests
// substitute a fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type ChatReply struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// ChatService proxies the public chat widget to the model provider. The
// widget resends its full history on each turn; the server holds no state
// beyond minting a session id for first-time callers.
type ChatService struct {
	client       chatCompleter
	model        string
	systemPrompt string
}

func NewChatService(apiKey, baseURL, model, systemPrompt string) *ChatService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if systemPrompt == "" {
		systemPrompt = defaultChatSystemPrompt
	}
	return &ChatService{
		client:       openai.NewClientWithConfig(cfg),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (s *ChatService) Converse(ctx context.Context, sessionID string, history []domain.ChatMessage) (*ChatReply, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: messages cannot be empty", ErrValidation)
	}
	last := history[len(history)-1]
	if last.Role != domain.ChatRoleUser || strings.TrimSpace(last.Content) == "" {
		return nil, fmt.Errorf("%w: the last message must be a non-empty user turn", ErrValidation)
	}

	if strings.TrimSpace(sessionID) == "" {
		sessionID = uuid.NewString()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
		User:     sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChatUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: provider returned no choices", ErrChatUpstream)
	}

	return &ChatReply{
		Reply:     resp.Choices[0].Message.Content,
		SessionID: sessionID,
	}, nil
}
