package service

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
)

type fakeCompleter struct {
	lastReq openai.ChatCompletionRequest
	reply   string
	err     error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
		},
	}, nil
}

func newTestChat(completer chatCompleter) *ChatService {
	svc := NewChatService("test-key", "", "gpt-4o-mini", "")
	svc.client = completer
	return svc
}

func TestConverseMintsSessionID(t *testing.T) {
	fake := &fakeCompleter{reply: "Bali is lovely in May."}
	svc := newTestChat(fake)

	reply, err := svc.Converse(context.Background(), "", []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "When should I visit Bali?"},
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if reply.SessionID == "" {
		t.Fatal("no session id minted for first-time caller")
	}
	if reply.Reply != "Bali is lovely in May." {
		t.Fatalf("reply = %q", reply.Reply)
	}
}

func TestConverseKeepsSessionID(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	svc := newTestChat(fake)

	reply, err := svc.Converse(context.Background(), "session-42", []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if reply.SessionID != "session-42" {
		t.Fatalf("session id = %q, want the caller's", reply.SessionID)
	}
}

func TestConversePrependsSystemPromptAndHistory(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	svc := newTestChat(fake)

	history := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "Any deals on Greece?"},
		{Role: domain.ChatRoleAssistant, Content: "Yes, Santorini is 25% off."},
		{Role: domain.ChatRoleUser, Content: "What does it include?"},
	}
	if _, err := svc.Converse(context.Background(), "s", history); err != nil {
		t.Fatalf("converse: %v", err)
	}

	msgs := fake.lastReq.Messages
	if len(msgs) != len(history)+1 {
		t.Fatalf("forwarded %d messages, want %d", len(msgs), len(history)+1)
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content == "" {
		t.Fatalf("first message = %+v, want the system prompt", msgs[0])
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Fatalf("assistant turn forwarded as %s", msgs[2].Role)
	}
}

func TestConverseValidation(t *testing.T) {
	svc := newTestChat(&fakeCompleter{reply: "ok"})
	ctx := context.Background()

	_, err := svc.Converse(ctx, "", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("empty history: err = %v, want ErrValidation", err)
	}

	_, err = svc.Converse(ctx, "", []domain.ChatMessage{
		{Role: domain.ChatRoleAssistant, Content: "I answered already"},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("assistant last: err = %v, want ErrValidation", err)
	}

	_, err = svc.Converse(ctx, "", []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "   "},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("blank user turn: err = %v, want ErrValidation", err)
	}
}

func TestConverseUpstreamFailure(t *testing.T) {
	svc := newTestChat(&fakeCompleter{err: errors.New("rate limited")})

	_, err := svc.Converse(context.Background(), "", []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "hi"},
	})
	if !errors.Is(err, ErrChatUpstream) {
		t.Fatalf("err = %v, want ErrChatUpstream", err)
	}
}
