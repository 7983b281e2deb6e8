package services

import (
	"context"
	"fmt"
	"log"

	"trustfluence-chatbot/internal/llm"
	"trustfluence-chatbot/internal/prompt"
)

// ChatService relays a single user message to the configured model.
// It holds no per-request state and is safe for concurrent use.
type ChatService struct {
	client   llm.Client
	template prompt.Template
}

func NewChatService(client llm.Client, template prompt.Template) *ChatService {
	return &ChatService{
		client:   client,
		template: template,
	}
}

// HandleChat returns the model's completion for message, unmodified.
// An empty message is forwarded like any other.
func (s *ChatService) HandleChat(ctx context.Context, message string) (string, error) {
	msgs := s.template.Format(message)

	reply, err := s.client.Complete(ctx, msgs[0].Content, msgs[1].Content)
	if err != nil {
		log.Printf("✗ Chat completion failed: %v", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}
