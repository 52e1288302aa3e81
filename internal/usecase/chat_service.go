package usecase

import (
	"context"
	"strings"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/nestegg-finance/bluum-gateway/internal/ports"
)

// ChatService backs the in-app AI assistant widget.
type ChatService struct {
	chat ports.ChatPort
}

func NewChatService(chat ports.ChatPort) *ChatService {
	return &ChatService{chat: chat}
}

func (s *ChatService) Reply(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	trimmed := make([]domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		trimmed = append(trimmed, m)
	}
	if len(trimmed) == 0 {
		return "", domain.RequiredField("messages")
	}
	return s.chat.Reply(ctx, trimmed)
}
