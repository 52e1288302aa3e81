package ports

import (
	"context"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

type ChatPort interface {
	// Returns the assistant's reply to the conversation so far.
	Reply(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
