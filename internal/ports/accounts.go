package ports

import (
	"context"
	"encoding/json"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

type AccountsPort interface {
	CreateAccount(ctx context.Context, application domain.AccountApplication) (json.RawMessage, error)
	GetAccount(ctx context.Context, accountID string) (json.RawMessage, error)
}

// WealthPort exposes read-only advisory resources; responses pass through
// to the client untouched.
type WealthPort interface {
	GetInvestmentPolicy(ctx context.Context, accountID string) (json.RawMessage, error)
	GetInsights(ctx context.Context, accountID string) (json.RawMessage, error)
}
