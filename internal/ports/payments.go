package ports

import (
	"context"
	"encoding/json"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// PaymentsPort covers deposits, withdrawals, funding sources and the
// account transaction feed.
type PaymentsPort interface {
	CreateDeposit(ctx context.Context, accountID, amount string, funding domain.FundingDescriptor) (json.RawMessage, error)
	CreateWithdrawal(ctx context.Context, accountID, amount string, funding domain.FundingDescriptor, idempotencyKey string) (json.RawMessage, error)
	ListFundingSources(ctx context.Context, accountID string) (json.RawMessage, error)
	RemoveFundingSource(ctx context.Context, accountID, sourceID string) (json.RawMessage, error)
	ListTransactions(ctx context.Context, accountID string) (json.RawMessage, error)
}
