package ports

import (
	"context"
	"encoding/json"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// TradingPort talks to the vendor's trading endpoints. List responses are
// relayed to the client as-is, so they stay raw JSON; positions are the
// exception because the client contract requires a normalized projection.
type TradingPort interface {
	PlaceOrder(ctx context.Context, accountID string, order domain.OrderRequest, idempotencyKey string) (json.RawMessage, error)
	ListOrders(ctx context.Context, accountID string) (json.RawMessage, error)
	ListPositions(ctx context.Context, accountID string) ([]domain.Position, error)
}
