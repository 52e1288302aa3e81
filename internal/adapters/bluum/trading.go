package bluum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

func (c *Client) PlaceOrder(ctx context.Context, accountID string, order domain.OrderRequest, idempotencyKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/trading/accounts/%s/orders", accountID)
	return c.do(ctx, http.MethodPost, path, order, idempotencyHeader(idempotencyKey))
}

func (c *Client) ListOrders(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/trading/accounts/%s/orders", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) ListPositions(ctx context.Context, accountID string) ([]domain.Position, error) {
	path := fmt.Sprintf("/trading/accounts/%s/positions", accountID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var payloads []positionPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil, fmt.Errorf("failed to decode positions response: %w", err)
	}

	positions := make([]domain.Position, 0, len(payloads))
	for _, p := range payloads {
		positions = append(positions, p.normalize())
	}
	return positions, nil
}
