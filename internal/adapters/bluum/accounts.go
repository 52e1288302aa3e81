package bluum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

func (c *Client) CreateAccount(ctx context.Context, application domain.AccountApplication) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/accounts", application, nil)
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/%s", accountID), nil, nil)
}

func (c *Client) GetInvestmentPolicy(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/investment-policy", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) GetInsights(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/insights", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}
