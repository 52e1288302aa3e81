package bluum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

func (c *Client) ListGoals(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/goals", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) GetGoal(ctx context.Context, accountID, goalID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/goals/%s", accountID, goalID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	return raw, goalNotFound(err)
}

func (c *Client) CreateGoal(ctx context.Context, accountID string, goal domain.FinancialGoal, idempotencyKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/goals", accountID)
	return c.do(ctx, http.MethodPost, path, goal, idempotencyHeader(idempotencyKey))
}

func (c *Client) UpdateGoal(ctx context.Context, accountID, goalID string, patch domain.GoalPatch) (json.RawMessage, error) {
	path := fmt.Sprintf("/wealth/accounts/%s/goals/%s", accountID, goalID)
	raw, err := c.do(ctx, http.MethodPut, path, patch, nil)
	return raw, goalNotFound(err)
}

func (c *Client) DeleteGoal(ctx context.Context, accountID, goalID string) error {
	path := fmt.Sprintf("/wealth/accounts/%s/goals/%s", accountID, goalID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return goalNotFound(err)
}

// goalNotFound translates a vendor 404 on a specific goal into the clean
// local NotFoundError instead of relaying the raw vendor body.
func goalNotFound(err error) error {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
		return &domain.NotFoundError{Resource: "Goal"}
	}
	return err
}
