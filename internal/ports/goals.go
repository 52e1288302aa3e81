package ports

import (
	"context"
	"encoding/json"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// GoalsPort covers the vendor's wealth goal CRUD. Implementations map a
// vendor 404 on a specific goal to domain.NotFoundError.
type GoalsPort interface {
	ListGoals(ctx context.Context, accountID string) (json.RawMessage, error)
	GetGoal(ctx context.Context, accountID, goalID string) (json.RawMessage, error)
	CreateGoal(ctx context.Context, accountID string, goal domain.FinancialGoal, idempotencyKey string) (json.RawMessage, error)
	UpdateGoal(ctx context.Context, accountID, goalID string, patch domain.GoalPatch) (json.RawMessage, error)
	DeleteGoal(ctx context.Context, accountID, goalID string) error
}
