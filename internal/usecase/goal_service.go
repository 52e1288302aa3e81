package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/nestegg-finance/bluum-gateway/internal/ports"
)

type GoalService struct {
	goals ports.GoalsPort
}

func NewGoalService(goals ports.GoalsPort) *GoalService {
	return &GoalService{goals: goals}
}

func (s *GoalService) List(ctx context.Context, accountID string) (json.RawMessage, error) {
	return s.goals.ListGoals(ctx, accountID)
}

func (s *GoalService) Get(ctx context.Context, accountID, goalID string) (json.RawMessage, error) {
	if goalID == "" {
		return nil, domain.RequiredField("goal_id")
	}
	return s.goals.GetGoal(ctx, accountID, goalID)
}

// Create requires name, goal_type and target_amount; everything else is
// optional. The idempotency key, when the client supplied one, is passed
// through to the vendor unchanged.
func (s *GoalService) Create(ctx context.Context, accountID string, goal domain.FinancialGoal, idempotencyKey string) (json.RawMessage, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, domain.RequiredField("name")
	}
	if goal.GoalType == "" {
		return nil, domain.RequiredField("goal_type")
	}
	if !domain.ValidGoalType(goal.GoalType) {
		return nil, &domain.ValidationError{Field: "goal_type", Message: "invalid goal_type: " + string(goal.GoalType)}
	}
	amount, err := ParseAmount("target_amount", goal.TargetAmount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, domain.RequiredField("target_amount")
	}
	goal.TargetAmount = FormatMoney(amount)
	if err := validatePriority(goal.Priority); err != nil {
		return nil, err
	}

	return s.goals.CreateGoal(ctx, accountID, goal, idempotencyKey)
}

// Update forwards only the fields the caller set. An omitted field stays
// untouched on the vendor side, so the patch is validated field by field
// and never filled in with defaults.
func (s *GoalService) Update(ctx context.Context, accountID, goalID string, patch domain.GoalPatch) (json.RawMessage, error) {
	if goalID == "" {
		return nil, domain.RequiredField("goal_id")
	}
	if patch.IsEmpty() {
		return nil, &domain.ValidationError{Field: "body", Message: "no fields to update"}
	}
	if patch.GoalType != nil && !domain.ValidGoalType(*patch.GoalType) {
		return nil, &domain.ValidationError{Field: "goal_type", Message: "invalid goal_type: " + string(*patch.GoalType)}
	}
	if patch.TargetAmount != nil {
		amount, err := ParseAmount("target_amount", *patch.TargetAmount)
		if err != nil {
			return nil, err
		}
		formatted := FormatMoney(amount)
		patch.TargetAmount = &formatted
	}
	if patch.Priority != nil {
		if err := validatePriority(*patch.Priority); err != nil {
			return nil, err
		}
	}

	return s.goals.UpdateGoal(ctx, accountID, goalID, patch)
}

func (s *GoalService) Delete(ctx context.Context, accountID, goalID string) error {
	if goalID == "" {
		return domain.RequiredField("goal_id")
	}
	return s.goals.DeleteGoal(ctx, accountID, goalID)
}

func validatePriority(priority int) error {
	if priority < 0 || priority > 10 {
		return &domain.ValidationError{Field: "priority", Message: "priority must be between 1 and 10"}
	}
	return nil
}
