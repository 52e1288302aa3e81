package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// goalsStub echoes merged state the way the vendor does: PUT applies only
// the supplied fields over the stored record.
type goalsStub struct {
	stored  domain.FinancialGoal
	created *domain.FinancialGoal
	lastKey string
	deleted bool
}

func (s *goalsStub) ListGoals(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *goalsStub) GetGoal(context.Context, string, string) (json.RawMessage, error) {
	return json.Marshal(s.stored)
}

func (s *goalsStub) CreateGoal(_ context.Context, _ string, goal domain.FinancialGoal, key string) (json.RawMessage, error) {
	s.created = &goal
	s.lastKey = key
	return json.Marshal(goal)
}

func (s *goalsStub) UpdateGoal(_ context.Context, _ string, _ string, patch domain.GoalPatch) (json.RawMessage, error) {
	if patch.Name != nil {
		s.stored.Name = *patch.Name
	}
	if patch.GoalType != nil {
		s.stored.GoalType = *patch.GoalType
	}
	if patch.TargetAmount != nil {
		s.stored.TargetAmount = *patch.TargetAmount
	}
	if patch.TargetDate != nil {
		s.stored.TargetDate = *patch.TargetDate
	}
	if patch.Priority != nil {
		s.stored.Priority = *patch.Priority
	}
	if patch.MonthlyContribution != nil {
		s.stored.MonthlyContribution = *patch.MonthlyContribution
	}
	if patch.Status != nil {
		s.stored.Status = *patch.Status
	}
	return json.Marshal(s.stored)
}

func (s *goalsStub) DeleteGoal(context.Context, string, string) error {
	if s.stored.GoalID == "" {
		return &domain.NotFoundError{Resource: "Goal"}
	}
	s.deleted = true
	return nil
}

func TestCreateGoalValidation(t *testing.T) {
	testCases := []struct {
		desc      string
		goal      domain.FinancialGoal
		wantError string
	}{
		{"missing name", domain.FinancialGoal{GoalType: domain.GoalTypeRetirement, TargetAmount: "100"}, "name is required"},
		{"missing goal type", domain.FinancialGoal{Name: "Nest egg", TargetAmount: "100"}, "goal_type is required"},
		{"unknown goal type", domain.FinancialGoal{Name: "Nest egg", GoalType: "yacht", TargetAmount: "100"}, "invalid goal_type: yacht"},
		{"missing target amount", domain.FinancialGoal{Name: "Nest egg", GoalType: domain.GoalTypeRetirement}, "target_amount is required"},
		{"priority out of range", domain.FinancialGoal{Name: "Nest egg", GoalType: domain.GoalTypeRetirement, TargetAmount: "100", Priority: 11}, "priority must be between 1 and 10"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			stub := &goalsStub{}
			_, err := NewGoalService(stub).Create(context.Background(), "acct-1", tc.goal, "")
			require.Error(t, err)
			require.Equal(t, tc.wantError, err.Error())
			require.Nil(t, stub.created)
		})
	}
}

func TestCreateGoalForwardsIdempotencyKey(t *testing.T) {
	stub := &goalsStub{}
	svc := NewGoalService(stub)

	_, err := svc.Create(context.Background(), "acct-1", domain.FinancialGoal{
		Name:         "House",
		GoalType:     domain.GoalTypeHomePurchase,
		TargetAmount: "50000",
	}, "idem-goal-1")
	require.NoError(t, err)
	require.NotNil(t, stub.created)
	require.Equal(t, "idem-goal-1", stub.lastKey)
	require.Equal(t, "50000.00", stub.created.TargetAmount)
}

func TestUpdateGoalPartialMerge(t *testing.T) {
	stub := &goalsStub{stored: domain.FinancialGoal{
		GoalID:       "goal-1",
		Name:         "Retire at 60",
		GoalType:     domain.GoalTypeRetirement,
		TargetAmount: "900000.00",
		Priority:     3,
		Status:       domain.GoalStatusActive,
	}}
	svc := NewGoalService(stub)

	priority := 5
	_, err := svc.Update(context.Background(), "acct-1", "goal-1", domain.GoalPatch{Priority: &priority})
	require.NoError(t, err)

	require.Equal(t, 5, stub.stored.Priority)
	require.Equal(t, "Retire at 60", stub.stored.Name, "omitted fields stay untouched")
	require.Equal(t, "900000.00", stub.stored.TargetAmount)
	require.Equal(t, domain.GoalStatusActive, stub.stored.Status)
}

func TestGoalPatchMarshalsOnlySetFields(t *testing.T) {
	priority := 5
	body, err := json.Marshal(domain.GoalPatch{Priority: &priority})
	require.NoError(t, err)
	require.JSONEq(t, `{"priority":5}`, string(body), "omitted means leave unchanged, not null")
}

func TestUpdateGoalEmptyPatch(t *testing.T) {
	svc := NewGoalService(&goalsStub{})
	_, err := svc.Update(context.Background(), "acct-1", "goal-1", domain.GoalPatch{})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestDeleteGoalNotFound(t *testing.T) {
	svc := NewGoalService(&goalsStub{})
	err := svc.Delete(context.Background(), "acct-1", "missing-goal")

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Goal not found", notFound.Error())
}
