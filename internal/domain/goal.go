package domain

type GoalType string

const (
	GoalTypeRetirement   GoalType = "retirement"
	GoalTypeEducation    GoalType = "education"
	GoalTypeEmergency    GoalType = "emergency"
	GoalTypeWealthGrowth GoalType = "wealth_growth"
	GoalTypeHomePurchase GoalType = "home_purchase"
	GoalTypeCustom       GoalType = "custom"
)

// ValidGoalType reports whether t is one of the closed goal-type values.
func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeRetirement, GoalTypeEducation, GoalTypeEmergency,
		GoalTypeWealthGrowth, GoalTypeHomePurchase, GoalTypeCustom:
		return true
	}
	return false
}

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// FinancialGoal is the vendor-shaped goal record. Amounts are decimal
// strings, TargetDate is an ISO date (YYYY-MM-DD).
type FinancialGoal struct {
	GoalID              string     `json:"goal_id,omitempty"`
	Name                string     `json:"name"`
	GoalType            GoalType   `json:"goal_type"`
	TargetAmount        string     `json:"target_amount"`
	TargetDate          string     `json:"target_date,omitempty"`
	Priority            int        `json:"priority,omitempty"`
	MonthlyContribution string     `json:"monthly_contribution,omitempty"`
	Status              GoalStatus `json:"status,omitempty"`
}

// GoalPatch is a partial goal update. Only non-nil fields are serialized
// into the PUT body; an omitted field means "leave unchanged" on the
// vendor side, which is a different thing from an explicit empty value.
type GoalPatch struct {
	Name                *string     `json:"name,omitempty"`
	GoalType            *GoalType   `json:"goal_type,omitempty"`
	TargetAmount        *string     `json:"target_amount,omitempty"`
	TargetDate          *string     `json:"target_date,omitempty"`
	Priority            *int        `json:"priority,omitempty"`
	MonthlyContribution *string     `json:"monthly_contribution,omitempty"`
	Status              *GoalStatus `json:"status,omitempty"`
}

// IsEmpty reports whether no field of the patch is set.
func (p GoalPatch) IsEmpty() bool {
	return p.Name == nil && p.GoalType == nil && p.TargetAmount == nil &&
		p.TargetDate == nil && p.Priority == nil &&
		p.MonthlyContribution == nil && p.Status == nil
}
