package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// goalRequest is the camelCase create shape from the goal planner UI.
type goalRequest struct {
	AccountID           string `json:"accountId"`
	Name                string `json:"name"`
	GoalType            string `json:"goalType"`
	TargetAmount        string `json:"targetAmount"`
	TargetDate          string `json:"targetDate"`
	Priority            int    `json:"priority"`
	MonthlyContribution string `json:"monthlyContribution"`
}

// goalPatchRequest uses pointers so a field the client never sent stays
// nil and is omitted from the vendor PUT body entirely.
type goalPatchRequest struct {
	Name                *string `json:"name"`
	GoalType            *string `json:"goalType"`
	TargetAmount        *string `json:"targetAmount"`
	TargetDate          *string `json:"targetDate"`
	Priority            *int    `json:"priority"`
	MonthlyContribution *string `json:"monthlyContribution"`
	Status              *string `json:"status"`
}

func (h *Handler) ListGoals(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Goals.List(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) GetGoal(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Goals.Get(c.Request.Context(), accountID, c.Param("goalID"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) CreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal payload"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required"})
		return
	}

	goal := domain.FinancialGoal{
		Name:                req.Name,
		GoalType:            domain.GoalType(req.GoalType),
		TargetAmount:        req.TargetAmount,
		TargetDate:          req.TargetDate,
		Priority:            req.Priority,
		MonthlyContribution: req.MonthlyContribution,
	}

	raw, err := h.Goals.Create(c.Request.Context(), req.AccountID, goal, c.GetHeader("Idempotency-Key"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusCreated, raw)
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req goalPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal payload"})
		return
	}

	patch := domain.GoalPatch{
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		TargetDate:          req.TargetDate,
		Priority:            req.Priority,
		MonthlyContribution: req.MonthlyContribution,
	}
	if req.GoalType != nil {
		t := domain.GoalType(*req.GoalType)
		patch.GoalType = &t
	}
	if req.Status != nil {
		s := domain.GoalStatus(*req.Status)
		patch.Status = &s
	}

	raw, err := h.Goals.Update(c.Request.Context(), accountID, c.Param("goalID"), patch)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	if err := h.Goals.Delete(c.Request.Context(), accountID, c.Param("goalID")); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
