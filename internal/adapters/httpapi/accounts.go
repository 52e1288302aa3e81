package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// accountRequest is the onboarding wizard's final submission.
type accountRequest struct {
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	TaxID       string `json:"taxId"`
	Street      string `json:"streetAddress"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account payload"})
		return
	}
	if req.GivenName == "" || req.FamilyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	raw, err := h.Accounts.CreateAccount(c.Request.Context(), domain.AccountApplication{
		GivenName:   req.GivenName,
		FamilyName:  req.FamilyName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		TaxID:       req.TaxID,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusCreated, raw)
}

func (h *Handler) GetAccount(c *gin.Context) {
	raw, err := h.Accounts.GetAccount(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) GetInvestmentPolicy(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Wealth.GetInvestmentPolicy(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) GetInsights(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Wealth.GetInsights(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}
