package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/usecase"
)

type plaidOptionsRequest struct {
	PublicToken string `json:"publicToken"`
	ItemID      string `json:"itemId"`
	AccountID   string `json:"accountId"`
}

// transferRequest covers both deposits and withdrawals. plaidOptions is
// the current shape; funding_details.bank_account_id survives for older
// clients; the manual bank fields only appear on withdrawals.
type transferRequest struct {
	AccountID      string               `json:"accountId"`
	Amount         string               `json:"amount"`
	Method         string               `json:"method"`
	PlaidOptions   *plaidOptionsRequest `json:"plaidOptions"`
	FundingDetails *struct {
		BankAccountID string `json:"bank_account_id"`
	} `json:"funding_details"`
	BankRouting string `json:"bankRoutingNumber"`
	BankAccount string `json:"bankAccountNumber"`
}

func (r transferRequest) fundingInput() usecase.FundingInput {
	in := usecase.FundingInput{
		Method:      r.Method,
		BankRouting: r.BankRouting,
		BankAccount: r.BankAccount,
	}
	if r.PlaidOptions != nil {
		in.Plaid = &usecase.PlaidOptions{
			PublicToken: r.PlaidOptions.PublicToken,
			ItemID:      r.PlaidOptions.ItemID,
			AccountID:   r.PlaidOptions.AccountID,
		}
	}
	if r.FundingDetails != nil {
		in.LegacyBankAccountID = r.FundingDetails.BankAccountID
	}
	return in
}

func (h *Handler) CreateDeposit(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit payload"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required"})
		return
	}

	raw, err := h.Funding.Deposit(c.Request.Context(), req.AccountID, req.Amount, req.fundingInput())
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) CreateWithdrawal(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid withdrawal payload"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required"})
		return
	}

	// forwarded to the vendor unchanged when present
	idempotencyKey := c.GetHeader("Idempotency-Key")

	raw, err := h.Funding.Withdraw(c.Request.Context(), req.AccountID, req.Amount, req.fundingInput(), idempotencyKey)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) ListFundingSources(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Funding.ListFundingSources(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) RemoveFundingSource(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Funding.RemoveFundingSource(c.Request.Context(), accountID, c.Param("sourceID"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}
