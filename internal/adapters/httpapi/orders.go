package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/nestegg-finance/bluum-gateway/internal/usecase"
)

// placeOrderRequest is the camelCase shape the trade page submits.
type placeOrderRequest struct {
	AccountID    string `json:"accountId"`
	Symbol       string `json:"symbol"`
	Side         string `json:"side"`
	Type         string `json:"type"`
	TimeInForce  string `json:"timeInForce"`
	OrderBy      string `json:"orderBy"`
	Quantity     string `json:"quantity"`
	DollarAmount string `json:"dollarAmount"`
	LimitPrice   string `json:"limitPrice"`
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required"})
		return
	}

	orderType := domain.OrderType(req.Type)
	if orderType == "" {
		orderType = domain.OrderTypeMarket
	}
	orderBy := domain.OrderBy(req.OrderBy)
	if orderBy == "" {
		orderBy = domain.OrderByQuantity
	}

	raw, err := h.Orders.PlaceOrder(c.Request.Context(), usecase.OrderInput{
		AccountID:    req.AccountID,
		Symbol:       req.Symbol,
		Side:         domain.OrderSide(req.Side),
		Type:         orderType,
		TimeInForce:  domain.TimeInForce(req.TimeInForce),
		OrderBy:      orderBy,
		Quantity:     req.Quantity,
		DollarAmount: req.DollarAmount,
		LimitPrice:   req.LimitPrice,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) ListOrders(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Orders.ListOrders(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}

func (h *Handler) ListPositions(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	positions, err := h.Orders.ListPositions(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"positions": positions})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	raw, err := h.Funding.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderJSON(c, http.StatusOK, raw)
}
