package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/ports"
	"github.com/nestegg-finance/bluum-gateway/internal/usecase"
)

// Handler bundles the services behind the /api surface.
type Handler struct {
	Accounts ports.AccountsPort
	Wealth   ports.WealthPort
	Orders   *usecase.OrderService
	Funding  *usecase.FundingService
	Goals    *usecase.GoalService
	Chat     *usecase.ChatService
}

// NewRouter builds the gin engine with every route the web client calls.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts/:accountID", h.GetAccount)

		investment := api.Group("/investment")
		{
			investment.GET("/orders", h.ListOrders)
			investment.POST("/orders", h.PlaceOrder)
			investment.GET("/positions", h.ListPositions)
			investment.GET("/transactions", h.ListTransactions)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/deposits", h.CreateDeposit)
			payments.POST("/withdrawals", h.CreateWithdrawal)
			payments.GET("/funding-sources", h.ListFundingSources)
			payments.DELETE("/funding-sources/:sourceID", h.RemoveFundingSource)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", h.ListGoals)
			goals.POST("", h.CreateGoal)
			goals.GET("/:goalID", h.GetGoal)
			goals.PUT("/:goalID", h.UpdateGoal)
			goals.DELETE("/:goalID", h.DeleteGoal)
		}

		wealth := api.Group("/wealth")
		{
			wealth.GET("/investment-policy", h.GetInvestmentPolicy)
			wealth.GET("/insights", h.GetInsights)
		}

		api.POST("/chat", h.PostChat)
	}

	return r
}
