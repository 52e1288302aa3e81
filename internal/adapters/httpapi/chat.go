package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

func (h *Handler) PostChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat payload"})
		return
	}

	reply, err := h.Chat.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
