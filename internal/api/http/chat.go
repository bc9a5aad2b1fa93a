package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/chat"
	"github.com/nooros/backend/internal/shared/types"
)

// Chat forwards an assistant conversation upstream
func (h *Handlers) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Messages)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"reply": reply})
		return
	}

	var upstream *chat.UpstreamError
	switch {
	case errors.Is(err, chat.ErrInvalidMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream error", "detail": upstream.Detail})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream error", "detail": err.Error()})
	}
}
