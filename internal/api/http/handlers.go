package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/apps"
	"github.com/nooros/backend/internal/domain/chat"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/types"
	"github.com/nooros/backend/internal/shared/utils"
)

// Version is reported by the root and health endpoints
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	desktop *desktop.Controller
	chat    *chat.Service
	metrics *monitoring.Metrics
	started time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(ctrl *desktop.Controller, chatService *chat.Service, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		desktop: ctrl,
		chat:    chatService,
		metrics: metrics,
		started: time.Now(),
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "NoorOS Desktop",
		"version": Version,
	})
}

// Health handles the detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"version": Version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"desktop": h.desktop.Stats(),
	}
	if h.chat != nil {
		body["chat"] = gin.H{
			"online":  h.chat.Online(),
			"breaker": h.chat.Client().Breaker().State().String(),
		}
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Desktop returns the full desktop snapshot
func (h *Handlers) Desktop(c *gin.Context) {
	c.JSON(http.StatusOK, h.desktop.Snapshot())
}

// SetViewport records the client's viewport size
func (h *Handlers) SetViewport(c *gin.Context) {
	var req types.ViewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := h.desktop.SetViewport(req.Width, req.Height)
	c.JSON(http.StatusOK, gin.H{"viewport": v})
}

// ListApps lists the app catalog with content descriptors
func (h *Handlers) ListApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": apps.All()})
}

func validInstanceID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := utils.ValidateID(id, "instance_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return id, true
}

func validAppID(c *gin.Context, param string) (types.AppID, bool) {
	id := types.AppID(c.Param(param))
	if !apps.IsValid(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown app: " + string(id)})
		return "", false
	}
	return id, true
}
