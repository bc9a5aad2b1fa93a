package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/shared/types"
)

// Dock lists pinned apps with their running state
func (h *Handlers) Dock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dock": h.desktop.Dock()})
}

// DockClick restores a minimized instance of the app, otherwise opens it
func (h *Handlers) DockClick(c *gin.Context) {
	app, ok := validAppID(c, "appId")
	if !ok {
		return
	}
	w, err := h.desktop.DockClick(app)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": w})
}

// OpenContextMenu shows the context menu for a target
func (h *Handlers) OpenContextMenu(c *gin.Context) {
	var req types.ContextMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind := desktop.MenuTargetKind(req.Target)
	if kind == "" {
		kind = desktop.TargetDesktop
	}

	menu := h.desktop.OpenContextMenu(req.Point(), desktop.MenuTarget{Kind: kind, ID: req.TargetID})
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// SelectMenuItem runs an item of the open context menu
func (h *Handlers) SelectMenuItem(c *gin.Context) {
	var req types.MenuActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.desktop.InvokeMenuItem(req.Action)
	switch {
	case errors.Is(err, desktop.ErrNoMenu):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, desktop.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, h.desktop.Snapshot())
	}
}

// CloseContextMenu dismisses the context menu
func (h *Handlers) CloseContextMenu(c *gin.Context) {
	h.desktop.CloseContextMenu()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
