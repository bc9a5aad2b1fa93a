package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/shared/types"
)

// ListWindows lists open windows bottom to top
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.desktop.Windows(),
		"stats":   h.desktop.Stats().Windows,
	})
}

// OpenWindow opens an app or brings its window forward
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req types.OpenWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.desktop.OpenApp(req.AppID)
	if errors.Is(err, desktop.ErrUnknownApp) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": w})
}

// FocusWindow brings a window to the front
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.FocusWindow)
}

// MinimizeWindow hides a window in the dock
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.MinimizeWindow)
}

// RestoreWindow un-minimizes a window
func (h *Handlers) RestoreWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.RestoreWindow)
}

// MaximizeWindow toggles maximized state
func (h *Handlers) MaximizeWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.ToggleMaximize)
}

// CloseWindow destroys a window
func (h *Handlers) CloseWindow(c *gin.Context) {
	id, ok := validInstanceID(c)
	if !ok {
		return
	}
	if !h.desktop.CloseWindow(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "instanceId": id})
}

// DragWindow moves a window to an absolute position
func (h *Handlers) DragWindow(c *gin.Context) {
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.windowAction(c, func(id string) bool {
		return h.desktop.MoveWindow(id, req.Point())
	})
}

// BeginWindowDrag starts a title bar drag at the pointer
func (h *Handlers) BeginWindowDrag(c *gin.Context) {
	h.pointerAction(c, h.desktop.BeginWindowDrag)
}

// MoveWindowDrag follows the pointer during a title bar drag
func (h *Handlers) MoveWindowDrag(c *gin.Context) {
	h.pointerAction(c, h.desktop.MoveWindowDrag)
}

// EndWindowDrag finishes a title bar drag
func (h *Handlers) EndWindowDrag(c *gin.Context) {
	h.windowAction(c, h.desktop.EndWindowDrag)
}

// ResizeWindow grows or shrinks a window from an edge
func (h *Handlers) ResizeWindow(c *gin.Context) {
	var req types.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	edge, err := geometry.ParseEdge(req.Edge)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.windowAction(c, func(id string) bool {
		return h.desktop.ResizeWindow(id, geometry.ResizeDelta{Edge: edge, DWidth: req.DWidth, DHeight: req.DHeight})
	})
}

func (h *Handlers) pointerAction(c *gin.Context, op func(string, types.Point) bool) {
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.windowAction(c, func(id string) bool {
		return op(id, req.Point())
	})
}

// windowAction runs op on the :id window. A false result on a live window
// (moving a maximized window, say) is reported as success=false, not 404.
func (h *Handlers) windowAction(c *gin.Context, op func(string) bool) {
	id, ok := validInstanceID(c)
	if !ok {
		return
	}

	applied := op(id)
	w, exists := h.desktop.Window(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": applied, "window": w})
}
