package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/icon"
	"github.com/nooros/backend/internal/shared/types"
)

// ListIcons lists desktop icons with their selection state
func (h *Handlers) ListIcons(c *gin.Context) {
	snap := h.desktop.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"icons":    snap.Icons,
		"selected": h.desktop.SelectedIcons(),
	})
}

// SelectIcon selects one icon, or toggles it with multi
func (h *Handlers) SelectIcon(c *gin.Context) {
	id, ok := validAppID(c, "id")
	if !ok {
		return
	}
	var req types.SelectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if !h.desktop.SelectIcon(id, req.Multi) {
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": h.desktop.SelectedIcons()})
}

// ClearSelection deselects every icon
func (h *Handlers) ClearSelection(c *gin.Context) {
	h.desktop.ClearSelection()
	c.JSON(http.StatusOK, gin.H{"selected": []types.AppID{}})
}

// DragIcon moves an icon, or the whole selection it belongs to, by a delta
func (h *Handlers) DragIcon(c *gin.Context) {
	id, ok := validAppID(c, "id")
	if !ok {
		return
	}
	var req types.IconDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.desktop.DragIcons(id, types.Point{X: req.DX, Y: req.DY}) {
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not found"})
		return
	}
	h.ListIcons(c)
}

// OpenIcon opens the icon's app, as a double-click does
func (h *Handlers) OpenIcon(c *gin.Context) {
	id, ok := validAppID(c, "id")
	if !ok {
		return
	}
	w, err := h.desktop.ActivateIcon(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": w})
}

// ResetIcons restores the default icon layout
func (h *Handlers) ResetIcons(c *gin.Context) {
	h.desktop.ResetIcons()
	h.ListIcons(c)
}

// BeginSelectionBox starts a rubber-band selection on empty desktop
func (h *Handlers) BeginSelectionBox(c *gin.Context) {
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.desktop.BeginSelectionBox(req.Point())
	c.JSON(http.StatusOK, gin.H{"selected": []types.AppID{}})
}

// UpdateSelectionBox extends the rubber band and reselects
func (h *Handlers) UpdateSelectionBox(c *gin.Context) {
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	selected, ok := h.desktop.UpdateSelectionBox(req.Point())
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no selection box in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}

// EndSelectionBox finishes the rubber band, keeping the selection
func (h *Handlers) EndSelectionBox(c *gin.Context) {
	h.desktop.EndSelectionBox()
	c.JSON(http.StatusOK, gin.H{"selected": h.desktop.SelectedIcons()})
}

// PressIcon starts a pointer press on an icon
func (h *Handlers) PressIcon(c *gin.Context) {
	id, ok := validAppID(c, "id")
	if !ok {
		return
	}
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pointer, err := icon.ParsePointerType(req.Pointer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.desktop.PressIcon(id, pointer, req.Point(), req.Multi) {
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": h.desktop.SelectedIcons()})
}

// MoveIconPointer continues the active icon press
func (h *Handlers) MoveIconPointer(c *gin.Context) {
	var req types.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.desktop.MovePointer(req.Point()) {
		c.JSON(http.StatusConflict, gin.H{"error": "no icon press in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReleaseIcon ends the active icon press; a touch tap opens the app
func (h *Handlers) ReleaseIcon(c *gin.Context) {
	w, pressed := h.desktop.ReleasePointer()
	if !pressed {
		c.JSON(http.StatusConflict, gin.H{"error": "no icon press in progress"})
		return
	}
	body := gin.H{"opened": w != nil}
	if w != nil {
		body["window"] = w
	}
	c.JSON(http.StatusOK, body)
}
