package desktop

import (
	"github.com/nooros/backend/internal/domain/icon"
	"github.com/nooros/backend/internal/shared/types"
)

// SelectIcon selects an icon; multi toggles it within the selection
func (c *Controller) SelectIcon(id types.AppID, multi bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.icons.Select(id, multi) {
		return false
	}
	c.menu = nil
	c.publishLocked()
	return true
}

// ClearSelection handles a pointer-down on empty desktop
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.icons.ClearSelection()
	c.menu = nil
	c.publishLocked()
}

// SelectedIcons returns the selection in layout order
func (c *Controller) SelectedIcons() []types.AppID {
	return c.icons.Selected()
}

// DragIcons moves id, and the rest of the selection when id is selected
func (c *Controller) DragIcons(id types.AppID, delta types.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.icons.Drag(id, delta) {
		return false
	}
	c.publishLocked()
	return true
}

// ActivateIcon opens the icon's app (double-click)
func (c *Controller) ActivateIcon(id types.AppID) (types.WindowInstance, error) {
	if _, ok := c.icons.Get(id); !ok {
		return types.WindowInstance{}, ErrUnknownApp
	}
	return c.OpenApp(id)
}

// ResetIcons restores the default icon layout
func (c *Controller) ResetIcons() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.icons.Reset()
	c.publishLocked()
}

// BeginSelectionBox starts a rubber-band selection on empty desktop
func (c *Controller) BeginSelectionBox(p types.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.icons.BeginBox(p)
	c.menu = nil
	c.publishLocked()
}

// UpdateSelectionBox stretches the rubber band and reselects
func (c *Controller) UpdateSelectionBox(p types.Point) ([]types.AppID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sel, ok := c.icons.UpdateBox(p)
	if ok {
		c.publishLocked()
	}
	return sel, ok
}

// EndSelectionBox removes the rubber band
func (c *Controller) EndSelectionBox() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.icons.EndBox()
	c.publishLocked()
}

// PressIcon starts a pointer press on an icon. Pressing an unselected icon
// selects only it; pressing a selected icon keeps the group so it can be
// dragged together; multi toggles.
func (c *Controller) PressIcon(id types.AppID, pointer icon.PointerType, p types.Point, multi bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.icons.Get(id); !ok {
		return false
	}
	if multi || !c.icons.IsSelected(id) {
		c.icons.Select(id, multi)
	}
	c.press = icon.NewPress(id, pointer, p)
	c.menu = nil
	c.publishLocked()
	return true
}

// MovePointer continues the active icon press
func (c *Controller) MovePointer(p types.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.press == nil {
		return false
	}
	delta := c.press.Move(p)
	if delta == (types.Point{}) {
		return true
	}
	c.icons.Drag(c.press.ID, delta)
	c.publishLocked()
	return true
}

// ReleasePointer ends the active icon press. A touch or pen tap opens the
// app and returns its window.
func (c *Controller) ReleasePointer() (*types.WindowInstance, bool) {
	c.mu.Lock()
	press := c.press
	c.press = nil
	c.mu.Unlock()

	if press == nil || !press.IsTap() {
		return nil, press != nil
	}
	w, err := c.OpenApp(press.ID)
	if err != nil {
		return nil, true
	}
	return &w, true
}
