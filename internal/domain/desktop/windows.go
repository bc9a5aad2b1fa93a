package desktop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nooros/backend/internal/domain/apps"
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/shared/types"
)

// windowDrag is an in-progress title bar drag
type windowDrag struct {
	id     string
	origin types.Point
	start  types.Point
}

// OpenApp focuses the app's window, creating it when none is open
func (c *Controller) OpenApp(app types.AppID) (types.WindowInstance, error) {
	if !apps.IsValid(app) {
		return types.WindowInstance{}, fmt.Errorf("%w: %s", ErrUnknownApp, app)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	w, created := c.windows.Open(app)
	c.menu = nil
	if created {
		c.logger.Info("App opened", zap.String("app_id", string(app)), zap.String("instance_id", w.InstanceID))
	}
	c.publishLocked()
	return w, nil
}

// Window returns a single window
func (c *Controller) Window(instanceID string) (types.WindowInstance, bool) {
	return c.windows.Get(instanceID)
}

// Windows returns every window, bottom to top
func (c *Controller) Windows() []types.WindowInstance {
	return c.windows.List()
}

// CloseWindow closes a window
func (c *Controller) CloseWindow(instanceID string) bool {
	return c.windowOp(func() bool {
		if c.drag != nil && c.drag.id == instanceID {
			c.drag = nil
		}
		return c.windows.Close(instanceID)
	})
}

// FocusWindow raises a window
func (c *Controller) FocusWindow(instanceID string) bool {
	return c.windowOp(func() bool { return c.windows.Focus(instanceID) })
}

// MinimizeWindow hides a window
func (c *Controller) MinimizeWindow(instanceID string) bool {
	return c.windowOp(func() bool { return c.windows.Minimize(instanceID) })
}

// RestoreWindow shows a minimized window
func (c *Controller) RestoreWindow(instanceID string) bool {
	return c.windowOp(func() bool { return c.windows.Restore(instanceID) })
}

// ToggleMaximize maximizes or restores a window
func (c *Controller) ToggleMaximize(instanceID string) bool {
	return c.windowOp(func() bool { return c.windows.ToggleMaximize(instanceID) })
}

// MoveWindow places a window at a raw position, clamped to the viewport
func (c *Controller) MoveWindow(instanceID string, pos types.Point) bool {
	return c.windowOp(func() bool { return c.windows.Move(instanceID, pos) })
}

// ResizeWindow applies an edge resize
func (c *Controller) ResizeWindow(instanceID string, delta geometry.ResizeDelta) bool {
	return c.windowOp(func() bool { return c.windows.Resize(instanceID, delta) })
}

// BeginWindowDrag focuses the window and starts tracking a title bar drag
// from pointer. Maximized windows are focused but do not drag.
func (c *Controller) BeginWindowDrag(instanceID string, pointer types.Point) bool {
	return c.windowOp(func() bool {
		if !c.windows.Focus(instanceID) {
			return false
		}
		w, _ := c.windows.Get(instanceID)
		c.drag = nil
		if !w.IsMaximized {
			c.drag = &windowDrag{id: instanceID, origin: pointer, start: w.Position}
		}
		return true
	})
}

// MoveWindowDrag moves the dragged window so it follows pointer
func (c *Controller) MoveWindowDrag(instanceID string, pointer types.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drag == nil || c.drag.id != instanceID {
		return false
	}
	pos := c.drag.start.Add(pointer.Sub(c.drag.origin))
	if !c.windows.Move(instanceID, pos) {
		return false
	}
	c.publishLocked()
	return true
}

// EndWindowDrag finishes a title bar drag
func (c *Controller) EndWindowDrag(instanceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drag == nil || c.drag.id != instanceID {
		return false
	}
	c.drag = nil
	c.publishLocked()
	return true
}

// MinimizeAll hides every window
func (c *Controller) MinimizeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minimizeAllLocked()
	c.publishLocked()
}

// CloseAll closes every window
func (c *Controller) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeAllLocked()
	c.publishLocked()
}

func (c *Controller) minimizeAllLocked() {
	for _, w := range c.windows.List() {
		if !w.IsMinimized {
			c.windows.Minimize(w.InstanceID)
		}
	}
}

func (c *Controller) closeAllLocked() {
	for _, w := range c.windows.List() {
		c.windows.Close(w.InstanceID)
	}
	c.drag = nil
}

func (c *Controller) windowOp(op func() bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !op() {
		return false
	}
	c.menu = nil
	c.publishLocked()
	return true
}
