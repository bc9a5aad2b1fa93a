package desktop

import (
	"github.com/nooros/backend/internal/domain/apps"
	"github.com/nooros/backend/internal/shared/types"
)

// DockAction is what clicking a dock entry does
type DockAction string

const (
	DockOpen    DockAction = "open"
	DockRestore DockAction = "restore"
	DockFocus   DockAction = "focus"
)

// DockEntry is one pinned app in the dock
type DockEntry struct {
	AppID     types.AppID `json:"appId"`
	Label     string      `json:"label"`
	Color     string      `json:"color"`
	Running   bool        `json:"running"`
	Minimized bool        `json:"minimized"`
	Action    DockAction  `json:"action"`
}

func dockEntries(windows []types.WindowInstance) []DockEntry {
	byApp := make(map[types.AppID]types.WindowInstance, len(windows))
	for _, w := range windows {
		if _, seen := byApp[w.AppID]; !seen || w.IsMinimized {
			byApp[w.AppID] = w
		}
	}

	pinned := apps.DockApps()
	out := make([]DockEntry, 0, len(pinned))
	for _, app := range pinned {
		entry := DockEntry{AppID: app.ID, Label: app.Label, Color: app.Color, Action: DockOpen}
		if w, ok := byApp[app.ID]; ok {
			entry.Running = true
			entry.Minimized = w.IsMinimized
			entry.Action = DockFocus
			if w.IsMinimized {
				entry.Action = DockRestore
			}
		}
		out = append(out, entry)
	}
	return out
}

// Dock returns the dock entries
func (c *Controller) Dock() []DockEntry {
	return dockEntries(c.windows.List())
}

// DockClick restores the app's first minimized window, otherwise opens
// or focuses the app
func (c *Controller) DockClick(app types.AppID) (types.WindowInstance, error) {
	if !apps.IsValid(app) {
		return types.WindowInstance{}, ErrUnknownApp
	}

	c.mu.Lock()
	for _, w := range c.windows.List() {
		if w.AppID == app && w.IsMinimized {
			c.windows.Restore(w.InstanceID)
			c.menu = nil
			c.publishLocked()
			restored, _ := c.windows.Get(w.InstanceID)
			c.mu.Unlock()
			return restored, nil
		}
	}
	c.mu.Unlock()

	return c.OpenApp(app)
}
