package desktop

import (
	"time"

	"github.com/nooros/backend/internal/domain/apps"
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/shared/id"
	"github.com/nooros/backend/internal/shared/types"
)

// Snapshot is the complete renderable desktop state
type Snapshot struct {
	Version      uint64         `json:"version"`
	Viewport     ViewportState  `json:"viewport"`
	Windows      []WindowView   `json:"windows"`
	Icons        []IconView     `json:"icons"`
	Dock         []DockEntry    `json:"dock"`
	FocusedID    string         `json:"focusedId,omitempty"`
	SelectionBox *geometry.Rect `json:"selectionBox,omitempty"`
	ContextMenu  *ContextMenu   `json:"contextMenu,omitempty"`
}

// ViewportState is the viewport plus derived layout mode
type ViewportState struct {
	geometry.Viewport
	Mobile bool `json:"mobile"`
}

// WindowView is a window plus what to render inside it
type WindowView struct {
	types.WindowInstance
	Content  apps.Content `json:"content"`
	Color    string       `json:"color,omitempty"`
	OpenedAt *time.Time   `json:"openedAt,omitempty"`
}

// openedAt reads the creation time embedded in a generated instance key
func openedAt(instanceID string) *time.Time {
	_, suffix, ok := id.SplitInstanceID(instanceID)
	if !ok {
		return nil
	}
	ts, err := id.Timestamp(suffix)
	if err != nil {
		return nil
	}
	return &ts
}

// IconView is an icon plus its selection state
type IconView struct {
	types.DesktopIcon
	Selected bool `json:"selected"`
}

func (c *Controller) snapshotLocked() Snapshot {
	v := c.windows.Viewport()
	snap := Snapshot{
		Version:  c.version,
		Viewport: ViewportState{Viewport: v, Mobile: v.IsMobile(c.mobile)},
	}

	list := c.windows.List()
	snap.Windows = make([]WindowView, 0, len(list))
	for _, w := range list {
		view := WindowView{
			WindowInstance: w,
			Content:        apps.ContentFor(w.AppID),
			OpenedAt:       openedAt(w.InstanceID),
		}
		if app, ok := apps.Lookup(w.AppID); ok {
			view.Color = app.Color
		}
		snap.Windows = append(snap.Windows, view)
		if !w.IsMinimized {
			// list is bottom to top
			snap.FocusedID = w.InstanceID
		}
	}

	selected := make(map[types.AppID]bool)
	for _, appID := range c.icons.Selected() {
		selected[appID] = true
	}
	icons := c.icons.Icons()
	snap.Icons = make([]IconView, 0, len(icons))
	for _, ic := range icons {
		snap.Icons = append(snap.Icons, IconView{DesktopIcon: ic, Selected: selected[ic.ID]})
	}

	snap.Dock = dockEntries(list)

	if box, ok := c.icons.Box(); ok {
		snap.SelectionBox = &box
	}
	if c.menu != nil {
		menu := c.menu.clone()
		snap.ContextMenu = &menu
	}
	return snap
}
