package desktop

import (
	"fmt"

	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/shared/types"
)

// Menu layout, used to keep the menu on screen
const (
	menuWidth      = 200
	menuItemHeight = 28
	menuPadding    = 8
)

// MenuTargetKind is what the context menu was opened on
type MenuTargetKind string

const (
	TargetDesktop MenuTargetKind = "desktop"
	TargetIcon    MenuTargetKind = "icon"
	TargetWindow  MenuTargetKind = "window"
)

// Menu actions
const (
	ActionOpen         = "open"
	ActionArrangeIcons = "arrange_icons"
	ActionMinimizeAll  = "minimize_all"
	ActionCloseAll     = "close_all"
	ActionMinimize     = "minimize"
	ActionMaximize     = "maximize"
	ActionClose        = "close"
)

// MenuTarget identifies what the menu acts on
type MenuTarget struct {
	Kind MenuTargetKind `json:"kind"`
	ID   string         `json:"id,omitempty"`
}

// MenuItem is one row of the context menu
type MenuItem struct {
	Action    string `json:"action,omitempty"`
	Label     string `json:"label,omitempty"`
	Disabled  bool   `json:"disabled,omitempty"`
	Separator bool   `json:"separator,omitempty"`
}

// ContextMenu is an open context menu
type ContextMenu struct {
	Position types.Point `json:"position"`
	Target   MenuTarget  `json:"target"`
	Items    []MenuItem  `json:"items"`
}

func (m ContextMenu) clone() ContextMenu {
	m.Items = append([]MenuItem(nil), m.Items...)
	return m
}

func (m ContextMenu) has(action string) bool {
	for _, item := range m.Items {
		if item.Action == action && !item.Disabled && !item.Separator {
			return true
		}
	}
	return false
}

var separator = MenuItem{Separator: true}

// OpenContextMenu shows the menu for target at p. Unknown icon or window
// targets fall back to the desktop menu.
func (c *Controller) OpenContextMenu(p types.Point, target MenuTarget) ContextMenu {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.menuItemsLocked(&target)
	size := types.Size{Width: menuWidth, Height: menuPadding + menuItemHeight*len(items)}
	v := c.windows.Viewport()
	bounds := geometry.Viewport{Width: v.Width, Height: v.Height}

	c.menu = &ContextMenu{
		Position: bounds.ClampPosition(p, size),
		Target:   target,
		Items:    items,
	}
	c.publishLocked()
	return c.menu.clone()
}

// CloseContextMenu dismisses the menu
func (c *Controller) CloseContextMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menu == nil {
		return
	}
	c.menu = nil
	c.publishLocked()
}

// ContextMenu returns the open menu, if any
func (c *Controller) ContextMenu() (ContextMenu, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menu == nil {
		return ContextMenu{}, false
	}
	return c.menu.clone(), true
}

// InvokeMenuItem runs an action from the open menu and closes it
func (c *Controller) InvokeMenuItem(action string) error {
	c.mu.Lock()
	menu := c.menu
	if menu == nil {
		c.mu.Unlock()
		return ErrNoMenu
	}
	if !menu.has(action) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	c.menu = nil
	target := menu.Target

	switch action {
	case ActionOpen:
		c.mu.Unlock()
		_, err := c.OpenApp(types.AppID(target.ID))
		return err
	case ActionArrangeIcons:
		c.icons.Reset()
	case ActionMinimizeAll:
		c.minimizeAllLocked()
	case ActionCloseAll:
		c.closeAllLocked()
	case ActionMinimize:
		c.windows.Minimize(target.ID)
	case ActionMaximize:
		c.windows.ToggleMaximize(target.ID)
	case ActionClose:
		c.windows.Close(target.ID)
	}
	c.publishLocked()
	c.mu.Unlock()
	return nil
}

func (c *Controller) menuItemsLocked(target *MenuTarget) []MenuItem {
	noWindows := len(c.windows.List()) == 0

	switch target.Kind {
	case TargetIcon:
		if _, ok := c.icons.Get(types.AppID(target.ID)); ok {
			return []MenuItem{
				{Action: ActionOpen, Label: "Open"},
				separator,
				{Action: ActionArrangeIcons, Label: "Arrange Icons"},
			}
		}
	case TargetWindow:
		if w, ok := c.windows.Get(target.ID); ok {
			maxLabel := "Maximize"
			if w.IsMaximized {
				maxLabel = "Restore"
			}
			return []MenuItem{
				{Action: ActionMinimize, Label: "Minimize", Disabled: w.IsMinimized},
				{Action: ActionMaximize, Label: maxLabel},
				separator,
				{Action: ActionClose, Label: "Close"},
			}
		}
	}

	*target = MenuTarget{Kind: TargetDesktop}
	return []MenuItem{
		{Action: ActionArrangeIcons, Label: "Arrange Icons"},
		separator,
		{Action: ActionMinimizeAll, Label: "Minimize All", Disabled: noWindows},
		{Action: ActionCloseAll, Label: "Close All Windows", Disabled: noWindows},
	}
}
