package types

// WindowInstance represents one open window on the desktop.
// JSON field names match the layout persisted by the browser client.
type WindowInstance struct {
	InstanceID  string `json:"instanceId"`
	AppID       AppID  `json:"appId"`
	Title       string `json:"title"`
	IsMinimized bool   `json:"isMinimized"`
	ZIndex      int64  `json:"zIndex"`
	Position    Point  `json:"position"`
	Size        Size   `json:"size"`
	IsMaximized bool   `json:"isMaximized,omitempty"`

	// Frame to return to when leaving the maximized state
	RestoreState *Frame `json:"restoreState,omitempty"`
}

// Frame returns the current position and size
func (w WindowInstance) Frame() Frame {
	return Frame{Position: w.Position, Size: w.Size}
}

// Clone returns a deep copy
func (w WindowInstance) Clone() WindowInstance {
	if w.RestoreState != nil {
		rs := *w.RestoreState
		w.RestoreState = &rs
	}
	return w
}

// WindowStats contains window registry statistics
type WindowStats struct {
	Total     int     `json:"total"`
	Minimized int     `json:"minimized"`
	Maximized int     `json:"maximized"`
	FocusedID *string `json:"focused_id,omitempty"`
}
