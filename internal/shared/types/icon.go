package types

// DesktopIcon is a desktop shortcut; its id is the app it launches
type DesktopIcon struct {
	ID       AppID  `json:"id"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Position Point  `json:"position"`
	Color    string `json:"color,omitempty"`
}
