package types

// OpenWindowRequest opens or focuses an app window
type OpenWindowRequest struct {
	AppID AppID `json:"appId" binding:"required"`
}

// PointerRequest carries a pointer position for gesture endpoints
type PointerRequest struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Pointer string `json:"pointer,omitempty"`
	Multi   bool   `json:"multi,omitempty"`
}

// Point returns the pointer position
func (r PointerRequest) Point() Point { return Point{X: r.X, Y: r.Y} }

// ResizeRequest grows or shrinks a window from one edge or corner
type ResizeRequest struct {
	Edge    string `json:"edge" binding:"required"`
	DWidth  int    `json:"dWidth"`
	DHeight int    `json:"dHeight"`
}

// IconDragRequest moves icons by a delta
type IconDragRequest struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// SelectRequest selects a single icon, optionally additive
type SelectRequest struct {
	Multi bool `json:"multi"`
}

// ViewportRequest reports the client's viewport dimensions
type ViewportRequest struct {
	Width  int `json:"width" binding:"required,min=1"`
	Height int `json:"height" binding:"required,min=1"`
}

// ContextMenuRequest opens the context menu at a point
type ContextMenuRequest struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Target   string `json:"target"`
	TargetID string `json:"targetId,omitempty"`
}

// Point returns where the menu was requested
func (r ContextMenuRequest) Point() Point { return Point{X: r.X, Y: r.Y} }

// MenuActionRequest invokes a context menu item
type MenuActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ChatMessage is one turn of an assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents an assistant conversation
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
