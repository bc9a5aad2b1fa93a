package geometry

import (
	"fmt"

	"github.com/nooros/backend/internal/shared/types"
)

// Edge names the border or corner a resize is dragged from
type Edge string

const (
	EdgeTop         Edge = "top"
	EdgeRight       Edge = "right"
	EdgeBottom      Edge = "bottom"
	EdgeLeft        Edge = "left"
	EdgeTopRight    Edge = "topRight"
	EdgeBottomRight Edge = "bottomRight"
	EdgeBottomLeft  Edge = "bottomLeft"
	EdgeTopLeft     Edge = "topLeft"
)

// ParseEdge validates an edge name
func ParseEdge(s string) (Edge, error) {
	switch e := Edge(s); e {
	case EdgeTop, EdgeRight, EdgeBottom, EdgeLeft, EdgeTopRight, EdgeBottomRight, EdgeBottomLeft, EdgeTopLeft:
		return e, nil
	}
	return "", fmt.Errorf("unknown resize edge %q", s)
}

func (e Edge) left() bool   { return e == EdgeLeft || e == EdgeTopLeft || e == EdgeBottomLeft }
func (e Edge) right() bool  { return e == EdgeRight || e == EdgeTopRight || e == EdgeBottomRight }
func (e Edge) top() bool    { return e == EdgeTop || e == EdgeTopLeft || e == EdgeTopRight }
func (e Edge) bottom() bool { return e == EdgeBottom || e == EdgeBottomLeft || e == EdgeBottomRight }

// ResizeDelta is a pointer movement applied to one edge or corner.
// Positive deltas grow the window regardless of which edge is dragged.
type ResizeDelta struct {
	Edge    Edge `json:"edge"`
	DWidth  int  `json:"dWidth"`
	DHeight int  `json:"dHeight"`
}

// Resize applies d to the frame. Dragging a top or left edge keeps the
// opposite edge anchored and moves the position. The result respects the
// limits and stays inside the usable area.
func (v Viewport) Resize(lim Limits, p types.Point, s types.Size, d ResizeDelta) (types.Point, types.Size) {
	u := v.Usable()
	// no real drag exceeds the viewport; capping also keeps the sums from overflowing
	d.DWidth = clamp(d.DWidth, -v.Width, v.Width)
	d.DHeight = clamp(d.DHeight, -v.Height, v.Height)

	switch {
	case d.Edge.left():
		right := p.X + s.Width
		w := clamp(s.Width+d.DWidth, lim.Min.Width, maxOrAvail(lim.Max.Width, u.Width))
		w = min(w, right-u.X)
		p.X, s.Width = right-w, w
	case d.Edge.right():
		w := clamp(s.Width+d.DWidth, lim.Min.Width, maxOrAvail(lim.Max.Width, u.Width))
		s.Width = min(w, u.Right()-p.X)
	}

	switch {
	case d.Edge.top():
		bottom := p.Y + s.Height
		h := clamp(s.Height+d.DHeight, lim.Min.Height, maxOrAvail(lim.Max.Height, u.Height))
		h = min(h, bottom-u.Y)
		p.Y, s.Height = bottom-h, h
	case d.Edge.bottom():
		h := clamp(s.Height+d.DHeight, lim.Min.Height, maxOrAvail(lim.Max.Height, u.Height))
		s.Height = min(h, u.Bottom()-p.Y)
	}

	return v.Fit(lim, p, s)
}

func maxOrAvail(hi, avail int) int {
	if hi <= 0 || hi > avail {
		return avail
	}
	return hi
}
