package geometry

import "github.com/nooros/backend/internal/shared/types"

// Viewport describes the visible desktop area
type Viewport struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TopStrip int `json:"topStrip"`
}

// Limits bounds a window's size
type Limits struct {
	Min types.Size
	Max types.Size
}

// Usable is the area windows may occupy, below the top strip
func (v Viewport) Usable() Rect {
	return Rect{X: 0, Y: v.TopStrip, Width: v.Width, Height: max(0, v.Height-v.TopStrip)}
}

// Bounds is the full viewport rectangle
func (v Viewport) Bounds() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// MaximizedFrame fills the usable area
func (v Viewport) MaximizedFrame() (types.Point, types.Size) {
	u := v.Usable()
	return u.Position(), u.Size()
}

// IsMobile reports whether the viewport is narrower than the breakpoint
func (v Viewport) IsMobile(breakpoint int) bool {
	return breakpoint > 0 && v.Width < breakpoint
}

// ClampPosition keeps a frame of size s inside the usable area.
// Frames larger than the area are pinned to its top-left corner.
func (v Viewport) ClampPosition(p types.Point, s types.Size) types.Point {
	u := v.Usable()
	return types.Point{
		X: clamp(p.X, u.X, u.Right()-s.Width),
		Y: clamp(p.Y, u.Y, u.Bottom()-s.Height),
	}
}

// Fit clamps a size to the limits and the usable area, then clamps the
// position so the frame is fully visible. When the viewport is smaller than
// the minimum size the viewport wins.
func (v Viewport) Fit(lim Limits, p types.Point, s types.Size) (types.Point, types.Size) {
	u := v.Usable()
	s = types.Size{
		Width:  fitDimension(s.Width, lim.Min.Width, lim.Max.Width, u.Width),
		Height: fitDimension(s.Height, lim.Min.Height, lim.Max.Height, u.Height),
	}
	return v.ClampPosition(p, s), s
}

func fitDimension(v, lo, hi, avail int) int {
	if hi <= 0 || hi > avail {
		hi = avail
	}
	return clamp(v, min(lo, hi), hi)
}
