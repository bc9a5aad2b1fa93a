package icon

import (
	"fmt"

	"github.com/nooros/backend/internal/shared/types"
)

// TapThreshold is the travel in pixels below which a touch press is a tap
const TapThreshold = 6

// PointerType is the input device behind a press
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerTouch PointerType = "touch"
	PointerPen   PointerType = "pen"
)

// ParsePointerType validates a pointer type; empty means mouse
func ParsePointerType(s string) (PointerType, error) {
	switch p := PointerType(s); p {
	case "":
		return PointerMouse, nil
	case PointerMouse, PointerTouch, PointerPen:
		return p, nil
	}
	return "", fmt.Errorf("unknown pointer type %q", s)
}

// Press follows one pointer from down to up on an icon.
// Mouse presses drag immediately and open on double-click.
// Touch and pen presses hold movement back until it passes TapThreshold,
// and a release below the threshold is a tap that opens the app.
type Press struct {
	ID      types.AppID
	Pointer PointerType
	last    types.Point
	travel  int
	pending types.Point
	moved   bool
}

// NewPress starts tracking a press at p
func NewPress(id types.AppID, pointer PointerType, p types.Point) *Press {
	return &Press{ID: id, Pointer: pointer, last: p}
}

// Move records pointer movement and returns the delta to apply to the icons
func (p *Press) Move(to types.Point) types.Point {
	d := to.Sub(p.last)
	p.last = to
	p.travel += abs(d.X) + abs(d.Y)

	if p.Pointer == PointerMouse || p.moved {
		p.moved = true
		return d
	}

	p.pending = p.pending.Add(d)
	if p.travel < TapThreshold {
		return types.Point{}
	}
	p.moved = true
	out := p.pending
	p.pending = types.Point{}
	return out
}

// Travel is the accumulated pointer movement
func (p *Press) Travel() int { return p.travel }

// IsTap reports whether releasing now should open the app
func (p *Press) IsTap() bool {
	return p.Pointer != PointerMouse && p.travel < TapThreshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
