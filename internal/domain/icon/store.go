package icon

import (
	"sync"

	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/types"
)

// Icon footprint used for hit testing and bounds clamping
const (
	Width  = 80
	Height = 80
)

// Footprint is the size every icon occupies
var Footprint = types.Size{Width: Width, Height: Height}

// Observer is notified with the full icon list after positions change.
// Calls happen with the store locked; observers must not call back into it.
type Observer interface {
	IconsChanged(icons []types.DesktopIcon)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(icons []types.DesktopIcon)

func (f ObserverFunc) IconsChanged(icons []types.DesktopIcon) { f(icons) }

// Store holds desktop icons in layout order
type Store struct {
	mu        sync.RWMutex
	defaults  []types.DesktopIcon
	icons     []types.DesktopIcon      // Protected by mu
	index     map[types.AppID]int      // Protected by mu
	selected  map[types.AppID]struct{} // Protected by mu
	box       *geometry.Rect           // Protected by mu
	boxStart  types.Point              // Protected by mu
	bounds    *geometry.Viewport       // Protected by mu
	observers []Observer
	metrics   *monitoring.Metrics
}

// NewStore creates a store seeded with defaults
func NewStore(defaults []types.DesktopIcon) *Store {
	s := &Store{
		defaults: append([]types.DesktopIcon(nil), defaults...),
		selected: make(map[types.AppID]struct{}),
	}
	s.setLocked(defaults)
	return s
}

// WithObserver registers an observer
func (s *Store) WithObserver(o Observer) *Store {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
	return s
}

// WithMetrics adds metrics tracking to the store
func (s *Store) WithMetrics(metrics *monitoring.Metrics) *Store {
	s.metrics = metrics
	return s
}

// SetBounds sets the area icon drags are clamped to and pulls icons left
// outside it back in view
func (s *Store) SetBounds(v geometry.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bounds = &v
	if s.clampAllLocked() {
		s.changedLocked("viewport")
	}
}

// Load replaces icon positions without notifying observers
func (s *Store) Load(icons []types.DesktopIcon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(icons)
	s.clampAllLocked()
	s.selected = make(map[types.AppID]struct{})
}

// Reset restores the default layout
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(s.defaults)
	s.clampAllLocked()
	s.selected = make(map[types.AppID]struct{})
	s.changedLocked("reset")
}

// Icons returns a copy of all icons in layout order
func (s *Store) Icons() []types.DesktopIcon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.DesktopIcon(nil), s.icons...)
}

// Get returns a single icon
func (s *Store) Get(id types.AppID) (types.DesktopIcon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return types.DesktopIcon{}, false
	}
	return s.icons[i], true
}

// Drag moves id by delta. When id is selected the whole selection moves
// together; otherwise only id moves. With bounds set, the delta is reduced
// so every moved icon stays inside the viewport and the formation is kept.
func (s *Store) Drag(id types.AppID, delta types.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return false
	}

	moving := []types.AppID{id}
	if _, sel := s.selected[id]; sel {
		moving = s.selectionLocked()
	}

	delta = s.clampDeltaLocked(moving, delta)
	if delta == (types.Point{}) {
		return true
	}
	for _, m := range moving {
		i := s.index[m]
		s.icons[i].Position = s.icons[i].Position.Add(delta)
	}
	s.changedLocked("drag")
	return true
}

func (s *Store) clampDeltaLocked(moving []types.AppID, delta types.Point) types.Point {
	if s.bounds == nil {
		return delta
	}
	rects := make([]geometry.Rect, 0, len(moving))
	for _, m := range moving {
		rects = append(rects, geometry.RectOf(s.icons[s.index[m]].Position, Footprint))
	}
	group, _ := geometry.Bounds(rects)
	area := s.bounds.Usable()

	target := s.bounds.ClampPosition(group.Position().Add(delta), group.Size())
	// a group already outside the area may only move back toward it
	if group.X < area.X || group.Right() > area.Right() {
		target.X = group.X + towards(delta.X, target.X-group.X)
	}
	if group.Y < area.Y || group.Bottom() > area.Bottom() {
		target.Y = group.Y + towards(delta.Y, target.Y-group.Y)
	}
	return target.Sub(group.Position())
}

// towards keeps d only when it points the same way as correction
func towards(d, correction int) int {
	switch {
	case correction > 0 && d > 0:
		return min(d, correction)
	case correction < 0 && d < 0:
		return max(d, correction)
	}
	return 0
}

// clampAllLocked keeps every icon footprint inside the bounds and reports
// whether anything moved
func (s *Store) clampAllLocked() bool {
	if s.bounds == nil {
		return false
	}
	moved := false
	for i := range s.icons {
		p := s.bounds.ClampPosition(s.icons[i].Position, Footprint)
		if p != s.icons[i].Position {
			s.icons[i].Position = p
			moved = true
		}
	}
	return moved
}

func (s *Store) setLocked(icons []types.DesktopIcon) {
	s.icons = append([]types.DesktopIcon(nil), icons...)
	s.index = make(map[types.AppID]int, len(icons))
	for i, icon := range s.icons {
		s.index[icon.ID] = i
	}
}

func (s *Store) changedLocked(op string) {
	if s.metrics != nil {
		s.metrics.RecordIconOp(op)
	}
	if len(s.observers) == 0 {
		return
	}
	snapshot := append([]types.DesktopIcon(nil), s.icons...)
	for _, o := range s.observers {
		o.IconsChanged(snapshot)
	}
}
