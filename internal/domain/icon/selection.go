package icon

import (
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/shared/types"
)

// Select makes id selected. Without multi the selection becomes {id};
// with multi, id is toggled in the existing selection.
func (s *Store) Select(id types.AppID, multi bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return false
	}
	if !multi {
		s.selected = map[types.AppID]struct{}{id: {}}
		return true
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
	return true
}

// ClearSelection deselects every icon
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[types.AppID]struct{})
}

// IsSelected reports whether id is selected
func (s *Store) IsSelected(id types.AppID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids in layout order
func (s *Store) Selected() []types.AppID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectionLocked()
}

// RectSelect replaces the selection with every icon whose footprint
// intersects the rectangle spanned by start and current
func (s *Store) RectSelect(start, current types.Point) []types.AppID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rectSelectLocked(geometry.Normalize(start, current))
}

// BeginBox starts a rubber-band selection at p and clears the selection
func (s *Store) BeginBox(p types.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boxStart = p
	s.box = &geometry.Rect{X: p.X, Y: p.Y}
	s.selected = make(map[types.AppID]struct{})
}

// UpdateBox stretches the rubber band to p and reselects
func (s *Store) UpdateBox(p types.Point) ([]types.AppID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.box == nil {
		return nil, false
	}
	r := geometry.Normalize(s.boxStart, p)
	s.box = &r
	return s.rectSelectLocked(r), true
}

// EndBox removes the rubber band, keeping the selection
func (s *Store) EndBox() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.box = nil
}

// Box returns the active rubber band, if any
func (s *Store) Box() (geometry.Rect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.box == nil {
		return geometry.Rect{}, false
	}
	return *s.box, true
}

func (s *Store) rectSelectLocked(r geometry.Rect) []types.AppID {
	s.selected = make(map[types.AppID]struct{})
	for _, icon := range s.icons {
		if geometry.RectOf(icon.Position, Footprint).Intersects(r) {
			s.selected[icon.ID] = struct{}{}
		}
	}
	return s.selectionLocked()
}

func (s *Store) selectionLocked() []types.AppID {
	out := make([]types.AppID, 0, len(s.selected))
	for _, icon := range s.icons {
		if _, ok := s.selected[icon.ID]; ok {
			out = append(out, icon.ID)
		}
	}
	return out
}
