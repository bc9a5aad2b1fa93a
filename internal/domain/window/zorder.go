package window

import (
	"sort"

	"github.com/nooros/backend/internal/shared/types"
)

const (
	// ZFloor is the lowest stacking value a normal window can have
	ZFloor int64 = 10
	// MaximizedZ is shared by every maximized window
	MaximizedZ int64 = 10000
)

// topZ returns the highest normal stacking value, ignoring skip
func topZ(windows map[string]*types.WindowInstance, skip string) int64 {
	top := ZFloor
	for id, w := range windows {
		if id == skip || w.IsMaximized {
			continue
		}
		if w.ZIndex > top {
			top = w.ZIndex
		}
	}
	return top
}

// nextZ returns the value that puts skip above every other normal window,
// renumbering first when the stack has grown into the maximized band
func (r *Registry) nextZ(skip string) int64 {
	next := topZ(r.windows, skip) + 1
	if next < MaximizedZ {
		return next
	}
	r.renormalize()
	return topZ(r.windows, skip) + 1
}

// renormalize renumbers normal windows ZFloor+1.. keeping their relative order
func (r *Registry) renormalize() {
	normal := make([]*types.WindowInstance, 0, len(r.windows))
	for _, w := range r.windows {
		if w.IsMaximized {
			w.ZIndex = MaximizedZ
			continue
		}
		normal = append(normal, w)
	}
	sort.SliceStable(normal, func(i, j int) bool {
		if normal[i].ZIndex != normal[j].ZIndex {
			return normal[i].ZIndex < normal[j].ZIndex
		}
		return r.seq[normal[i].InstanceID] < r.seq[normal[j].InstanceID]
	})
	for i, w := range normal {
		w.ZIndex = ZFloor + 1 + int64(i)
	}
}
