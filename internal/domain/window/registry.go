package window

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/id"
	"github.com/nooros/backend/internal/shared/types"
)

// Placement constants for newly opened windows
const (
	CascadeOrigin = 80
	CascadeStep   = 36
	CascadeWrap   = 6
)

var (
	DefaultSize = types.Size{Width: 680, Height: 440}
	MinSize     = types.Size{Width: 300, Height: 200}
	MaxSize     = types.Size{Width: 1200, Height: 800}
)

// Observer is notified with the full window list after every mutation.
// Calls happen with the registry locked; observers must not call back into it.
type Observer interface {
	WindowsChanged(windows []types.WindowInstance)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(windows []types.WindowInstance)

func (f ObserverFunc) WindowsChanged(windows []types.WindowInstance) { f(windows) }

// Config configures a Registry
type Config struct {
	Viewport         geometry.Viewport
	MobileBreakpoint int
	// NewID overrides instance key generation
	NewID func(app types.AppID) string
	// Title resolves the default title for an app
	Title func(app types.AppID) string
}

// Registry tracks open windows
type Registry struct {
	mu       sync.RWMutex
	windows  map[string]*types.WindowInstance // Protected by mu
	seq      map[string]uint64                // open order, Protected by mu
	nextSeq  uint64
	viewport geometry.Viewport
	mobileBP int
	limits   geometry.Limits

	newID     func(types.AppID) string
	title     func(types.AppID) string
	observers []Observer
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

// NewRegistry creates an empty window registry
func NewRegistry(cfg Config) *Registry {
	r := &Registry{
		windows:  make(map[string]*types.WindowInstance),
		seq:      make(map[string]uint64),
		viewport: cfg.Viewport,
		mobileBP: cfg.MobileBreakpoint,
		limits:   geometry.Limits{Min: MinSize, Max: MaxSize},
		newID:    cfg.NewID,
		title:    cfg.Title,
		logger:   zap.NewNop(),
	}
	if r.newID == nil {
		r.newID = func(app types.AppID) string { return id.NewInstanceID(app) }
	}
	if r.title == nil {
		r.title = func(app types.AppID) string { return string(app) }
	}
	return r
}

// WithMetrics adds metrics tracking to the registry
func (r *Registry) WithMetrics(metrics *monitoring.Metrics) *Registry {
	r.metrics = metrics
	return r
}

// WithLogger sets the logger
func (r *Registry) WithLogger(logger *zap.Logger) *Registry {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithObserver registers an observer
func (r *Registry) WithObserver(o Observer) *Registry {
	r.mu.Lock()
	r.observers = append(r.observers, o)
	r.mu.Unlock()
	return r
}

// Open focuses and restores the existing window for app, or creates one.
// The boolean reports whether a new window was created.
func (r *Registry) Open(app types.AppID) (types.WindowInstance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w := r.findByAppLocked(app); w != nil {
		w.IsMinimized = false
		r.raiseLocked(w)
		r.changedLocked("focus")
		return w.Clone(), false
	}

	offset := CascadeStep * (len(r.windows) % CascadeWrap)
	pos, size := r.viewport.Fit(r.limits,
		types.Point{X: CascadeOrigin + offset, Y: CascadeOrigin + offset}, DefaultSize)

	w := &types.WindowInstance{
		InstanceID: r.newID(app),
		AppID:      app,
		Title:      r.title(app),
		Position:   pos,
		Size:       size,
	}

	if r.viewport.IsMobile(r.mobileBP) {
		w.RestoreState = &types.Frame{Position: pos, Size: size}
		w.Position, w.Size = r.viewport.MaximizedFrame()
		w.IsMaximized = true
		w.ZIndex = MaximizedZ
	} else {
		w.ZIndex = r.nextZ("")
	}

	r.windows[w.InstanceID] = w
	r.seq[w.InstanceID] = r.nextSeq
	r.nextSeq++

	r.logger.Debug("Window opened",
		zap.String("instance_id", w.InstanceID),
		zap.String("app_id", string(app)),
		zap.Int64("z_index", w.ZIndex))

	r.changedLocked("open")
	return w.Clone(), true
}

// Close removes a window. Unknown ids are ignored.
func (r *Registry) Close(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.windows[instanceID]; !ok {
		return false
	}
	delete(r.windows, instanceID)
	delete(r.seq, instanceID)

	r.changedLocked("close")
	return true
}

// Focus raises a window above every other normal window
func (r *Registry) Focus(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok {
		return false
	}
	r.raiseLocked(w)
	r.changedLocked("focus")
	return true
}

// Minimize hides a window
func (r *Registry) Minimize(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok {
		return false
	}
	w.IsMinimized = true
	r.changedLocked("minimize")
	return true
}

// Restore shows a minimized window and raises it
func (r *Registry) Restore(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok {
		return false
	}
	w.IsMinimized = false
	r.raiseLocked(w)
	r.changedLocked("restore")
	return true
}

// ToggleMaximize switches between the maximized frame and the saved frame.
// A minimized window is restored first.
func (r *Registry) ToggleMaximize(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok {
		return false
	}
	w.IsMinimized = false

	if !w.IsMaximized {
		w.RestoreState = &types.Frame{Position: w.Position, Size: w.Size}
		w.Position, w.Size = r.viewport.MaximizedFrame()
		w.IsMaximized = true
		w.ZIndex = MaximizedZ
		r.changedLocked("maximize")
		return true
	}

	if w.RestoreState != nil {
		// the viewport may have changed while maximized
		w.Position, w.Size = r.viewport.Fit(r.limits, w.RestoreState.Position, w.RestoreState.Size)
	} else {
		w.Position, w.Size = r.viewport.Fit(r.limits, types.Point{X: CascadeOrigin, Y: CascadeOrigin}, DefaultSize)
	}
	w.RestoreState = nil
	w.IsMaximized = false
	w.ZIndex = r.nextZ(w.InstanceID)
	r.changedLocked("unmaximize")
	return true
}

// Move places a window at pos clamped to the viewport.
// Maximized windows do not move.
func (r *Registry) Move(instanceID string, pos types.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok || w.IsMaximized {
		return false
	}
	w.Position = r.viewport.ClampPosition(pos, w.Size)
	r.changedLocked("move")
	return true
}

// Resize applies an edge resize. Maximized windows do not resize.
func (r *Registry) Resize(instanceID string, delta geometry.ResizeDelta) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[instanceID]
	if !ok || w.IsMaximized {
		return false
	}
	w.Position, w.Size = r.viewport.Resize(r.limits, w.Position, w.Size, delta)
	r.changedLocked("resize")
	return true
}

// SetViewport re-fits maximized windows and pulls normal windows back into view
func (r *Registry) SetViewport(v geometry.Viewport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewport = v
	r.fitLocked()
	r.changedLocked("viewport")
}

// fitLocked pins maximized windows to the viewport frame and pulls the
// rest back inside the usable area
func (r *Registry) fitLocked() {
	for _, w := range r.windows {
		if w.IsMaximized {
			w.Position, w.Size = r.viewport.MaximizedFrame()
			continue
		}
		w.Position, w.Size = r.viewport.Fit(r.limits, w.Position, w.Size)
	}
}

// Viewport returns the current viewport
func (r *Registry) Viewport() geometry.Viewport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.viewport
}

// Load replaces the registry contents without notifying observers.
// Stacking values are renumbered densely and frames saved under another
// viewport are fitted to the current one.
func (r *Registry) Load(windows []types.WindowInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.windows = make(map[string]*types.WindowInstance, len(windows))
	r.seq = make(map[string]uint64, len(windows))
	r.nextSeq = 0
	for _, in := range windows {
		w := in.Clone()
		r.windows[w.InstanceID] = &w
		r.seq[w.InstanceID] = r.nextSeq
		r.nextSeq++
	}
	r.renormalize()
	r.fitLocked()
	r.updateGaugesLocked()
}

// Get retrieves a window by instance id
func (r *Registry) Get(instanceID string) (types.WindowInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.windows[instanceID]
	if !ok {
		return types.WindowInstance{}, false
	}
	return w.Clone(), true
}

// FindByApp returns the window for app, if one is open
func (r *Registry) FindByApp(app types.AppID) (types.WindowInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if w := r.findByAppLocked(app); w != nil {
		return w.Clone(), true
	}
	return types.WindowInstance{}, false
}

// List returns all windows ordered bottom to top
func (r *Registry) List() []types.WindowInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

// Stats returns registry statistics
func (r *Registry) Stats() types.WindowStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := types.WindowStats{Total: len(r.windows)}
	var focused *types.WindowInstance
	for _, w := range r.windows {
		if w.IsMinimized {
			stats.Minimized++
			continue
		}
		if w.IsMaximized {
			stats.Maximized++
		}
		if focused == nil || r.above(w, focused) {
			focused = w
		}
	}
	if focused != nil {
		fid := focused.InstanceID
		stats.FocusedID = &fid
	}
	return stats
}

func (r *Registry) raiseLocked(w *types.WindowInstance) {
	if w.IsMaximized {
		w.ZIndex = MaximizedZ
		return
	}
	w.ZIndex = r.nextZ(w.InstanceID)
}

func (r *Registry) findByAppLocked(app types.AppID) *types.WindowInstance {
	var found *types.WindowInstance
	for _, w := range r.windows {
		if w.AppID != app {
			continue
		}
		if found == nil || r.seq[w.InstanceID] < r.seq[found.InstanceID] {
			found = w
		}
	}
	return found
}

// above orders windows by stacking value, then open order
func (r *Registry) above(a, b *types.WindowInstance) bool {
	if a.ZIndex != b.ZIndex {
		return a.ZIndex > b.ZIndex
	}
	return r.seq[a.InstanceID] > r.seq[b.InstanceID]
}

func (r *Registry) listLocked() []types.WindowInstance {
	ptrs := make([]*types.WindowInstance, 0, len(r.windows))
	for _, w := range r.windows {
		ptrs = append(ptrs, w)
	}
	sort.Slice(ptrs, func(i, j int) bool { return r.above(ptrs[j], ptrs[i]) })

	out := make([]types.WindowInstance, len(ptrs))
	for i, w := range ptrs {
		out[i] = w.Clone()
	}
	return out
}

func (r *Registry) changedLocked(op string) {
	if r.metrics != nil {
		r.metrics.RecordWindowOp(op)
	}
	r.updateGaugesLocked()

	if len(r.observers) == 0 {
		return
	}
	snapshot := r.listLocked()
	for _, o := range r.observers {
		o.WindowsChanged(snapshot)
	}
}

func (r *Registry) updateGaugesLocked() {
	if r.metrics == nil {
		return
	}
	var minimized, maximized int
	for _, w := range r.windows {
		if w.IsMinimized {
			minimized++
		}
		if w.IsMaximized {
			maximized++
		}
	}
	r.metrics.SetWindowCounts(len(r.windows), minimized, maximized)
}
