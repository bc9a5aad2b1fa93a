package desktop

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/nooros/backend/internal/domain/apps"
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/domain/icon"
	"github.com/nooros/backend/internal/domain/persistence"
	"github.com/nooros/backend/internal/domain/window"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/types"
)

// Default shell geometry
const (
	DefaultWidth            = 1440
	DefaultHeight           = 900
	DefaultTopStrip         = 24
	DefaultMobileBreakpoint = 768
)

var (
	ErrUnknownApp    = errors.New("unknown app")
	ErrUnknownAction = errors.New("unknown menu action")
	ErrNoMenu        = errors.New("no context menu open")
)

// Options configures a Controller
type Options struct {
	Viewport         geometry.Viewport
	MobileBreakpoint int
	Logger           *zap.Logger
	Metrics          *monitoring.Metrics
	// NewID overrides window instance key generation
	NewID func(types.AppID) string
}

// Controller coordinates the desktop shell
type Controller struct {
	mu      sync.Mutex
	windows *window.Registry
	icons   *icon.Store
	persist *persistence.Adapter
	mobile  int

	drag    *windowDrag  // Protected by mu
	press   *icon.Press  // Protected by mu
	menu    *ContextMenu // Protected by mu
	version uint64       // Protected by mu
	subs    map[uint64]func(Snapshot)
	nextSub uint64

	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// New creates a controller persisting to store
func New(store persistence.Store, opts Options) *Controller {
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = geometry.Viewport{Width: DefaultWidth, Height: DefaultHeight, TopStrip: DefaultTopStrip}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	persist := persistence.NewAdapter(store, opts.Logger.Named("persistence")).WithMetrics(opts.Metrics)

	windows := window.NewRegistry(window.Config{
		Viewport:         opts.Viewport,
		MobileBreakpoint: opts.MobileBreakpoint,
		NewID:            opts.NewID,
		Title:            apps.Title,
	}).WithLogger(opts.Logger.Named("windows")).WithMetrics(opts.Metrics).WithObserver(persist)

	icons := icon.NewStore(apps.DefaultIcons()).WithMetrics(opts.Metrics).WithObserver(persist)
	icons.SetBounds(opts.Viewport)

	return &Controller{
		windows: windows,
		icons:   icons,
		persist: persist,
		mobile:  opts.MobileBreakpoint,
		subs:    make(map[uint64]func(Snapshot)),
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Boot restores the persisted layout and starts mirroring changes
func (c *Controller) Boot(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	windows := c.persist.LoadWindows(ctx, apps.IsValid, window.DefaultSize)
	c.windows.Load(windows)
	c.icons.Load(c.persist.LoadIcons(ctx, apps.DefaultIcons()))
	c.persist.Enable()

	c.logger.Info("Desktop restored", zap.Int("windows", len(windows)))
	c.publishLocked()
}

// ResetLayout deletes the persisted layout and returns to factory defaults
func (c *Controller) ResetLayout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.persist.Reset(ctx); err != nil {
		return err
	}
	c.windows.Load(nil)
	c.icons.Load(apps.DefaultIcons())
	c.drag, c.press, c.menu = nil, nil, nil
	c.publishLocked()
	return nil
}

// SetViewport reports new client dimensions
func (c *Controller) SetViewport(width, height int) geometry.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.windows.Viewport()
	v.Width, v.Height = width, height
	c.windows.SetViewport(v)
	c.icons.SetBounds(v)
	c.menu = nil
	c.publishLocked()
	return v
}

// Subscribe registers fn to receive a snapshot after every operation,
// starting with the current state. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.nextSub
	c.nextSub++
	c.subs[key] = fn
	fn(c.snapshotLocked())

	return func() {
		c.mu.Lock()
		delete(c.subs, key)
		c.mu.Unlock()
	}
}

// Snapshot returns the current desktop state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Stats reports window and persistence statistics
func (c *Controller) Stats() Stats {
	return Stats{
		Windows:     c.windows.Stats(),
		Persistence: c.persist.Stats(),
	}
}

// Stats combines registry and persistence statistics
type Stats struct {
	Windows     types.WindowStats `json:"windows"`
	Persistence persistence.Stats `json:"persistence"`
}

func (c *Controller) publishLocked() {
	c.version++
	if len(c.subs) == 0 {
		return
	}
	snap := c.snapshotLocked()
	for _, fn := range c.subs {
		fn(snap)
	}
}
