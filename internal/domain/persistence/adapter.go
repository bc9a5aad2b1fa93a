package persistence

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/types"
)

const defaultWriteTimeout = 2 * time.Second

// Adapter mirrors the window registry and icon store into a Store
type Adapter struct {
	store   Store
	logger  *zap.Logger
	metrics *monitoring.Metrics
	timeout time.Duration
	enabled atomic.Bool

	mu         sync.RWMutex
	lastSaved  *time.Time
	lastLoaded *time.Time
	lastError  error
}

// Stats describes recent persistence activity
type Stats struct {
	Enabled    bool       `json:"enabled"`
	LastSaved  *time.Time `json:"last_saved,omitempty"`
	LastLoaded *time.Time `json:"last_loaded,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

// NewAdapter creates an adapter over store
func NewAdapter(store Store, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, logger: logger, timeout: defaultWriteTimeout}
}

// WithMetrics adds metrics tracking to the adapter
func (a *Adapter) WithMetrics(metrics *monitoring.Metrics) *Adapter {
	a.metrics = metrics
	return a
}

// Enable starts mirroring changes. Call after the initial load.
func (a *Adapter) Enable() { a.enabled.Store(true) }

// Enabled reports whether changes are being mirrored
func (a *Adapter) Enabled() bool { return a.enabled.Load() }

// LoadWindows reads the window slot. A missing or unreadable slot yields nil.
func (a *Adapter) LoadWindows(ctx context.Context, valid func(types.AppID) bool, fallback types.Size) []types.WindowInstance {
	data, ok := a.read(ctx, WindowsKey)
	if !ok {
		return nil
	}
	windows, err := DecodeWindows(data)
	if err != nil {
		a.logger.Warn("Discarding corrupt window layout", zap.Error(err))
		return nil
	}
	kept := SanitizeWindows(windows, valid, fallback)
	if dropped := len(windows) - len(kept); dropped > 0 {
		a.logger.Info("Dropped unrestorable windows", zap.Int("count", dropped))
	}
	a.markLoaded()
	return kept
}

// LoadIcons reads the icon slot and merges it onto defaults
func (a *Adapter) LoadIcons(ctx context.Context, defaults []types.DesktopIcon) []types.DesktopIcon {
	data, ok := a.read(ctx, IconsKey)
	if !ok {
		return MergeIcons(defaults, nil)
	}
	icons, err := DecodeIcons(data)
	if err != nil {
		a.logger.Warn("Discarding corrupt icon layout", zap.Error(err))
		return MergeIcons(defaults, nil)
	}
	a.markLoaded()
	return MergeIcons(defaults, icons)
}

// WindowsChanged implements window.Observer
func (a *Adapter) WindowsChanged(windows []types.WindowInstance) {
	if !a.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	_ = a.SaveWindows(ctx, windows)
}

// IconsChanged implements icon.Observer
func (a *Adapter) IconsChanged(icons []types.DesktopIcon) {
	if !a.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	_ = a.SaveIcons(ctx, icons)
}

// SaveWindows writes the window slot
func (a *Adapter) SaveWindows(ctx context.Context, windows []types.WindowInstance) error {
	data, err := EncodeWindows(windows)
	if err != nil {
		return a.fail("windows", err)
	}
	return a.write(ctx, "windows", WindowsKey, data)
}

// SaveIcons writes the icon slot
func (a *Adapter) SaveIcons(ctx context.Context, icons []types.DesktopIcon) error {
	data, err := EncodeIcons(icons)
	if err != nil {
		return a.fail("icons", err)
	}
	return a.write(ctx, "icons", IconsKey, data)
}

// Reset deletes both slots
func (a *Adapter) Reset(ctx context.Context) error {
	var errs []error
	for _, key := range []string{WindowsKey, IconsKey} {
		if err := a.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stats returns persistence statistics
func (a *Adapter) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := Stats{
		Enabled:    a.Enabled(),
		LastSaved:  a.lastSaved,
		LastLoaded: a.lastLoaded,
	}
	if a.lastError != nil {
		stats.LastError = a.lastError.Error()
	}
	return stats
}

func (a *Adapter) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Warn("Layout read failed, using defaults", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (a *Adapter) write(ctx context.Context, slot, key string, data []byte) error {
	start := time.Now()
	err := a.store.Set(ctx, key, data)
	if a.metrics != nil {
		a.metrics.RecordPersist(slot, time.Since(start), err)
	}
	if err != nil {
		return a.fail(slot, err)
	}

	now := time.Now()
	a.mu.Lock()
	a.lastSaved = &now
	a.lastError = nil
	a.mu.Unlock()
	return nil
}

func (a *Adapter) fail(slot string, err error) error {
	a.logger.Warn("Layout write failed", zap.String("slot", slot), zap.Error(err))
	a.mu.Lock()
	a.lastError = err
	a.mu.Unlock()
	return err
}

func (a *Adapter) markLoaded() {
	now := time.Now()
	a.mu.Lock()
	a.lastLoaded = &now
	a.mu.Unlock()
}
