package desktop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/domain/icon"
	"github.com/nooros/backend/internal/domain/persistence"
	"github.com/nooros/backend/internal/domain/window"
	"github.com/nooros/backend/internal/infrastructure/storage"
	"github.com/nooros/backend/internal/shared/types"
)

func TestLayoutSurvivesRestart(t *testing.T) {
	store := storage.NewMemory()

	first := newController(t, store)
	a, _ := first.OpenApp(types.AppAbout)
	b, _ := first.OpenApp(types.AppTerminal)
	first.MoveWindow(a.InstanceID, types.Point{X: 500, Y: 300})
	first.MinimizeWindow(b.InstanceID)
	first.DragIcons(types.AppTrash, types.Point{X: 200, Y: 100})
	want := first.Windows()
	wantIcons := first.Snapshot().Icons

	second := newController(t, store)
	assert.Equal(t, want, second.Windows())
	assert.Equal(t, wantIcons, second.Snapshot().Icons)
}

func TestBootFitsLayoutToSmallerViewport(t *testing.T) {
	store := storage.NewMemory()

	wide := newControllerAt(t, store, geometry.Viewport{Width: 1920, Height: 1080, TopStrip: 24})
	term, _ := wide.OpenApp(types.AppTerminal)
	music, _ := wide.OpenApp(types.AppMusic)
	wide.ToggleMaximize(term.InstanceID)
	wide.MoveWindow(music.InstanceID, types.Point{X: 1200, Y: 600})
	wide.DragIcons(types.AppAbout, types.Point{X: 1700, Y: 900})

	c := newControllerAt(t, store, desk)
	usable := desk.Usable()

	got, ok := c.Window(term.InstanceID)
	require.True(t, ok)
	assert.True(t, got.IsMaximized)
	pos, size := desk.MaximizedFrame()
	assert.Equal(t, pos, got.Position)
	assert.Equal(t, size, got.Size)

	got, ok = c.Window(music.InstanceID)
	require.True(t, ok)
	assert.False(t, got.IsMaximized)
	assert.True(t, usable.Contains(geometry.RectOf(got.Position, got.Size)))

	about := c.Snapshot().Icons[0]
	assert.True(t, usable.Contains(geometry.RectOf(about.Position, icon.Footprint)))

	c.SetViewport(1000, 700)
	small := geometry.Viewport{Width: 1000, Height: 700, TopStrip: 24}
	about = c.Snapshot().Icons[0]
	assert.True(t, small.Usable().Contains(geometry.RectOf(about.Position, icon.Footprint)))
}

func TestBootDoesNotWriteBack(t *testing.T) {
	store := &countingStore{Memory: storage.NewMemory()}
	newController(t, store)
	assert.Equal(t, 0, store.sets)
}

func TestCorruptLayoutFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, persistence.WindowsKey, []byte("not json")))
	require.NoError(t, store.Set(ctx, persistence.IconsKey, []byte("{")))

	c := newController(t, store)
	assert.Empty(t, c.Windows())
	assert.Len(t, c.Snapshot().Icons, 8)
}

func TestBootDropsUnknownAppsAndRenumbers(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, persistence.WindowsKey, []byte(`[
		{"instanceId":"about-x","appId":"about","title":"About.txt","isMinimized":false,"zIndex":9990,"position":{"x":80,"y":80},"size":{"width":680,"height":440}},
		{"instanceId":"old-y","appId":"screensaver","title":"Old","isMinimized":false,"zIndex":12,"position":{"x":80,"y":80},"size":{"width":680,"height":440}},
		{"instanceId":"music-z","appId":"music","title":"Music","isMinimized":true,"zIndex":9999,"position":{"x":116,"y":116},"size":{"width":680,"height":440}}
	]`)))

	c := newController(t, store)
	list := c.Windows()
	require.Len(t, list, 2)
	assert.Equal(t, "about-x", list[0].InstanceID)
	assert.Equal(t, window.ZFloor+1, list[0].ZIndex)
	assert.Equal(t, window.ZFloor+2, list[1].ZIndex)
}

func TestIconPositionsMergeOntoDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, persistence.IconsKey,
		[]byte(`[{"id":"about","position":{"x":640,"y":320}},{"id":"retired","position":{"x":1,"y":1}}]`)))

	c := newController(t, store)
	icons := c.Snapshot().Icons
	require.Len(t, icons, 8)
	assert.Equal(t, types.Point{X: 640, Y: 320}, icons[0].Position)
	assert.Equal(t, "About.txt", icons[0].Title)
}

func TestResetLayout(t *testing.T) {
	store := storage.NewMemory()
	c := newController(t, store)
	c.OpenApp(types.AppAbout)
	c.DragIcons(types.AppAbout, types.Point{X: 300, Y: 300})

	require.NoError(t, c.ResetLayout(context.Background()))
	assert.Empty(t, c.Windows())

	_, err := store.Get(context.Background(), persistence.WindowsKey)
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	fresh := newController(t, store)
	assert.Empty(t, fresh.Windows())
	assert.Equal(t, c.Snapshot().Icons, fresh.Snapshot().Icons)
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := &countingStore{Memory: storage.NewMemory(), fail: true}
	c := newController(t, store)

	w, err := c.OpenApp(types.AppAbout)
	require.NoError(t, err)
	got, ok := c.Window(w.InstanceID)
	assert.True(t, ok)
	assert.Equal(t, w, got)
	assert.NotEmpty(t, c.Stats().Persistence.LastError)
}

type countingStore struct {
	*storage.Memory
	sets int
	fail bool
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte) error {
	s.sets++
	if s.fail {
		return assert.AnError
	}
	return s.Memory.Set(ctx, key, value)
}
