package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nooros/backend/internal/shared/types"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		id   types.AppID
		want string
	}{
		{types.AppAbout, "About.txt"},
		{types.AppResume, "Resume.pdf"},
		{types.AppContact, "Contact (Browser)"},
		{types.AppTrash, "Trash"},
		{types.AppID("solitaire"), FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.id))
		})
	}
}

func TestContentFor(t *testing.T) {
	assert.Equal(t, ContentTerminal, ContentFor(types.AppTerminal).Kind)
	assert.Equal(t, ContentGame, ContentFor(types.App2048).Kind)
	assert.Equal(t, ContentEmpty, ContentFor(types.AppID("nope")).Kind)
}

func TestAllIsOrderedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 15)
	assert.Equal(t, types.AppAbout, all[0].ID)
	assert.Equal(t, types.AppRun3, all[len(all)-1].ID)

	for _, app := range all {
		assert.True(t, IsValid(app.ID))
		assert.NotEmpty(t, app.Color)
	}
}

func TestDefaultIcons(t *testing.T) {
	icons := DefaultIcons()
	require.NotEmpty(t, icons)

	seen := map[types.AppID]bool{}
	for _, icon := range icons {
		assert.False(t, seen[icon.ID], "duplicate icon %s", icon.ID)
		seen[icon.ID] = true
		assert.True(t, IsValid(icon.ID))
	}
	assert.Equal(t, "Browser", icons[5].Title)

	// callers may mutate their copy freely
	icons[0].Position.X = 999
	assert.Equal(t, IconColumnX, DefaultIcons()[0].Position.X)
}

func TestDockApps(t *testing.T) {
	dock := DockApps()
	ids := make([]types.AppID, 0, len(dock))
	for _, app := range dock {
		ids = append(ids, app.ID)
	}
	assert.Equal(t, []types.AppID{"about", "projects", "resume", "terminal", "music", "contact"}, ids)
}
