package persistence

import "github.com/nooros/backend/internal/shared/types"

// MergeIcons overlays persisted positions onto the default layout.
// Every default icon is kept, in default order, with its current metadata.
// Persisted entries for unknown ids are dropped.
func MergeIcons(defaults, persisted []types.DesktopIcon) []types.DesktopIcon {
	positions := make(map[types.AppID]types.Point, len(persisted))
	for _, p := range persisted {
		if _, seen := positions[p.ID]; !seen {
			positions[p.ID] = p.Position
		}
	}

	out := make([]types.DesktopIcon, len(defaults))
	for i, d := range defaults {
		out[i] = d
		if p, ok := positions[d.ID]; ok {
			out[i].Position = p
		}
	}
	return out
}

// SanitizeWindows drops entries that cannot be restored: empty keys,
// unknown apps, repeated keys and second windows for the same app.
// Degenerate sizes fall back to fallback.
func SanitizeWindows(windows []types.WindowInstance, valid func(types.AppID) bool, fallback types.Size) []types.WindowInstance {
	out := make([]types.WindowInstance, 0, len(windows))
	keys := make(map[string]bool, len(windows))
	apps := make(map[types.AppID]bool, len(windows))

	for _, w := range windows {
		if w.InstanceID == "" || keys[w.InstanceID] || apps[w.AppID] {
			continue
		}
		if valid != nil && !valid(w.AppID) {
			continue
		}
		if w.Size.Width <= 0 || w.Size.Height <= 0 {
			w.Size = fallback
		}
		if !w.IsMaximized {
			w.RestoreState = nil
		}
		keys[w.InstanceID] = true
		apps[w.AppID] = true
		out = append(out, w)
	}
	return out
}
