package apps

import "github.com/nooros/backend/internal/shared/types"

// Default icon grid
const (
	IconColumnX  = 24
	IconColumnX2 = 120
	IconTopY     = 48
	IconRowStep  = 96
)

var defaultIconLayout = []struct {
	id       types.AppID
	subtitle string
	pos      types.Point
}{
	{types.AppAbout, "", types.Point{X: IconColumnX, Y: IconTopY}},
	{types.AppProjects, "", types.Point{X: IconColumnX, Y: IconTopY + IconRowStep}},
	{types.AppResume, "", types.Point{X: IconColumnX, Y: IconTopY + 2*IconRowStep}},
	{types.AppTerminal, "", types.Point{X: IconColumnX, Y: IconTopY + 3*IconRowStep}},
	{types.AppMusic, "", types.Point{X: IconColumnX, Y: IconTopY + 4*IconRowStep}},
	{types.AppContact, "Contact", types.Point{X: IconColumnX, Y: IconTopY + 5*IconRowStep}},
	{types.AppGames, "", types.Point{X: IconColumnX2, Y: IconTopY}},
	{types.AppTrash, "", types.Point{X: IconColumnX2, Y: IconTopY + IconRowStep}},
}

// DefaultIcons returns a fresh copy of the factory desktop layout
func DefaultIcons() []types.DesktopIcon {
	out := make([]types.DesktopIcon, 0, len(defaultIconLayout))
	for _, entry := range defaultIconLayout {
		app := catalog[entry.id]
		out = append(out, types.DesktopIcon{
			ID:       entry.id,
			Title:    app.Label,
			Subtitle: entry.subtitle,
			Position: entry.pos,
			Color:    app.Color,
		})
	}
	return out
}

// DockApps lists the apps pinned to the dock, left to right
func DockApps() []App {
	ids := []types.AppID{
		types.AppAbout,
		types.AppProjects,
		types.AppResume,
		types.AppTerminal,
		types.AppMusic,
		types.AppContact,
	}
	out := make([]App, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id])
	}
	return out
}
