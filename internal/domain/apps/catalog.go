package apps

import (
	"sort"

	"github.com/nooros/backend/internal/shared/types"
)

// ContentKind selects the renderer for an app's window body
type ContentKind string

const (
	ContentDocument ContentKind = "document"
	ContentFolder   ContentKind = "folder"
	ContentPDF      ContentKind = "pdf"
	ContentTerminal ContentKind = "terminal"
	ContentMusic    ContentKind = "music"
	ContentBrowser  ContentKind = "browser"
	ContentTrash    ContentKind = "trash"
	ContentSystem   ContentKind = "system"
	ContentLauncher ContentKind = "launcher"
	ContentVideo    ContentKind = "video"
	ContentImage    ContentKind = "image"
	ContentGame     ContentKind = "game"
	ContentEmpty    ContentKind = "empty"
)

// Content describes what fills a window
type Content struct {
	Kind   ContentKind `json:"kind"`
	Source string      `json:"source,omitempty"`
}

// App is a catalog entry. Title is the window title, Label the text under
// the desktop icon and in the dock.
type App struct {
	ID      types.AppID `json:"id"`
	Title   string      `json:"title"`
	Label   string      `json:"label"`
	Color   string      `json:"color"`
	Content Content     `json:"content"`
	order   int
}

// FallbackTitle is used for ids missing from the catalog
const FallbackTitle = "App"

var catalog = map[types.AppID]App{
	types.AppAbout:       {ID: types.AppAbout, Title: "About.txt", Label: "About.txt", Color: "#38bdf8", Content: Content{Kind: ContentDocument, Source: "about.txt"}, order: 0},
	types.AppProjects:    {ID: types.AppProjects, Title: "Projects", Label: "Projects", Color: "#fbbf24", Content: Content{Kind: ContentFolder, Source: "projects"}, order: 1},
	types.AppResume:      {ID: types.AppResume, Title: "Resume.pdf", Label: "Resume.pdf", Color: "#34d399", Content: Content{Kind: ContentPDF, Source: "resume.pdf"}, order: 2},
	types.AppTerminal:    {ID: types.AppTerminal, Title: "Terminal", Label: "Terminal", Color: "#000000", Content: Content{Kind: ContentTerminal}, order: 3},
	types.AppMusic:       {ID: types.AppMusic, Title: "Music", Label: "Music", Color: "#a78bfa", Content: Content{Kind: ContentMusic}, order: 4},
	types.AppContact:     {ID: types.AppContact, Title: "Contact (Browser)", Label: "Browser", Color: "#22d3ee", Content: Content{Kind: ContentBrowser, Source: "contact"}, order: 5},
	types.AppGames:       {ID: types.AppGames, Title: "Games", Label: "Games", Color: "#f472b6", Content: Content{Kind: ContentLauncher, Source: "games"}, order: 6},
	types.AppTrash:       {ID: types.AppTrash, Title: "Trash", Label: "Trash", Color: "#000000", Content: Content{Kind: ContentTrash}, order: 7},
	types.AppSystem:      {ID: types.AppSystem, Title: "System", Label: "System", Color: "#94a3b8", Content: Content{Kind: ContentSystem}, order: 8},
	types.AppYouTube:     {ID: types.AppYouTube, Title: "YouTube", Label: "YouTube", Color: "#ef4444", Content: Content{Kind: ContentVideo}, order: 9},
	types.AppImageViewer: {ID: types.AppImageViewer, Title: "Image Viewer", Label: "Image Viewer", Color: "#60a5fa", Content: Content{Kind: ContentImage}, order: 10},
	types.AppSlope:       {ID: types.AppSlope, Title: "Slope", Label: "Slope", Color: "#22c55e", Content: Content{Kind: ContentGame, Source: "slope"}, order: 11},
	types.App2048:        {ID: types.App2048, Title: "2048", Label: "2048", Color: "#f59e0b", Content: Content{Kind: ContentGame, Source: "2048"}, order: 12},
	types.AppFlappy:      {ID: types.AppFlappy, Title: "Flappy Bird", Label: "Flappy Bird", Color: "#eab308", Content: Content{Kind: ContentGame, Source: "flappy"}, order: 13},
	types.AppRun3:        {ID: types.AppRun3, Title: "Run 3", Label: "Run 3", Color: "#6366f1", Content: Content{Kind: ContentGame, Source: "run3"}, order: 14},
}

// Lookup returns the catalog entry for id
func Lookup(id types.AppID) (App, bool) {
	app, ok := catalog[id]
	return app, ok
}

// IsValid reports whether id names a catalog app
func IsValid(id types.AppID) bool {
	_, ok := catalog[id]
	return ok
}

// Title returns the default window title for id
func Title(id types.AppID) string {
	if app, ok := catalog[id]; ok {
		return app.Title
	}
	return FallbackTitle
}

// ContentFor returns the renderer descriptor for id. Unknown ids render empty.
func ContentFor(id types.AppID) Content {
	if app, ok := catalog[id]; ok {
		return app.Content
	}
	return Content{Kind: ContentEmpty}
}

// All returns every catalog entry in display order
func All() []App {
	out := make([]App, 0, len(catalog))
	for _, app := range catalog {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}
