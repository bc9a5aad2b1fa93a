package types

// AppID identifies a launchable application
type AppID string

const (
	AppAbout       AppID = "about"
	AppProjects    AppID = "projects"
	AppResume      AppID = "resume"
	AppTerminal    AppID = "terminal"
	AppMusic       AppID = "music"
	AppContact     AppID = "contact"
	AppTrash       AppID = "trash"
	AppSystem      AppID = "system"
	AppGames       AppID = "games"
	AppYouTube     AppID = "youtube"
	AppImageViewer AppID = "image_viewer"
	AppSlope       AppID = "game_slope"
	App2048        AppID = "game_2048"
	AppFlappy      AppID = "game_flappy"
	AppRun3        AppID = "game_run3"
)

// String returns the wire form of the id
func (a AppID) String() string { return string(a) }
