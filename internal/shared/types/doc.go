// Package types provides shared data structures for the NoorOS desktop backend.
//
// Core Types:
//   - AppID: Identifier of a launchable application
//   - WindowInstance: One open window and its geometry
//   - DesktopIcon: A shortcut placed on the desktop surface
//
// Geometry:
//   - Point, Size, Frame: Pixel coordinates in the viewport space
//
// Request Types:
//   - OpenWindowRequest, PointerRequest, ResizeRequest: HTTP payloads
//   - ChatRequest: Assistant proxy payload
//   - WSMessage: WebSocket communication
//
// Example Usage:
//
//	win := types.WindowInstance{
//	    InstanceID: id.NewInstanceID(types.AppTerminal),
//	    AppID:      types.AppTerminal,
//	    Title:      "Terminal",
//	}
package types
