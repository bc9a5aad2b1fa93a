// Package geometry holds the pure layout math of the desktop: rectangles,
// viewport bounds, clamping, edge resizing and selection rectangles.
//
// All coordinates are viewport pixels with the origin at the top-left.
// The top strip (menu bar) is never covered by a window frame.
package geometry
