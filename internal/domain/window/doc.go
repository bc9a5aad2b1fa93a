// Package window implements the window registry: the set of open windows,
// their lifecycle (open, focus, minimize, maximize, close) and the z-order.
//
// Normal windows stack from ZFloor upward. Maximized windows are pinned to
// MaximizedZ so they cover every normal window. When the next stacking value
// would reach the pin, normal windows are renumbered densely from ZFloor+1.
package window
