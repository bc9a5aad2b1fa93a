// Package desktop is the shell controller. It owns the window registry,
// the icon store and the layout persistence adapter, drives pointer
// gestures (window drags, icon presses, rubber-band selection), derives
// the dock and context menu, and publishes a Snapshot to subscribers
// after every operation.
//
// All operations are serialized by the controller. Subscribers run
// synchronously in operation order and must not block.
package desktop
