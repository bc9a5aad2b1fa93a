// Package persistence saves and restores the desktop layout.
//
// Two slots are kept in a key-value Store: the window list and the icon
// positions. The Adapter observes the window registry and the icon store
// and rewrites a slot after every change, but only once Enable has been
// called so the initial load never writes back what it just read.
// Read failures and corrupt slots fall back to defaults; write failures
// are logged and the in-memory state stays authoritative.
package persistence
