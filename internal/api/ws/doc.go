// Package ws pushes desktop snapshots to browsers over WebSocket.
//
// Every connection subscribes to the desktop controller and receives a
// "snapshot" frame after each change. A slow client only ever has the newest
// snapshot pending. Clients may send:
//
//	{"type":"ping"}                          -> {"type":"pong"}
//	{"type":"snapshot"}                      -> a fresh snapshot frame
//	{"type":"viewport","width":W,"height":H} -> viewport update, then a snapshot
package ws
