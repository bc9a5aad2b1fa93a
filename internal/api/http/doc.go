// Package http exposes the desktop controller and the assistant proxy over
// a gin router.
//
// Handlers translate JSON bodies into controller calls and answer with the
// affected state. Errors use {"error": message} bodies: 400 for malformed
// input, 404 for unknown windows, icons or apps, 409 for gesture calls with
// no gesture in progress, and 502 for assistant upstream failures.
package http
