// Package apps is the compiled-in application catalog: titles, accent
// colors, the renderer each app uses, the default desktop icon layout and
// the dock contents.
package apps
