// Package config loads server settings from environment variables.
//
// Every field has a default, so an empty environment yields a runnable
// desktop with SQLite persistence under ./data and the assistant in
// offline mode.
package config
