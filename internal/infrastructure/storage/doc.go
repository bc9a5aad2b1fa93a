// Package storage provides the key-value backends behind layout
// persistence: an in-process map, one JSON file per key written
// atomically, and a SQLite table.
package storage
