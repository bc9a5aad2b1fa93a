// Package server assembles the NoorOS backend: storage, desktop controller,
// assistant proxy, gin router, WebSocket stream and Prometheus endpoint.
package server
