/*
Package monitoring provides metrics collection for the desktop backend.

# Overview

Prometheus collectors for HTTP traffic, window and icon operations, layout
persistence, outbound service calls and the desktop event stream. Every
Metrics value owns a private registry.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "chat", "completion")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
