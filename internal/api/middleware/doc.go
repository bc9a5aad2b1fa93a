// Package middleware provides the gin middleware stack of the desktop API.
//
//   - RequestID: UUID per request, echoed in X-Request-ID
//   - Logger, Recovery: zap access log and panic recovery
//   - CORS: allowed frontend origins, WebSocket upgrades included
//   - RateLimit: per-IP token buckets, idle buckets dropped after ten minutes
//
// Example Usage:
//
//	router.Use(middleware.RequestID(), middleware.Recovery(log))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig(origins...)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
