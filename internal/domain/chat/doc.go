// Package chat forwards the desktop assistant conversation to an
// OpenAI-compatible chat completions endpoint.
//
// The service is stateless: every call carries the full history sent by the
// browser. Without an API key it answers with a canned offline reply so the
// chat window stays usable in local setups.
//
// Outbound calls go through resty on top of a retryablehttp client, a token
// bucket limiter and a circuit breaker.
package chat
