// Package resilience provides a circuit breaker for outbound calls.
//
// A closed breaker passes calls through and counts outcomes. When
// ReadyToTrip reports true the breaker opens and rejects calls with
// ErrCircuitOpen until Timeout elapses, then half-opens to admit up to
// MaxRequests trial calls. Enough trial successes close it again; any
// trial failure reopens it.
//
//	breaker := resilience.New("chat", resilience.Settings{Timeout: 30 * time.Second})
//	err := breaker.Do(func() error { return callUpstream(ctx) })
package resilience
