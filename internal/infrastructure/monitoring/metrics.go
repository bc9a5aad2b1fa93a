package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics.
// Each instance owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Window metrics
	WindowOps        *prometheus.CounterVec
	WindowsOpen      prometheus.Gauge
	WindowsMinimized prometheus.Gauge
	WindowsMaximized prometheus.Gauge

	// Icon metrics
	IconOps *prometheus.CounterVec

	// Persistence metrics
	PersistWrites   *prometheus.CounterVec
	PersistDuration *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	startTime time.Time
	snapshot  MetricsSnapshot
	mu        sync.RWMutex
}

// MetricsSnapshot holds current metric values for the JSON API
type MetricsSnapshot struct {
	TotalRequests     int64   `json:"total_requests"`
	TotalErrors       int64   `json:"total_errors"`
	OpenWindows       int64   `json:"open_windows"`
	ActiveConnections int64   `json:"active_connections"`
	PersistFailures   int64   `json:"persist_failures"`
	AvgLatencySeconds float64 `json:"avg_latency_seconds"`
	UptimeSeconds     float64 `json:"uptime_seconds"`

	totalDuration float64
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nooros_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nooros_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "path"},
		),

		WindowOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_window_operations_total",
				Help: "Window lifecycle operations by kind",
			},
			[]string{"op"},
		),
		WindowsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nooros_windows_open",
			Help: "Number of open windows",
		}),
		WindowsMinimized: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nooros_windows_minimized",
			Help: "Number of minimized windows",
		}),
		WindowsMaximized: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nooros_windows_maximized",
			Help: "Number of maximized windows",
		}),

		IconOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_icon_operations_total",
				Help: "Desktop icon operations by kind",
			},
			[]string{"op"},
		),

		PersistWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_persist_writes_total",
				Help: "Layout persistence writes by slot and status",
			},
			[]string{"slot", "status"},
		),
		PersistDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nooros_persist_duration_seconds",
				Help:    "Layout persistence write latency",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"slot"},
		),

		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_service_calls_total",
				Help: "Outbound service calls",
			},
			[]string{"service", "method", "status"},
		),
		ServiceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nooros_service_duration_seconds",
				Help:    "Outbound service call latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method"},
		),

		WSConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nooros_ws_connections_active",
			Help: "Number of active desktop stream connections",
		}),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nooros_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "nooros_uptime_seconds",
		Help: "Backend uptime in seconds",
	}, func() float64 { return time.Since(m.startTime).Seconds() })

	return m
}

// Handler exposes this collector's registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDuration += duration.Seconds()
	if status[0] == '4' || status[0] == '5' {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordWindowOp counts a window operation
func (m *Metrics) RecordWindowOp(op string) {
	m.WindowOps.WithLabelValues(op).Inc()
}

// SetWindowCounts publishes the current window totals
func (m *Metrics) SetWindowCounts(open, minimized, maximized int) {
	m.WindowsOpen.Set(float64(open))
	m.WindowsMinimized.Set(float64(minimized))
	m.WindowsMaximized.Set(float64(maximized))

	m.mu.Lock()
	m.snapshot.OpenWindows = int64(open)
	m.mu.Unlock()
}

// RecordIconOp counts an icon operation
func (m *Metrics) RecordIconOp(op string) {
	m.IconOps.WithLabelValues(op).Inc()
}

// RecordPersist records a layout write for one slot
func (m *Metrics) RecordPersist(slot string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
		m.mu.Lock()
		m.snapshot.PersistFailures++
		m.mu.Unlock()
	}
	m.PersistWrites.WithLabelValues(slot, status).Inc()
	m.PersistDuration.WithLabelValues(slot).Observe(duration.Seconds())
}

// RecordServiceCall records an outbound service call
func (m *Metrics) RecordServiceCall(service, method, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, method, status).Inc()
	m.ServiceDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
	m.mu.Lock()
	m.snapshot.ActiveConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
	m.mu.Lock()
	m.snapshot.ActiveConnections--
	m.mu.Unlock()
}

// Snapshot returns the current values for the JSON API
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.snapshot
	if snap.TotalRequests > 0 {
		snap.AvgLatencySeconds = snap.totalDuration / float64(snap.TotalRequests)
	}
	snap.UptimeSeconds = time.Since(m.startTime).Seconds()
	return snap
}
