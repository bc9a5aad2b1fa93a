package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
)

// MetricsReport is the JSON view of the backend's metrics
type MetricsReport struct {
	Timestamp time.Time                  `json:"timestamp"`
	Backend   monitoring.MetricsSnapshot `json:"backend"`
	Desktop   desktop.Stats              `json:"desktop"`
	Chat      *ChatReport                `json:"chat,omitempty"`
	Summary   MetricsSummary             `json:"summary"`
}

// ChatReport describes the assistant upstream
type ChatReport struct {
	Online   bool   `json:"online"`
	Breaker  string `json:"breaker"`
	Requests uint32 `json:"requests"`
	Failures uint32 `json:"failures"`
}

// MetricsSummary provides high-level metrics
type MetricsSummary struct {
	TotalRequests    int64   `json:"total_requests"`
	AverageLatencyMs float64 `json:"average_latency_ms"`
	ErrorRate        float64 `json:"error_rate"`
	OpenWindows      int     `json:"open_windows"`
	Streams          int64   `json:"streams"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}

// MetricsJSON reports metrics for dashboards that do not scrape Prometheus
func (h *Handlers) MetricsJSON(c *gin.Context) {
	report := MetricsReport{
		Timestamp: time.Now(),
		Desktop:   h.desktop.Stats(),
	}
	if h.metrics != nil {
		report.Backend = h.metrics.Snapshot()
	}
	if h.chat != nil {
		breaker := h.chat.Client().Breaker()
		counts := breaker.Counts()
		report.Chat = &ChatReport{
			Online:   h.chat.Online(),
			Breaker:  breaker.State().String(),
			Requests: counts.Requests,
			Failures: counts.TotalFailures,
		}
	}
	report.Summary = summarize(report)
	c.JSON(http.StatusOK, report)
}

func summarize(r MetricsReport) MetricsSummary {
	s := MetricsSummary{
		TotalRequests:    r.Backend.TotalRequests,
		AverageLatencyMs: r.Backend.AvgLatencySeconds * 1000,
		OpenWindows:      r.Desktop.Windows.Total,
		Streams:          r.Backend.ActiveConnections,
		UptimeSeconds:    r.Backend.UptimeSeconds,
	}
	if r.Backend.TotalRequests > 0 {
		s.ErrorRate = float64(r.Backend.TotalErrors) / float64(r.Backend.TotalRequests)
	}
	return s
}
