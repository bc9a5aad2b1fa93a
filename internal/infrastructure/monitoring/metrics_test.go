package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordWindowOp("open")
	assert.Equal(t, 1.0, value(t, a.WindowOps.WithLabelValues("open")))
	assert.Equal(t, 0.0, value(t, b.WindowOps.WithLabelValues("open")))
}

func TestRecordPersist(t *testing.T) {
	m := NewMetrics()

	m.RecordPersist("windows", time.Millisecond, nil)
	m.RecordPersist("windows", time.Millisecond, errors.New("disk full"))

	assert.Equal(t, 1.0, value(t, m.PersistWrites.WithLabelValues("windows", "success")))
	assert.Equal(t, 1.0, value(t, m.PersistWrites.WithLabelValues("windows", "error")))
	assert.Equal(t, int64(1), m.Snapshot().PersistFailures)
}

func TestSetWindowCounts(t *testing.T) {
	m := NewMetrics()
	m.SetWindowCounts(3, 1, 1)

	assert.Equal(t, 3.0, value(t, m.WindowsOpen))
	assert.Equal(t, int64(3), m.Snapshot().OpenWindows)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/windows/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/windows/terminal-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 1.0, value(t, m.RequestsTotal.WithLabelValues("GET", "/windows/:id", "404")))
	assert.Equal(t, int64(1), m.Snapshot().TotalErrors)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "nooros_http_requests_total"))
	assert.True(t, strings.Contains(body, "nooros_uptime_seconds"))
}

func TestTimerNilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		NewTimer(nil, "chat", "completion").Stop("success")
	})
}

func value(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	if m.Counter != nil {
		return m.GetCounter().GetValue()
	}
	return m.GetGauge().GetValue()
}
