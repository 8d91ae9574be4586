// Package metrics exposes HTTP and business counters for Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	OrdersCreated    prometheus.Counter
	OrdersFinalized  prometheus.Counter
	OrdersDeleted    prometheus.Counter
	FinalizedRevenue prometheus.Counter
	ReportsSubmitted prometheus.Counter
	SyncFailures     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piecework_orders_created_total",
			Help: "Orders created",
		}),
		OrdersFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piecework_orders_finalized_total",
			Help: "Finalize calls that succeeded",
		}),
		OrdersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piecework_orders_deleted_total",
			Help: "Orders deleted",
		}),
		FinalizedRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piecework_finalized_revenue_total",
			Help: "Sum of prices frozen by finalize calls",
		}),
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piecework_reports_submitted_total",
			Help: "Shift reports submitted to the external sink",
		}),
		SyncFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "piecework_sync_failures_total",
			Help: "Failed exchanges with the external sink",
		}, []string{"op"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OrdersCreated,
		m.OrdersFinalized,
		m.OrdersDeleted,
		m.FinalizedRevenue,
		m.ReportsSubmitted,
		m.SyncFailures,
	)
	return m
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "undefined"
		}

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) OrderCreated() { m.OrdersCreated.Inc() }

func (m *Metrics) OrderFinalized(price float64) {
	m.OrdersFinalized.Inc()
	m.FinalizedRevenue.Add(price)
}

func (m *Metrics) OrderDeleted() { m.OrdersDeleted.Inc() }

func (m *Metrics) ReportSubmitted() { m.ReportsSubmitted.Inc() }

func (m *Metrics) SyncFailed(op string) { m.SyncFailures.WithLabelValues(op).Inc() }
