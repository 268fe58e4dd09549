// Package metrics provides Prometheus instrumentation for the POS server:
// standard HTTP request metrics plus counters for the ledger operations.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks HTTP request latency by method, route and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "restopos",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// SalesRecorded counts committed sales.
	SalesRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "restopos",
		Subsystem: "ledger",
		Name:      "sales_recorded_total",
		Help:      "Total number of sales committed to the ledger.",
	})

	// SnapshotImports counts snapshot imports by outcome.
	SnapshotImports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restopos",
			Subsystem: "ledger",
			Name:      "snapshot_imports_total",
			Help:      "Total number of snapshot import attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, SalesRecorded, SnapshotImports)
}

// Middleware records duration and status for every request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry for Prometheus to scrape.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
