package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PlatformRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_requests_total",
			Help: "Calls made to the assessment platform API",
		},
		[]string{"operation", "status"},
	)

	PlatformDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "platform_request_duration_seconds",
			Help:    "Duration of calls to the assessment platform API",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	ReorderFlushes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "training_reorder_flushes_total",
			Help: "Debounced training material order persistence runs",
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(PlatformRequests)
		prometheus.MustRegister(PlatformDuration)
		prometheus.MustRegister(ReorderFlushes)
	})
}

// ObservePlatformCall records one platform API call; status 0 means the
// request never got a response.
func ObservePlatformCall(operation string, status int, started time.Time) {
	PlatformRequests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	PlatformDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
