// Package metrics holds the Prometheus collectors of the blog server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "third_way",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "third_way",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "third_way",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	archivesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "third_way",
			Subsystem: "export",
			Name:      "archives_total",
			Help:      "Total number of export archives built.",
		},
		[]string{"kind", "success"},
	)

	archiveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "third_way",
			Subsystem: "export",
			Name:      "archive_duration_seconds",
			Help:      "Time spent building export archives.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"kind"},
	)

	sessionsSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "third_way",
			Subsystem: "sessions",
			Name:      "expired_deleted_total",
			Help:      "Total number of expired sessions removed by the sweeper.",
		},
	)

	panicsRecovered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "third_way",
			Subsystem: "http",
			Name:      "panics_recovered_total",
			Help:      "Total number of handler panics recovered.",
		},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "third_way",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by a rate limit.",
		},
		[]string{"scope"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		archivesBuilt,
		archiveDuration,
		sessionsSwept,
		panicsRecovered,
		rateLimited,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RouteFunc resolves the route label of a request, e.g. a mux path template.
type RouteFunc func(r *http.Request) string

// InstrumentHandler wraps next with HTTP metrics collection, labelling each
// request with route(r). Empty routes are reported as "unmatched".
func InstrumentHandler(route RouteFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			httpInFlight.Inc()
			defer httpInFlight.Dec()

			next.ServeHTTP(rec, r)

			label := route(r)
			if label == "" {
				label = "unmatched"
			}

			httpRequests.WithLabelValues(r.Method, label, strconv.Itoa(rec.status)).Inc()
			httpDuration.WithLabelValues(r.Method, label).Observe(time.Since(start).Seconds())
		})
	}
}

// RecordArchive records one export archive build.
func RecordArchive(kind string, duration time.Duration, success bool) {
	archivesBuilt.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
	archiveDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordSessionsSwept adds n to the expired-session counter.
func RecordSessionsSwept(n int64) {
	if n > 0 {
		sessionsSwept.Add(float64(n))
	}
}

// RecordPanic counts one recovered handler panic.
func RecordPanic() {
	panicsRecovered.Inc()
}

// RecordRateLimited counts one request rejected by the limiter for scope.
func RecordRateLimited(scope string) {
	rateLimited.WithLabelValues(scope).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
