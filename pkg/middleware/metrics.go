// Package middleware holds the HTTP middleware shared by every service:
// request IDs, Prometheus instrumentation, and per-request timeouts.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
)

// Metrics instruments the wrapped handler with request count, latency,
// and an in-flight gauge.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			m.HTTPRequestsInFlight.Inc()
			defer m.HTTPRequestsInFlight.Dec()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			path := normalizePath(r.URL.Path)
			m.HTTPRequestsTotal.WithLabelValues(
				r.Method,
				path,
				strconv.Itoa(sw.status),
			).Inc()
			m.HTTPRequestDuration.WithLabelValues(
				r.Method,
				path,
			).Observe(time.Since(start).Seconds())
		})
	}
}

// statusWriter records the response status for the labels.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.status = code
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.wroteHeader = true
	}
	return sw.ResponseWriter.Write(b)
}

// servedPaths is every route the platform exposes. The gateway forwards
// whatever path a client sends, so anything else collapses to one label
// to keep the time-series count bounded.
var servedPaths = map[string]struct{}{
	"/api/chat":               {},
	"/api/suggest":            {},
	"/health":                 {},
	"/health/live":            {},
	"/health/ready":           {},
	"/stats":                  {},
	"/stats/top-queries":      {},
	"/stats/snapshots":        {},
	"/stats/snapshots/latest": {},
	"/admin/keys":             {},
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if _, ok := servedPaths[path]; ok {
		return path
	}
	return "other"
}
