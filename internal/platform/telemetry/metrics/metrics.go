package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Outcome labels shared by upstream call metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served, by method and status class.",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	catalogFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "fetch_total",
			Help:      "Catalog page fetches by source and outcome.",
		},
		[]string{"source", "outcome"},
	)

	catalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "fetch_duration_seconds",
			Help:      "Catalog page fetch latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	identityCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "identity",
			Name:      "calls_total",
			Help:      "Auth backend calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	apiBaseResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "identity",
			Name:      "api_base_resolutions_total",
			Help:      "API base resolutions by how the base was chosen.",
		},
		[]string{"via"},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, StatusClass(status)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveCatalogFetch records one catalog source page fetch.
func ObserveCatalogFetch(source, outcome string, elapsed time.Duration) {
	catalogFetchTotal.WithLabelValues(source, outcome).Inc()
	catalogFetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveIdentityCall records one auth backend call.
func ObserveIdentityCall(operation, outcome string) {
	identityCallsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveAPIBaseResolution records how the auth API base was chosen
// (stored, probed, fallback).
func ObserveAPIBaseResolution(via string) {
	apiBaseResolutionsTotal.WithLabelValues(via).Inc()
}

// Outcome maps an error to a success/error label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// StatusClass buckets an HTTP status into "2xx", "3xx" and so on.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
