package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearorithm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wearorithm_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wearorithm_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Stylist calls, by operation (recommend, analyze, palette) and outcome.
	StylistCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearorithm_stylist_calls_total",
			Help: "Total number of outbound stylist calls",
		},
		[]string{"operation", "outcome"},
	)

	StylistCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wearorithm_stylist_call_duration_seconds",
			Help:    "Latency of outbound stylist calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"operation"},
	)

	StylistMockResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearorithm_stylist_mock_responses_total",
			Help: "Responses served by the mock stylist because no API key is configured",
		},
		[]string{"operation"},
	)

	StylistBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wearorithm_stylist_breaker_state",
			Help: "Circuit breaker state for the stylist (0=closed, 1=half-open, 2=open)",
		},
	)

	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearorithm_uploads_rejected_total",
			Help: "Image uploads rejected before analysis",
		},
		[]string{"reason"},
	)
)

func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStylistCall records one outbound call. outcome is "success",
// "error" or "rejected" (rate limited or breaker open).
func RecordStylistCall(operation, outcome string, duration time.Duration) {
	StylistCallsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome != "rejected" {
		StylistCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

func RecordMockResponse(operation string) {
	StylistMockResponses.WithLabelValues(operation).Inc()
}

func SetBreakerState(state int) {
	StylistBreakerState.Set(float64(state))
}

func RecordUploadRejected(reason string) {
	UploadsRejected.WithLabelValues(reason).Inc()
}
