package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total number of authentication attempts by result",
		},
		[]string{"result"},
	)

	authRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_request_duration_seconds",
			Help:    "Authentication check duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"result"},
	)
)

// recordAuthRequest records one authentication attempt. result is one of
// "success", "missing_token" or "invalid_token".
func recordAuthRequest(result string, duration time.Duration) {
	authRequestsTotal.WithLabelValues(result).Inc()
	authRequestDuration.WithLabelValues(result).Observe(duration.Seconds())
}
