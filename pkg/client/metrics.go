package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backlot_client",
			Name:      "requests_total",
			Help:      "Signed requests by method and outcome (HTTP status, or \"error\" when no response was received).",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backlot_client",
			Name:      "request_duration_seconds",
			Help:      "Time spent in the transport per request.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observe(method string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(method, label).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
