package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Payment gateway request latency in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "status"},
	)

	GatewayRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "gateway",
			Name:      "retries_total",
			Help:      "Total number of retried gateway requests",
		},
		[]string{"operation"},
	)
)

func init() {
	Registry.MustRegister(GatewayRequestDuration, GatewayRetries)
}
