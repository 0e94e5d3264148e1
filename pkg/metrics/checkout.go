package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "session",
			Name:      "transitions_total",
			Help:      "Total number of checkout phase transitions",
		},
		[]string{"from", "to"},
	)

	CheckoutOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "session",
			Name:      "outcomes_total",
			Help:      "Total number of terminal checkout outcomes",
		},
		[]string{"kind"},
	)

	OutcomeDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "sink",
			Name:      "deliveries_total",
			Help:      "Total number of outcome deliveries per sink",
		},
		[]string{"sink", "status"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout",
			Subsystem: "session",
			Name:      "active",
			Help:      "Number of checkout sessions held by the service",
		},
	)
)

func init() {
	Registry.MustRegister(CheckoutTransitions, CheckoutOutcomes, OutcomeDeliveries, ActiveSessions)
}
