package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statusEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_processed_total",
			Help:      "Total number of successfully applied fulfillment status events",
		},
	)

	statusEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_failed_total",
			Help:      "Total number of fulfillment status events that could not be applied",
		},
	)

	statusEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_dlq_total",
			Help:      "Total number of status events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	statusEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_event_duration_seconds",
			Help:      "Histogram of status event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var requestErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "http",
		Name:      "request_errors_total",
		Help:      "Total number of failed API operations by error kind",
	},
	[]string{"op", "kind"},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		statusEventsProcessed,
		statusEventsFailed,
		statusEventsDLQ,
		commitErrors,
		statusEventDuration,

		requestErrors,
	)
}
