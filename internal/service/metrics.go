package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})

	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "orders_rejected_total",
		Help:      "Total number of rejected order placements by reason.",
	}, []string{"reason"})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "orders_cancelled_total",
		Help:      "Total number of cancelled orders.",
	})

	statusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "status_changes_total",
		Help:      "Total number of order status changes by target status.",
	}, []string{"status"})

	sagaCompensations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "saga_compensations_total",
		Help:      "Total number of compensating actions executed.",
	}, []string{"saga"})

	sagaCompensationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "saga_compensation_failures_total",
		Help:      "Compensating actions that failed and left stock or orders inconsistent.",
	}, []string{"saga"})

	eventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "workflow",
		Name:      "event_publish_failures_total",
		Help:      "Total number of order events that could not be published.",
	})
)
