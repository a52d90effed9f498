package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderPlaced        EventType = "order.placed"
	EventOrderCancelled     EventType = "order.cancelled"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventOrderDeleted       EventType = "order.deleted"
)

type OrderEvent struct {
	Type       EventType
	OrderID    uuid.UUID
	UserID     uuid.UUID
	Status     Status
	TotalPrice decimal.Decimal
	OccurredAt time.Time
}

func NewOrderEvent(t EventType, o Order) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
}
