package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// Cancellable statuses are the ones a customer may still cancel from.
func (s Status) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}

const (
	MinLineQuantity = 1
	MaxLineQuantity = 999
)

type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
	// catalog price at placement time, never recomputed
	Price decimal.Decimal
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Status     Status
	Items      []OrderLine
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewOrder(userID uuid.UUID, items []OrderLine) Order {
	o := Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: StatusPending,
		Items:  items,
	}
	o.RecalculateTotal()
	return o
}

func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	o.TotalPrice = total
}

// OrderDetails is an order together with the owner and the products it references.
type OrderDetails struct {
	Order
	Owner    *User
	Products map[uuid.UUID]Product
}

type OrderFilter struct {
	// uuid.Nil means any owner
	UserID uuid.UUID
	Search string
	Offset uint64
	Limit  uint64
}

type OrderPage struct {
	Orders      []Order
	Page        int
	Limit       int
	TotalOrders int
	TotalPages  int
}

func (p OrderPage) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p OrderPage) HasPrev() bool {
	return p.Page > 1
}

// ItemRequest is an order line as submitted by the client, before validation.
type ItemRequest struct {
	ProductID string
	// nil when the client omitted the quantity
	Quantity *float64
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
}
