package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxStock = 99999

	MinCategoryName = 3
	MaxCategoryName = 100
)

type Product struct {
	ID           uuid.UUID
	Title        string
	Description  string
	CategoryID   uuid.UUID
	Price        decimal.Decimal
	CountInStock int
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID       uuid.UUID
	UserName string
	Email    string
	Role     Role
}

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
