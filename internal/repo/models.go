package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var (
	orderColumns     = []string{"id", "user_id", "status", "total_price", "created_at", "updated_at"}
	orderLineColumns = []string{"order_id", "position", "product_id", "quantity", "price"}
	productColumns   = []string{
		"id", "title", "description", "category_id", "price",
		"count_in_stock", "images", "created_at", "updated_at",
	}
	userColumns     = []string{"id", "user_name", "email", "role"}
	categoryColumns = []string{"id", "name", "created_at"}
)

type Order struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	Status     string          `db:"status"`
	TotalPrice decimal.Decimal `db:"total_price"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type OrderLine struct {
	OrderID   uuid.UUID       `db:"order_id"`
	Position  int             `db:"position"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type Product struct {
	ID           uuid.UUID       `db:"id"`
	Title        string          `db:"title"`
	Description  sql.NullString  `db:"description"`
	CategoryID   uuid.NullUUID   `db:"category_id"`
	Price        decimal.Decimal `db:"price"`
	CountInStock int             `db:"count_in_stock"`
	Images       pq.StringArray  `db:"images"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type User struct {
	ID       uuid.UUID      `db:"id"`
	UserName sql.NullString `db:"user_name"`
	Email    sql.NullString `db:"email"`
	Role     string         `db:"role"`
}

type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Status:     entities.Status(o.Status),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}

	if len(lines) > 0 {
		order.Items = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Items = append(order.Items, OrderLineToEntity(l))
		}
	}

	return order
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Price:     l.Price,
	}
}

func ProductToEntity(p Product) entities.Product {
	product := entities.Product{
		ID:           p.ID,
		Title:        p.Title,
		Description:  nullStringToString(p.Description),
		Price:        p.Price,
		CountInStock: p.CountInStock,
		Images:       []string(p.Images),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.CategoryID.Valid {
		product.CategoryID = p.CategoryID.UUID
	}
	return product
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:       u.ID,
		UserName: nullStringToString(u.UserName),
		Email:    nullStringToString(u.Email),
		Role:     entities.Role(u.Role),
	}
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
