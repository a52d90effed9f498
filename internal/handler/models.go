package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest тело запроса на создание заказа
type PlaceOrderRequest struct {
	OrderItems []OrderItemRequest `json:"orderItems"`
}

// UnmarshalJSON не падает на неверной форме orderItems: если это не массив,
// позиций нет, и сервис вернет ошибку о пустом заказе.
func (r *PlaceOrderRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		OrderItems json.RawMessage `json:"orderItems"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.OrderItems = nil
	if err := json.Unmarshal(raw.OrderItems, &r.OrderItems); err != nil {
		r.OrderItems = nil
	}
	return nil
}

// OrderItemRequest позиция заказа от клиента. Цена не принимается, берется из каталога.
type OrderItemRequest struct {
	Product string `json:"product" example:"7b0f2c1e-4a8d-4f5b-9d6e-2c1a3b4c5d6e"`
	// число; строки и прочие типы считаются невалидным количеством
	Quantity json.RawMessage `json:"quantity" swaggertype:"number" example:"2"`
}

// UnmarshalJSON принимает позицию любой формы. Позиция, которая не является объектом,
// остается пустой; product не строкой сохраняется как есть и не пройдет проверку UUID.
func (it *OrderItemRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Product  json.RawMessage `json:"product"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*it = OrderItemRequest{}
		return nil
	}

	it.Product = parseProduct(raw.Product)
	it.Quantity = raw.Quantity
	return nil
}

func (r PlaceOrderRequest) ToEntity() []entities.ItemRequest {
	items := make([]entities.ItemRequest, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, entities.ItemRequest{
			ProductID: it.Product,
			Quantity:  parseQuantity(it.Quantity),
		})
	}
	return items
}

func parseProduct(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

// parseQuantity возвращает nil, если количество не передано, и 0, если это не число.
func parseQuantity(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var q float64
	if err := json.Unmarshal(raw, &q); err != nil {
		q = 0
	}
	return &q
}

// ChangeStatusRequest тело запроса на смену статуса
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required" example:"shipped"`
}

// CreateProductRequest тело запроса на создание товара
type CreateProductRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=100"`
	Description  string   `json:"description" validate:"required,min=5,max=1000"`
	Category     string   `json:"category" validate:"omitempty,uuid"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	CountInStock *int     `json:"countInStock" validate:"required,gte=0,lte=99999"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
}

func (r CreateProductRequest) ToEntity() entities.Product {
	p := entities.Product{
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
	}
	if r.Price != nil {
		p.Price = decimal.NewFromFloat(*r.Price).Round(2)
	}
	if r.CountInStock != nil {
		p.CountInStock = *r.CountInStock
	}
	if r.Category != "" {
		p.CategoryID = uuid.MustParse(r.Category)
	}
	return p
}

// Order представляет заказ
type Order struct {
	ID         string          `json:"id"`
	User       OrderUser       `json:"user"`
	OrderItems []OrderItem     `json:"orderItems"`
	Status     string          `json:"status" example:"pending"`
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"string" example:"30.00"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// OrderUser владелец заказа
type OrderUser struct {
	ID       string `json:"id"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// OrderItem позиция заказа с ценой на момент оформления
type OrderItem struct {
	Product  OrderProduct    `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"10.00"`
}

// OrderProduct текущее состояние товара из каталога
type OrderProduct struct {
	ID           string           `json:"id"`
	Title        string           `json:"title,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	Images       []string         `json:"images,omitempty"`
	CountInStock *int             `json:"countInStock,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			Product:  OrderProduct{ID: it.ProductID.String()},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return Order{
		ID:         o.ID.String(),
		User:       OrderUser{ID: o.UserID.String()},
		OrderItems: items,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func OrderDetailsToJSON(d entities.OrderDetails) Order {
	res := OrderEntityToJSON(d.Order)
	if d.Owner != nil {
		res.User.UserName = d.Owner.UserName
		res.User.Email = d.Owner.Email
	}
	for i, it := range d.Items {
		p, ok := d.Products[it.ProductID]
		if !ok {
			continue
		}
		res.OrderItems[i].Product = OrderProduct{
			ID:           p.ID.String(),
			Title:        p.Title,
			Price:        &p.Price,
			Images:       p.Images,
			CountInStock: &p.CountInStock,
		}
	}
	return res
}

// Product товар каталога
type Product struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"10.00"`
	CountInStock int             `json:"countInStock"`
	Images       []string        `json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func ProductEntityToJSON(p entities.Product) Product {
	res := Product{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		Images:       p.Images,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.CategoryID != uuid.Nil {
		res.Category = p.CategoryID.String()
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

// CreateCategoryRequest тело запроса на создание категории
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100" example:"Lighting"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// OrderResponse ответ с одним заказом
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Order  `json:"data"`
}

// Pagination параметры страницы
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalOrders int  `json:"totalOrders"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ListFilter примененный фильтр
type ListFilter struct {
	Search string `json:"search"`
}

// OrderListResponse страница заказов
type OrderListResponse struct {
	Success    bool       `json:"success"`
	Data       []Order    `json:"data"`
	Pagination Pagination `json:"pagination"`
	Filter     ListFilter `json:"filter"`
}

func OrderPageToJSON(p entities.OrderPage, search string) OrderListResponse {
	orders := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, OrderEntityToJSON(o))
	}
	return OrderListResponse{
		Success: true,
		Data:    orders,
		Pagination: Pagination{
			CurrentPage: p.Page,
			TotalPages:  p.TotalPages,
			TotalOrders: p.TotalOrders,
			Limit:       p.Limit,
			HasNextPage: p.HasNext(),
			HasPrevPage: p.HasPrev(),
		},
		Filter: ListFilter{Search: search},
	}
}

// ProductResponse ответ с товаром
type ProductResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    Product `json:"data"`
}

type CategoryResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    Category `json:"data"`
}

// InsufficientStockResponse описывает позицию, которую нельзя обеспечить остатком
type InsufficientStockResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ProductName       string `json:"productName"`
	AvailableStock    int    `json:"availableStock"`
	RequestedQuantity int    `json:"requestedQuantity"`
	// сумма по всем строкам с этим товаром
	TotalRequestedQuantity int `json:"totalRequestedQuantity"`
}
