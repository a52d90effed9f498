package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/lib/pq"

	sq "github.com/Masterminds/squirrel"
)

const foreignKeyViolation = "23503"

func (r *postgresRepo) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": uuidStrings(ids)}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) ProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id.String()}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	query, args := r.qb.Insert("products").
		Columns("id", "title", "description", "category_id", "price", "count_in_stock", "images").
		Values(
			p.ID.String(), p.Title, nullString(p.Description), nullUUID(p.CategoryID),
			p.Price, p.CountInStock, pq.Array(images),
		).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return entities.Product{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return ProductToEntity(product), nil
}

// AdjustStock is a single conditional update, so concurrent reservations cannot drive stock below zero.
func (r *postgresRepo) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("count_in_stock", sq.Expr("count_in_stock + ?", delta)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productID.String()}).
		Where(sq.Expr("count_in_stock + ? >= 0", delta)).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, r.stockConflict(ctx, productID, -delta)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) stockConflict(ctx context.Context, productID uuid.UUID, requested int) error {
	query, args := r.qb.Select("title", "count_in_stock").
		From("products").
		Where(sq.Eq{"id": productID.String()}).
		MustSql()

	var row struct {
		Title        string `db:"title"`
		CountInStock int    `db:"count_in_stock"`
	}
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read stock: %w", err)
	}

	return &entities.InsufficientStockError{
		ProductID:         productID.String(),
		ProductName:       row.Title,
		AvailableStock:    row.CountInStock,
		RequestedQuantity: requested,
	}
}
