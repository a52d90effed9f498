package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	query, args := r.qb.Insert("categories").
		Columns("id", "name").
		Values(c.ID.String(), c.Name).
		Suffix("RETURNING " + strings.Join(categoryColumns, ", ")).
		MustSql()

	var category Category
	if err := r.getContext(ctx, &category, query, args...); err != nil {
		return entities.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return CategoryToEntity(category), nil
}

func (r *postgresRepo) CategoryByID(ctx context.Context, id uuid.UUID) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id.String()}).
		MustSql()

	var category Category
	err := r.getContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(category), nil
}
