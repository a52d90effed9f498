package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("id", "user_id", "status", "total_price").
		Values(o.ID.String(), o.UserID.String(), string(o.Status), o.TotalPrice).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

func (r *postgresRepo) SaveOrderLines(ctx context.Context, orderID uuid.UUID, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").Columns(orderLineColumns...)
	for i, l := range lines {
		q = q.Values(orderID.String(), i, l.ProductID.String(), l.Quantity, l.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) OrderByID(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id.String()}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return r.withLines(ctx, order)
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error) {
	where := sq.And{}
	if f.UserID != uuid.Nil {
		where = append(where, sq.Eq{"user_id": f.UserID.String()})
	}
	if f.Search != "" {
		where = append(where, sq.ILike{"status": "%" + escapeLike(f.Search) + "%"})
	}

	var (
		total  int
		orders []Order
	)

	// внутри транзакции запросы должны идти последовательно, поэтому параллелим только без нее
	g, gctx := errgroup.WithContext(ctx)
	if trm.ExtractTx(ctx) != nil {
		g.SetLimit(1)
	}

	g.Go(func() error {
		query, args := r.qb.Select("COUNT(*)").From("orders").Where(where).MustSql()
		if err := r.getContext(gctx, &total, query, args...); err != nil {
			return fmt.Errorf("failed to count orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query, args := r.qb.Select(orderColumns...).
			From("orders").
			Where(where).
			OrderBy("created_at DESC", "id").
			Offset(f.Offset).
			Limit(f.Limit).
			MustSql()
		if err := r.selectContext(gctx, &orders, query, args...); err != nil {
			return fmt.Errorf("failed to select orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if len(orders) == 0 {
		return []entities.Order{}, total, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID.String()
	}

	lines, err := r.selectLines(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	linesMap := make(map[uuid.UUID][]OrderLine, len(orders))
	for _, l := range lines {
		linesMap[l.OrderID] = append(linesMap[l.OrderID], l)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, linesMap[o.ID]))
	}
	return result, total, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.Status, from ...entities.Status) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id.String()})

	if len(from) > 0 {
		statuses := make([]string, len(from))
		for i, s := range from {
			statuses[i] = string(s)
		}
		q = q.Where(sq.Eq{"status": statuses})
	}

	query, args := q.Suffix("RETURNING " + strings.Join(orderColumns, ", ")).MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		if len(from) == 0 {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return entities.Order{}, r.missingOrConflict(ctx, id)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	return r.withLines(ctx, order)
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	lines, err := r.selectLines(ctx, []string{id.String()})
	if err != nil {
		return entities.Order{}, err
	}

	// позиции удаляются каскадно
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id.String()}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err = r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to delete order: %w", err)
	}

	return OrderToEntity(order, lines), nil
}

func (r *postgresRepo) withLines(ctx context.Context, order Order) (entities.Order, error) {
	lines, err := r.selectLines(ctx, []string{order.ID.String()})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, lines), nil
}

func (r *postgresRepo) selectLines(ctx context.Context, orderIDs []string) ([]OrderLine, error) {
	query, args := r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}
	return lines, nil
}

func (r *postgresRepo) missingOrConflict(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Select("1").From("orders").Where(sq.Eq{"id": id.String()}).MustSql()

	var exists int
	err := r.getContext(ctx, &exists, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}
	return entities.ErrStatusChanged
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
