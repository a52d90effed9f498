package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.User, error) {
	if len(ids) == 0 {
		return []entities.User{}, nil
	}

	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": uuidStrings(ids)}).
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

// EnsureUser регистрирует вызывающего, если его еще нет. Существующая запись не меняется.
func (r *postgresRepo) EnsureUser(ctx context.Context, caller entities.Caller) error {
	role := caller.Role
	if !role.Valid() {
		role = entities.RoleUser
	}

	query, args := r.qb.Insert("users").
		Columns("id", "role").
		Values(caller.ID.String(), string(role)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}
