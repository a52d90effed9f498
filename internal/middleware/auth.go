package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/google/uuid"
)

// Заголовки выставляет gateway после проверки токена.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type callerKey struct{}

func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(entities.Caller)
	return caller, ok
}

// Authenticate отклоняет запросы без корректной идентификации.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(HeaderUserID))
		if err != nil {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := entities.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = entities.RoleUser
		}
		if !role.Valid() {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := WithCaller(r.Context(), entities.Caller{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRoles(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, caller.Role) {
				utils.WriteError(w, "permission denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
