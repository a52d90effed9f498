package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	admin := entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}
	valid := entities.Product{Title: "Desk", Price: decimal.NewFromInt(120), CountInStock: 4}
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		caller       entities.Caller
		product      entities.Product
		mockBehavior func(repo *mocks.MockProductRepo)
		wantErr      error
	}{
		{
			name:    "success",
			caller:  admin,
			product: valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
						return p.ID != uuid.Nil && p.Title == "Desk"
					})).
					RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
						return p, nil
					}).Once()
			},
		},
		{
			name:         "user is denied",
			caller:       entities.Caller{ID: uuid.New(), Role: entities.RoleUser},
			product:      valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrPermissionDenied,
		},
		{
			name:         "negative price",
			caller:       admin,
			product:      entities.Product{Title: "Desk", Price: decimal.NewFromInt(-1)},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name:         "stock above limit",
			caller:       admin,
			product:      entities.Product{Title: "Desk", CountInStock: entities.MaxStock + 1},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:    "unknown category",
			caller:  admin,
			product: valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrCategoryNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:    "repo error",
			caller:  admin,
			product: valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, dbErr).Once()
			},
			wantErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			svc := service.NewProductService(logger, repo)
			got, err := svc.CreateProduct(context.Background(), tc.caller, tc.product)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	id := uuid.New()
	repo.EXPECT().ProductByID(mock.Anything, id).Return(entities.Product{ID: id, Title: "Chair"}, nil).Once()

	svc := service.NewProductService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
	got, err := svc.GetProduct(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Title)
}
