package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductRouter(svc handler.ProductService) chi.Router {
	h := handler.NewProductHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	r.Use(middleware.Authenticate)
	h.Init(r)
	return r
}

func TestProductHandler_CreateProduct(t *testing.T) {
	categoryID := uuid.New()
	valid := `{"title":"Desk lamp","description":"Warm light","category":"` + categoryID.String() + `","price":19.99,"countInStock":7}`

	testCases := []struct {
		name         string
		body         string
		caller       entities.Caller
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   valid,
			caller: admin,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, admin, mock.MatchedBy(func(p entities.Product) bool {
						return p.Title == "Desk lamp" && p.CategoryID == categoryID &&
							p.Price.Equal(decimal.RequireFromString("19.99")) && p.CountInStock == 7
					})).
					RunAndReturn(func(_ context.Context, _ entities.Caller, p entities.Product) (entities.Product, error) {
						p.ID = uuid.New()
						return p, nil
					}).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"images":[]`,
		},
		{
			name:         "user is denied",
			body:         valid,
			caller:       user,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "short title",
			body:         `{"title":"D","description":"Warm light","price":1,"countInStock":1}`,
			caller:       admin,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Title":"must be at least 2"`,
		},
		{
			name:         "stock above limit",
			body:         `{"title":"Desk","description":"Warm light","price":1,"countInStock":100000}`,
			caller:       admin,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CountInStock":"must be at most 99999"`,
		},
		{
			name:   "unknown category",
			body:   valid,
			caller: admin,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, admin, mock.Anything).
					Return(entities.Product{}, entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"category not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			status, resp := do(newProductRouter(svc), http.MethodPost, "/products", tc.body, &tc.caller)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, resp, tc.wantBody)
		})
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewMockProductService(t)
	svc.EXPECT().GetProduct(mock.Anything, id).
		Return(entities.Product{ID: id, Title: "Chair", Price: decimal.NewFromInt(40)}, nil).Once()
	missing := uuid.New()
	svc.EXPECT().GetProduct(mock.Anything, missing).Return(entities.Product{}, entities.ErrProductNotFound).Once()

	r := newProductRouter(svc)

	status, resp := do(r, http.MethodGet, "/products/"+id.String(), "", &user)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp, `"title":"Chair"`)

	status, resp = do(r, http.MethodGet, "/products/"+missing.String(), "", &user)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, resp, `"product not found"`)
}
