package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/saga"
	txMocks "github.com/SergeyBogomolovv/shop-order-service/pkg/trm/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	orders    *mocks.MockOrderRepo
	catalog   *mocks.MockCatalogRepo
	users     *mocks.MockUserRepo
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	d := deps{
		orders:    mocks.NewMockOrderRepo(t),
		catalog:   mocks.NewMockCatalogRepo(t),
		users:     mocks.NewMockUserRepo(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return d
}

type orderWorkflow interface {
	PlaceOrder(ctx context.Context, caller entities.Caller, items []entities.ItemRequest) (entities.OrderDetails, error)
	CancelOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error)
	ChangeStatus(ctx context.Context, caller entities.Caller, orderID uuid.UUID, status entities.Status) (entities.Order, error)
	ApplyFulfillmentStatus(ctx context.Context, orderID uuid.UUID, status entities.Status) (entities.Order, error)
	GetOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.OrderDetails, error)
	ListOrders(ctx context.Context, caller entities.Caller, params entities.ListParams) (entities.OrderPage, error)
	DeleteOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error)
}

func (d deps) service() orderWorkflow {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.orders, d.catalog, d.users, d.publisher)
}

func qty(v float64) *float64 { return &v }

func product(title string, price int64, stock int) entities.Product {
	return entities.Product{
		ID:           uuid.New(),
		Title:        title,
		Price:        decimal.NewFromInt(price),
		CountInStock: stock,
	}
}

func eventOfType(t entities.EventType) any {
	return mock.MatchedBy(func(e entities.OrderEvent) bool { return e.Type == t })
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	valid := uuid.NewString()

	testCases := []struct {
		name        string
		items       []entities.ItemRequest
		wantErr     error
		wantDetails map[string]any
	}{
		{name: "no items", items: nil, wantErr: entities.ErrItemsRequired},
		{name: "empty items", items: []entities.ItemRequest{}, wantErr: entities.ErrItemsRequired},
		{name: "missing product", items: []entities.ItemRequest{{Quantity: qty(1)}}, wantErr: entities.ErrItemIncomplete},
		{name: "missing quantity", items: []entities.ItemRequest{{ProductID: valid}}, wantErr: entities.ErrItemIncomplete},
		{
			name:        "malformed product id",
			items:       []entities.ItemRequest{{ProductID: "abc", Quantity: qty(1)}},
			wantErr:     entities.ErrInvalidProductID,
			wantDetails: map[string]any{"invalidId": "abc"},
		},
		{name: "zero quantity", items: []entities.ItemRequest{{ProductID: valid, Quantity: qty(0)}}, wantErr: entities.ErrQuantityTooSmall},
		{name: "negative quantity", items: []entities.ItemRequest{{ProductID: valid, Quantity: qty(-2)}}, wantErr: entities.ErrQuantityTooSmall},
		{
			name:        "fractional quantity",
			items:       []entities.ItemRequest{{ProductID: valid, Quantity: qty(1.5)}},
			wantErr:     entities.ErrQuantityNotWhole,
			wantDetails: map[string]any{"invalidQuantity": 1.5},
		},
		{name: "quantity above limit", items: []entities.ItemRequest{{ProductID: valid, Quantity: qty(1000)}}, wantErr: entities.ErrQuantityTooLarge},
		{
			name: "first bad line wins",
			items: []entities.ItemRequest{
				{ProductID: valid, Quantity: qty(1)},
				{ProductID: "bad", Quantity: qty(0)},
				{ProductID: valid},
			},
			wantErr: entities.ErrInvalidProductID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// ни один репозиторий не должен быть вызван
			svc := newDeps(t).service()

			_, err := svc.PlaceOrder(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleUser}, tc.items)

			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, entities.ErrValidation)
			if tc.wantDetails != nil {
				var de *entities.DetailError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tc.wantDetails, de.Details)
			}
		})
	}
}

func TestOrderService_PlaceOrder_ProductsNotFound(t *testing.T) {
	d := newDeps(t)
	known := product("Mouse", 10, 5)
	missing := uuid.New()

	d.catalog.EXPECT().
		ProductsByIDs(mock.Anything, []uuid.UUID{known.ID, missing}).
		Return([]entities.Product{known}, nil).Once()

	_, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, []entities.ItemRequest{
		{ProductID: known.ID.String(), Quantity: qty(1)},
		{ProductID: missing.String(), Quantity: qty(1)},
	})

	assert.ErrorIs(t, err, entities.ErrProductsNotFound)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	testCases := []struct {
		name          string
		stock         int
		items         func(id uuid.UUID) []entities.ItemRequest
		wantRequested int
		wantTotal     int
	}{
		{
			name:  "single line",
			stock: 2,
			items: func(id uuid.UUID) []entities.ItemRequest {
				return []entities.ItemRequest{{ProductID: id.String(), Quantity: qty(3)}}
			},
			wantRequested: 3,
			wantTotal:     3,
		},
		{
			name:  "duplicate lines are summed",
			stock: 3,
			items: func(id uuid.UUID) []entities.ItemRequest {
				return []entities.ItemRequest{
					{ProductID: id.String(), Quantity: qty(1)},
					{ProductID: id.String(), Quantity: qty(3)},
				}
			},
			// строка, на которой остатка не хватило, и общий спрос по товару
			wantRequested: 1,
			wantTotal:     4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			p := product("Keyboard", 50, tc.stock)

			d.catalog.EXPECT().
				ProductsByIDs(mock.Anything, []uuid.UUID{p.ID}).
				Return([]entities.Product{p}, nil).Once()

			_, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, tc.items(p.ID))

			var se *entities.InsufficientStockError
			require.ErrorAs(t, err, &se)
			assert.ErrorIs(t, err, entities.ErrInsufficientStock)
			assert.Equal(t, "Keyboard", se.ProductName)
			assert.Equal(t, tc.stock, se.AvailableStock)
			assert.Equal(t, tc.wantRequested, se.RequestedQuantity)
			assert.Equal(t, tc.wantTotal, se.TotalRequested)
		})
	}
}

func TestOrderService_PlaceAndCancel(t *testing.T) {
	d := newDeps(t)
	svc := d.service()

	caller := entities.Caller{ID: uuid.New(), Role: entities.RoleUser}
	p := product("Lamp", 10, 5)
	owner := entities.User{ID: caller.ID, UserName: "alice", Email: "alice@example.com"}

	d.catalog.EXPECT().
		ProductsByIDs(mock.Anything, []uuid.UUID{p.ID}).
		Return([]entities.Product{p}, nil)

	// владелец регистрируется в той же транзакции до вставки заказа
	ensureOwner := d.users.EXPECT().EnsureUser(mock.Anything, caller).Return(nil).Once()

	var stored entities.Order
	d.orders.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
			return o.UserID == caller.ID &&
				o.Status == entities.StatusPending &&
				o.TotalPrice.Equal(decimal.NewFromInt(30))
		})).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return o, nil
		}).Once().
		NotBefore(ensureOwner)
	d.orders.EXPECT().
		SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	afterReserve := p
	afterReserve.CountInStock = 2
	d.catalog.EXPECT().AdjustStock(mock.Anything, p.ID, -3).Return(afterReserve, nil).Once()
	d.users.EXPECT().UsersByIDs(mock.Anything, []uuid.UUID{caller.ID}).Return([]entities.User{owner}, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderPlaced)).Return(nil).Once()

	placed, err := svc.PlaceOrder(context.Background(), caller, []entities.ItemRequest{
		{ProductID: p.ID.String(), Quantity: qty(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, stored.ID, placed.ID)
	assert.Equal(t, entities.StatusPending, placed.Status)
	assert.True(t, placed.TotalPrice.Equal(decimal.NewFromInt(30)))
	require.Len(t, placed.Items, 1)
	assert.True(t, placed.Items[0].Price.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, placed.Owner)
	assert.Equal(t, "alice@example.com", placed.Owner.Email)
	assert.Equal(t, "Lamp", placed.Products[p.ID].Title)

	// отмена возвращает товар на склад
	d.orders.EXPECT().OrderByID(mock.Anything, placed.ID).Return(placed.Order, nil).Once()

	cancelled := placed.Order
	cancelled.Status = entities.StatusCancelled
	d.orders.EXPECT().
		UpdateStatus(mock.Anything, placed.ID, entities.StatusCancelled, entities.StatusPending).
		Return(cancelled, nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, p.ID, 3).Return(p, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderCancelled)).Return(nil).Once()

	got, err := svc.CancelOrder(context.Background(), caller, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, got.Status)
}

func TestOrderService_PlaceOrder_ReservationFailureCompensates(t *testing.T) {
	d := newDeps(t)
	a := product("Pen", 2, 10)
	b := product("Ink", 5, 10)

	d.catalog.EXPECT().
		ProductsByIDs(mock.Anything, []uuid.UUID{a.ID, b.ID}).
		Return([]entities.Product{b, a}, nil).Once()

	d.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil).Once()
	var orderID uuid.UUID
	d.orders.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			orderID = o.ID
			return o, nil
		}).Once()
	d.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	d.catalog.EXPECT().AdjustStock(mock.Anything, a.ID, -4).Return(a, nil).Once()
	// остаток b успели выкупить между проверкой и списанием
	d.catalog.EXPECT().AdjustStock(mock.Anything, b.ID, -1).
		Return(entities.Product{}, &entities.InsufficientStockError{ProductID: b.ID.String(), AvailableStock: 0, RequestedQuantity: 1}).Once()

	// компенсации в обратном порядке
	releaseA := d.catalog.EXPECT().AdjustStock(mock.Anything, a.ID, 4).Return(a, nil).Once()
	d.orders.EXPECT().
		DeleteOrder(mock.Anything, mock.MatchedBy(func(id uuid.UUID) bool { return id == orderID })).
		Return(entities.Order{}, nil).Once().
		NotBefore(releaseA)

	_, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, []entities.ItemRequest{
		{ProductID: a.ID.String(), Quantity: qty(4)},
		{ProductID: b.ID.String(), Quantity: qty(1)},
	})

	var se *entities.InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Ink", se.ProductName)
	assert.Equal(t, 0, se.AvailableStock)
	assert.Equal(t, 1, se.RequestedQuantity)
	assert.Equal(t, 1, se.TotalRequested)
	assert.False(t, saga.IsCompensationFailure(err))
}

func TestOrderService_PlaceOrder_CompensationFailure(t *testing.T) {
	d := newDeps(t)
	a := product("Pen", 2, 10)
	b := product("Ink", 5, 10)
	dbErr := errors.New("connection reset")

	d.catalog.EXPECT().
		ProductsByIDs(mock.Anything, mock.Anything).
		Return([]entities.Product{a, b}, nil).Once()
	d.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil).Once()
	d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }).Once()
	d.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, a.ID, -1).Return(a, nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, b.ID, -1).Return(entities.Product{}, dbErr).Once()

	// ErrProductNotFound не ретраится
	d.catalog.EXPECT().AdjustStock(mock.Anything, a.ID, 1).Return(entities.Product{}, entities.ErrProductNotFound).Once()
	d.orders.EXPECT().DeleteOrder(mock.Anything, mock.Anything).Return(entities.Order{}, nil).Once()

	_, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, []entities.ItemRequest{
		{ProductID: a.ID.String(), Quantity: qty(1)},
		{ProductID: b.ID.String(), Quantity: qty(1)},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.True(t, saga.IsCompensationFailure(err))
}

func TestOrderService_PlaceOrder_PersistFailure(t *testing.T) {
	d := newDeps(t)
	p := product("Cup", 3, 10)
	dbErr := errors.New("db error")

	d.catalog.EXPECT().ProductsByIDs(mock.Anything, mock.Anything).Return([]entities.Product{p}, nil).Once()
	d.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil).Once()
	d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbErr).Once()

	_, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, []entities.ItemRequest{
		{ProductID: p.ID.String(), Quantity: qty(1)},
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestOrderService_PlaceOrder_OwnerRegistrationFailure(t *testing.T) {
	d := newDeps(t)
	p := product("Cup", 3, 10)
	caller := entities.Caller{ID: uuid.New(), Role: entities.RoleUser}
	dbErr := errors.New("users table locked")

	d.catalog.EXPECT().ProductsByIDs(mock.Anything, mock.Anything).Return([]entities.Product{p}, nil).Once()
	d.users.EXPECT().EnsureUser(mock.Anything, caller).Return(dbErr).Once()

	_, err := d.service().PlaceOrder(context.Background(), caller, []entities.ItemRequest{
		{ProductID: p.ID.String(), Quantity: qty(1)},
	})

	// заказ не создается, остатки не трогаются
	assert.ErrorIs(t, err, dbErr)
	d.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	d.catalog.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	d := newDeps(t)
	p := product("Cup", 3, 10)

	d.catalog.EXPECT().ProductsByIDs(mock.Anything, mock.Anything).Return([]entities.Product{p}, nil)
	d.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil).Once()
	d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }).Once()
	d.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, p.ID, -2).Return(p, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	d.users.EXPECT().UsersByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("users db down")).Once()

	placed, err := d.service().PlaceOrder(context.Background(), entities.Caller{ID: uuid.New()}, []entities.ItemRequest{
		{ProductID: p.ID.String(), Quantity: qty(2)},
	})

	require.NoError(t, err)
	assert.True(t, placed.TotalPrice.Equal(decimal.NewFromInt(6)))
	assert.Nil(t, placed.Owner)
}

func TestOrderService_CancelOrder_Rejections(t *testing.T) {
	owner := entities.Caller{ID: uuid.New(), Role: entities.RoleUser}

	testCases := []struct {
		name    string
		caller  entities.Caller
		status  entities.Status
		repoErr error
		wantErr error
	}{
		{name: "not found", caller: owner, repoErr: entities.ErrOrderNotFound, wantErr: entities.ErrOrderNotFound},
		{name: "other user", caller: entities.Caller{ID: uuid.New(), Role: entities.RoleUser}, status: entities.StatusPending, wantErr: entities.ErrOwnOrdersOnly},
		{name: "admin is not the owner", caller: entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}, status: entities.StatusPending, wantErr: entities.ErrForbidden},
		{name: "already cancelled", caller: owner, status: entities.StatusCancelled, wantErr: entities.ErrOrderAlreadyCancelled},
		{name: "shipped", caller: owner, status: entities.StatusShipped, wantErr: entities.ErrOrderNotCancellable},
		{name: "delivered", caller: owner, status: entities.StatusDelivered, wantErr: entities.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			order := entities.Order{ID: uuid.New(), UserID: owner.ID, Status: tc.status}

			if tc.repoErr != nil {
				d.orders.EXPECT().OrderByID(mock.Anything, order.ID).Return(entities.Order{}, tc.repoErr).Once()
			} else {
				d.orders.EXPECT().OrderByID(mock.Anything, order.ID).Return(order, nil).Once()
			}

			_, err := d.service().CancelOrder(context.Background(), tc.caller, order.ID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderService_CancelOrder_ConcurrentCancel(t *testing.T) {
	d := newDeps(t)
	caller := entities.Caller{ID: uuid.New()}
	order := entities.Order{
		ID:     uuid.New(),
		UserID: caller.ID,
		Status: entities.StatusProcessing,
		Items:  []entities.OrderLine{{ProductID: uuid.New(), Quantity: 2}},
	}

	d.orders.EXPECT().OrderByID(mock.Anything, order.ID).Return(order, nil).Once()
	// другая отмена успела первой: остатки не возвращаются повторно
	d.orders.EXPECT().
		UpdateStatus(mock.Anything, order.ID, entities.StatusCancelled, entities.StatusProcessing).
		Return(entities.Order{}, entities.ErrStatusChanged).Once()

	_, err := d.service().CancelOrder(context.Background(), caller, order.ID)
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func TestOrderService_CancelOrder_RestockFailureRevertsStatus(t *testing.T) {
	d := newDeps(t)
	caller := entities.Caller{ID: uuid.New()}
	first, second := uuid.New(), uuid.New()
	order := entities.Order{
		ID:     uuid.New(),
		UserID: caller.ID,
		Status: entities.StatusPending,
		Items: []entities.OrderLine{
			{ProductID: first, Quantity: 1},
			{ProductID: second, Quantity: 2},
		},
	}

	d.orders.EXPECT().OrderByID(mock.Anything, order.ID).Return(order, nil).Once()
	d.orders.EXPECT().
		UpdateStatus(mock.Anything, order.ID, entities.StatusCancelled, entities.StatusPending).
		Return(order, nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, first, 1).Return(entities.Product{}, nil).Once()
	d.catalog.EXPECT().AdjustStock(mock.Anything, second, 2).Return(entities.Product{}, entities.ErrProductNotFound).Once()

	d.catalog.EXPECT().AdjustStock(mock.Anything, first, -1).Return(entities.Product{}, nil).Once()
	d.orders.EXPECT().
		UpdateStatus(mock.Anything, order.ID, entities.StatusPending, entities.StatusCancelled).
		Return(order, nil).Once()

	_, err := d.service().CancelOrder(context.Background(), caller, order.ID)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestOrderService_ChangeStatus(t *testing.T) {
	admin := entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}
	orderID := uuid.New()

	t.Run("user is denied", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.service().ChangeStatus(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleUser}, orderID, entities.StatusShipped)
		assert.ErrorIs(t, err, entities.ErrPermissionDenied)
	})

	t.Run("unknown status", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.service().ChangeStatus(context.Background(), admin, orderID, "lost")
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})

	t.Run("admin sets any status without restock", func(t *testing.T) {
		d := newDeps(t)
		updated := entities.Order{ID: orderID, Status: entities.StatusDelivered}
		d.orders.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusDelivered).Return(updated, nil).Once()
		d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderStatusChanged)).Return(nil).Once()

		got, err := d.service().ChangeStatus(context.Background(), admin, orderID, entities.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().UpdateStatus(mock.Anything, orderID, entities.StatusShipped).Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := d.service().ChangeStatus(context.Background(), admin, orderID, entities.StatusShipped)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ApplyFulfillmentStatus(t *testing.T) {
	orderID := uuid.New()
	productID := uuid.New()

	testCases := []struct {
		name         string
		current      entities.Status
		next         entities.Status
		mockBehavior func(d deps)
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name:    "legal transition",
			current: entities.StatusPending,
			next:    entities.StatusProcessing,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusProcessing, entities.StatusPending).
					Return(entities.Order{ID: orderID, Status: entities.StatusProcessing}, nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderStatusChanged)).Return(nil).Once()
			},
			wantStatus: entities.StatusProcessing,
		},
		{
			name:         "redelivery is a no-op",
			current:      entities.StatusShipped,
			next:         entities.StatusShipped,
			mockBehavior: func(d deps) {},
			wantStatus:   entities.StatusShipped,
		},
		{
			name:         "skipping a step is illegal",
			current:      entities.StatusPending,
			next:         entities.StatusDelivered,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrIllegalTransition,
		},
		{
			name:         "terminal status",
			current:      entities.StatusDelivered,
			next:         entities.StatusProcessing,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrIllegalTransition,
		},
		{
			name:    "cancellation restocks",
			current: entities.StatusProcessing,
			next:    entities.StatusCancelled,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusCancelled, entities.StatusProcessing).
					Return(entities.Order{ID: orderID, Status: entities.StatusCancelled}, nil).Once()
				d.catalog.EXPECT().AdjustStock(mock.Anything, productID, 2).Return(entities.Product{}, nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderCancelled)).Return(nil).Once()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:         "shipped cannot be cancelled",
			current:      entities.StatusShipped,
			next:         entities.StatusCancelled,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrOrderNotCancellable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			order := entities.Order{
				ID:     orderID,
				Status: tc.current,
				Items:  []entities.OrderLine{{ProductID: productID, Quantity: 2}},
			}
			d.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(order, nil).Once()
			tc.mockBehavior(d)

			got, err := d.service().ApplyFulfillmentStatus(context.Background(), orderID, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := uuid.New()
	productID := uuid.New()
	order := entities.Order{
		ID:     uuid.New(),
		UserID: owner,
		Status: entities.StatusPending,
		Items:  []entities.OrderLine{{ProductID: productID, Quantity: 1, Price: decimal.NewFromInt(7)}},
	}

	testCases := []struct {
		name    string
		caller  entities.Caller
		wantErr error
	}{
		{name: "owner", caller: entities.Caller{ID: owner, Role: entities.RoleUser}},
		{name: "admin", caller: entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}},
		{name: "stranger", caller: entities.Caller{ID: uuid.New(), Role: entities.RoleUser}, wantErr: entities.ErrOwnOrdersOnly},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.orders.EXPECT().OrderByID(mock.Anything, order.ID).Return(order, nil).Once()
			if tc.wantErr == nil {
				d.users.EXPECT().UsersByIDs(mock.Anything, []uuid.UUID{owner}).
					Return([]entities.User{{ID: owner, UserName: "bob"}}, nil).Once()
				d.catalog.EXPECT().ProductsByIDs(mock.Anything, []uuid.UUID{productID}).
					Return([]entities.Product{{ID: productID, Title: "Mug"}}, nil).Once()
			}

			got, err := d.service().GetOrder(context.Background(), tc.caller, order.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bob", got.Owner.UserName)
			assert.Equal(t, "Mug", got.Products[productID].Title)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	user := entities.Caller{ID: uuid.New(), Role: entities.RoleUser}
	admin := entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}

	testCases := []struct {
		name       string
		caller     entities.Caller
		params     entities.ListParams
		total      int
		wantFilter entities.OrderFilter
		wantPage   entities.OrderPage
	}{
		{
			name:       "defaults and own orders only",
			caller:     user,
			params:     entities.ListParams{},
			total:      25,
			wantFilter: entities.OrderFilter{UserID: user.ID, Offset: 0, Limit: 10},
			wantPage:   entities.OrderPage{Page: 1, Limit: 10, TotalOrders: 25, TotalPages: 3},
		},
		{
			name:       "admin sees all with search",
			caller:     admin,
			params:     entities.ListParams{Page: 2, Limit: 5, Search: "pend"},
			total:      7,
			wantFilter: entities.OrderFilter{Search: "pend", Offset: 5, Limit: 5},
			wantPage:   entities.OrderPage{Page: 2, Limit: 5, TotalOrders: 7, TotalPages: 2},
		},
		{
			name:       "huge page does not overflow offset",
			caller:     admin,
			params:     entities.ListParams{Page: math.MaxInt, Limit: 100},
			total:      3,
			wantFilter: entities.OrderFilter{Offset: uint64(math.MaxInt/100-1) * 100, Limit: 100},
			wantPage:   entities.OrderPage{Page: math.MaxInt / 100, Limit: 100, TotalOrders: 3, TotalPages: 1},
		},
		{
			name:       "limit is capped",
			caller:     admin,
			params:     entities.ListParams{Page: -3, Limit: 1000},
			total:      0,
			wantFilter: entities.OrderFilter{Offset: 0, Limit: service.MaxPageLimit},
			wantPage:   entities.OrderPage{Page: 1, Limit: service.MaxPageLimit, TotalOrders: 0, TotalPages: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.orders.EXPECT().ListOrders(mock.Anything, tc.wantFilter).Return([]entities.Order{}, tc.total, nil).Once()

			got, err := d.service().ListOrders(context.Background(), tc.caller, tc.params)
			require.NoError(t, err)

			tc.wantPage.Orders = []entities.Order{}
			assert.Equal(t, tc.wantPage, got)
		})
	}

	t.Run("page flags", func(t *testing.T) {
		page := entities.OrderPage{Page: 2, TotalPages: 3}
		assert.True(t, page.HasNext())
		assert.True(t, page.HasPrev())
		last := entities.OrderPage{Page: 3, TotalPages: 3}
		assert.False(t, last.HasNext())
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("user is denied", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.service().DeleteOrder(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleUser}, orderID)
		assert.ErrorIs(t, err, entities.ErrPermissionDenied)
	})

	t.Run("admin deletes", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, orderID).Return(entities.Order{ID: orderID}, nil).Once()
		d.publisher.EXPECT().Publish(mock.Anything, eventOfType(entities.EventOrderDeleted)).Return(nil).Once()

		got, err := d.service().DeleteOrder(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := d.service().DeleteOrder(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}, orderID)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}
