package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/saga"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type OrderRepo interface {
	// CreateOrder сохраняет заказ без позиций и возвращает его с временными метками из БД
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveOrderLines(ctx context.Context, orderID uuid.UUID, lines []entities.OrderLine) error
	OrderByID(ctx context.Context, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, int, error)
	// UpdateStatus меняет статус, только если текущий входит в from; пустой from снимает условие
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.Status, from ...entities.Status) (entities.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (entities.Order, error)
}

type CatalogRepo interface {
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Product, error)
	// AdjustStock атомарно прибавляет delta к остатку, если результат не уходит в минус
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (entities.Product, error)
}

type UserRepo interface {
	UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.User, error)
	// EnsureUser регистрирует вызывающего владельцем заказов, если его еще нет
	EnsureUser(ctx context.Context, caller entities.Caller) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	catalog   CatalogRepo
	users     UserRepo
	publisher EventPublisher
	retryCfg  utils.RetryConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	catalog CatalogRepo,
	users UserRepo,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		catalog:   catalog,
		users:     users,
		publisher: publisher,
		retryCfg: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 20 * time.Millisecond,
			Multiplier:   2,
		},
	}
}

type reservation struct {
	product  entities.Product
	quantity int
	// количество в первой строке заказа с этим товаром
	lineQuantity int
}

func (s *orderService) PlaceOrder(ctx context.Context, caller entities.Caller, items []entities.ItemRequest) (entities.OrderDetails, error) {
	lines, err := validateItems(items)
	if err != nil {
		ordersRejected.WithLabelValues("validation").Inc()
		return entities.OrderDetails{}, err
	}

	ids, demand := aggregateDemand(lines)

	products, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return entities.OrderDetails{}, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) != len(ids) {
		ordersRejected.WithLabelValues("not_found").Inc()
		return entities.OrderDetails{}, entities.ErrProductsNotFound
	}

	byID := make(map[uuid.UUID]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for i := range lines {
		p := byID[lines[i].ProductID]
		if p.CountInStock < demand[p.ID] {
			ordersRejected.WithLabelValues("insufficient_stock").Inc()
			return entities.OrderDetails{}, &entities.InsufficientStockError{
				ProductID:         p.ID.String(),
				ProductName:       p.Title,
				AvailableStock:    p.CountInStock,
				RequestedQuantity: lines[i].Quantity,
				TotalRequested:    demand[p.ID],
			}
		}
		// цена всегда берется из каталога, клиентская игнорируется
		lines[i].Price = p.Price
	}

	order := entities.NewOrder(caller.ID, lines)

	reservations := make([]reservation, 0, len(ids))
	for _, id := range ids {
		reservations = append(reservations, reservation{
			product:      byID[id],
			quantity:     demand[id],
			lineQuantity: firstLineQuantity(lines, id),
		})
	}

	if err := s.placementSaga(caller, &order, reservations).Run(ctx); err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			ordersRejected.WithLabelValues("insufficient_stock").Inc()
		}
		if saga.IsCompensationFailure(err) {
			s.logger.ErrorContext(ctx, "order placement left inconsistent state",
				slog.String("order_id", order.ID.String()), slog.Any("error", err))
		}
		return entities.OrderDetails{}, err
	}

	ordersPlaced.Inc()
	s.logger.DebugContext(ctx, "order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.TotalPrice.String()))

	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderPlaced, order))

	details, err := s.enrich(ctx, order)
	if err != nil {
		// заказ уже создан, поэтому отдаем его без дополнительных данных
		s.logger.WarnContext(ctx, "failed to enrich placed order",
			slog.String("order_id", order.ID.String()), slog.Any("error", err))
		return entities.OrderDetails{Order: order}, nil
	}
	return details, nil
}

// placementSaga сохраняет заказ и затем списывает остатки по товарам.
// При ошибке шага уже списанное возвращается, а заказ удаляется.
func (s *orderService) placementSaga(caller entities.Caller, order *entities.Order, reservations []reservation) *saga.Saga {
	sg := saga.New(s.sagaHooks("place_order"), saga.Step{
		Name: "persist order",
		Do: func(ctx context.Context) error {
			return s.txManager.Do(ctx, func(ctx context.Context) error {
				if err := s.users.EnsureUser(ctx, caller); err != nil {
					return err
				}
				created, err := s.orders.CreateOrder(ctx, *order)
				if err != nil {
					return fmt.Errorf("failed to create order: %w", err)
				}
				if err := s.orders.SaveOrderLines(ctx, created.ID, order.Items); err != nil {
					return fmt.Errorf("failed to save order lines: %w", err)
				}
				created.Items = order.Items
				*order = created
				return nil
			})
		},
		Compensate: func(ctx context.Context) error {
			return utils.Retry(ctx, s.retryCfg, func() error {
				_, err := s.orders.DeleteOrder(ctx, order.ID)
				return err
			}, entities.ErrOrderNotFound)
		},
	})

	for _, r := range reservations {
		sg.Add(saga.Step{
			Name: "reserve stock " + r.product.ID.String(),
			Do: func(ctx context.Context) error {
				_, err := s.catalog.AdjustStock(ctx, r.product.ID, -r.quantity)
				var se *entities.InsufficientStockError
				if errors.As(err, &se) {
					// остаток изменился между проверкой и списанием
					se.ProductName = r.product.Title
					se.RequestedQuantity = r.lineQuantity
					se.TotalRequested = r.quantity
					return se
				}
				if err != nil {
					return fmt.Errorf("failed to reserve stock for product %s: %w", r.product.ID, err)
				}
				return nil
			},
			Compensate: s.adjustWithRetry(r.product.ID, r.quantity),
		})
	}
	return sg
}

func (s *orderService) CancelOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error) {
	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if !caller.CanCancelOrder(order) {
		return entities.Order{}, entities.ErrOwnOrdersOnly
	}

	return s.cancel(ctx, order)
}

func (s *orderService) cancel(ctx context.Context, order entities.Order) (entities.Order, error) {
	if order.Status == entities.StatusCancelled {
		return entities.Order{}, entities.ErrOrderAlreadyCancelled
	}
	if !order.Status.Cancellable() {
		return entities.Order{}, entities.ErrOrderNotCancellable
	}

	var updated entities.Order
	sg := saga.New(s.sagaHooks("cancel_order"), saga.Step{
		Name: "mark cancelled",
		Do: func(ctx context.Context) error {
			// условие на текущий статус не дает вернуть остатки дважды при параллельной отмене
			o, err := s.orders.UpdateStatus(ctx, order.ID, entities.StatusCancelled, order.Status)
			if err != nil {
				return err
			}
			updated = o
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return utils.Retry(ctx, s.retryCfg, func() error {
				_, err := s.orders.UpdateStatus(ctx, order.ID, order.Status, entities.StatusCancelled)
				return err
			}, entities.ErrNotFound, entities.ErrConflict)
		},
	})

	for _, line := range order.Items {
		sg.Add(saga.Step{
			Name: "restock " + line.ProductID.String(),
			Do: func(ctx context.Context) error {
				if _, err := s.catalog.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
					return fmt.Errorf("failed to restock product %s: %w", line.ProductID, err)
				}
				return nil
			},
			Compensate: s.adjustWithRetry(line.ProductID, -line.Quantity),
		})
	}

	if err := sg.Run(ctx); err != nil {
		if saga.IsCompensationFailure(err) {
			s.logger.ErrorContext(ctx, "order cancellation left inconsistent state",
				slog.String("order_id", order.ID.String()), slog.Any("error", err))
		}
		return entities.Order{}, err
	}

	ordersCancelled.Inc()
	s.logger.DebugContext(ctx, "order cancelled", slog.String("order_id", order.ID.String()))
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderCancelled, updated))

	return updated, nil
}

func (s *orderService) ChangeStatus(ctx context.Context, caller entities.Caller, orderID uuid.UUID, status entities.Status) (entities.Order, error) {
	if !caller.CanMutateStatus() {
		return entities.Order{}, entities.ErrPermissionDenied
	}
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return entities.Order{}, err
	}

	statusChanges.WithLabelValues(string(status)).Inc()
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderStatusChanged, order))
	return order, nil
}

// ApplyFulfillmentStatus применяет статус от системы доставки.
// В отличие от ChangeStatus соблюдает допустимые переходы, а отмена возвращает остатки.
// Повторная доставка текущего статуса ничего не меняет.
func (s *orderService) ApplyFulfillmentStatus(ctx context.Context, orderID uuid.UUID, status entities.Status) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status == status {
		return order, nil
	}

	if status == entities.StatusCancelled {
		return s.cancel(ctx, order)
	}

	if !order.Status.CanTransitionTo(status) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrIllegalTransition, order.Status, status)
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, status, order.Status)
	if err != nil {
		return entities.Order{}, err
	}

	statusChanges.WithLabelValues(string(status)).Inc()
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderStatusChanged, updated))
	return updated, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.OrderDetails, error) {
	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	if !caller.CanAccessOrder(order) {
		return entities.OrderDetails{}, entities.ErrOwnOrdersOnly
	}

	return s.enrich(ctx, order)
}

func (s *orderService) ListOrders(ctx context.Context, caller entities.Caller, params entities.ListParams) (entities.OrderPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = DefaultPageLimit
	}
	if params.Limit > MaxPageLimit {
		params.Limit = MaxPageLimit
	}
	// смещение (page-1)*limit не должно переполнять int
	if maxPage := math.MaxInt / params.Limit; params.Page > maxPage {
		params.Page = maxPage
	}

	filter := entities.OrderFilter{
		Search: params.Search,
		Offset: uint64((params.Page - 1) * params.Limit),
		Limit:  uint64(params.Limit),
	}
	if !caller.Elevated() {
		filter.UserID = caller.ID
	}

	orders, total, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to list orders: %w", err)
	}

	return entities.OrderPage{
		Orders:      orders,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalOrders: total,
		TotalPages:  int(math.Ceil(float64(total) / float64(params.Limit))),
	}, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error) {
	if !caller.Elevated() {
		return entities.Order{}, entities.ErrPermissionDenied
	}

	order, err := s.orders.DeleteOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order deleted",
		slog.String("order_id", orderID.String()),
		slog.String("by", caller.ID.String()))
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderDeleted, order))
	return order, nil
}

// enrich подгружает владельца и текущее состояние товаров заказа.
func (s *orderService) enrich(ctx context.Context, order entities.Order) (entities.OrderDetails, error) {
	ids, _ := aggregateDemand(order.Items)

	var (
		users    []entities.User
		products []entities.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.UsersByIDs(gctx, []uuid.UUID{order.UserID})
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.catalog.ProductsByIDs(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.OrderDetails{}, fmt.Errorf("failed to load order details: %w", err)
	}

	details := entities.OrderDetails{
		Order:    order,
		Products: make(map[uuid.UUID]entities.Product, len(products)),
	}
	if len(users) > 0 {
		details.Owner = &users[0]
	}
	for _, p := range products {
		details.Products[p.ID] = p
	}
	return details, nil
}

func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		eventPublishFailures.Inc()
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_id", event.OrderID.String()),
			slog.Any("error", err))
	}
}

func (s *orderService) adjustWithRetry(productID uuid.UUID, delta int) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return utils.Retry(ctx, s.retryCfg, func() error {
			_, err := s.catalog.AdjustStock(ctx, productID, delta)
			return err
		}, entities.ErrNotFound, entities.ErrInsufficientStock)
	}
}

func (s *orderService) sagaHooks(name string) saga.Hooks {
	return saga.Hooks{
		OnCompensate: func(step string) {
			sagaCompensations.WithLabelValues(name).Inc()
			s.logger.Warn("compensating saga step", slog.String("saga", name), slog.String("step", step))
		},
		OnCompensateFailed: func(step string, err error) {
			sagaCompensationFailures.WithLabelValues(name).Inc()
			s.logger.Error("saga compensation failed",
				slog.String("saga", name), slog.String("step", step), slog.Any("error", err))
		},
	}
}

// validateItems проверяет позиции по порядку и останавливается на первой ошибке.
func validateItems(items []entities.ItemRequest) ([]entities.OrderLine, error) {
	if len(items) == 0 {
		return nil, entities.ErrItemsRequired
	}

	lines := make([]entities.OrderLine, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity == nil {
			return nil, entities.ErrItemIncomplete
		}

		id, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, entities.WithDetails(entities.ErrInvalidProductID, map[string]any{"invalidId": it.ProductID})
		}

		q := *it.Quantity
		if q < entities.MinLineQuantity {
			return nil, entities.ErrQuantityTooSmall
		}
		if q != math.Trunc(q) {
			return nil, entities.WithDetails(entities.ErrQuantityNotWhole, map[string]any{"invalidQuantity": q})
		}
		if q > entities.MaxLineQuantity {
			return nil, entities.ErrQuantityTooLarge
		}

		lines = append(lines, entities.OrderLine{ProductID: id, Quantity: int(q)})
	}
	return lines, nil
}

func firstLineQuantity(lines []entities.OrderLine, productID uuid.UUID) int {
	for _, l := range lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// aggregateDemand возвращает товары в порядке первого появления и суммарное количество по каждому.
func aggregateDemand(lines []entities.OrderLine) ([]uuid.UUID, map[uuid.UUID]int) {
	ids := make([]uuid.UUID, 0, len(lines))
	demand := make(map[uuid.UUID]int, len(lines))
	for _, l := range lines {
		if _, ok := demand[l.ProductID]; !ok {
			ids = append(ids, l.ProductID)
		}
		demand[l.ProductID] += l.Quantity
	}
	return ids, demand
}
