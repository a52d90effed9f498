package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, caller entities.Caller, items []entities.ItemRequest) (entities.OrderDetails, error)
	CancelOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error)
	ChangeStatus(ctx context.Context, caller entities.Caller, orderID uuid.UUID, status entities.Status) (entities.Order, error)
	GetOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.OrderDetails, error)
	ListOrders(ctx context.Context, caller entities.Caller, params entities.ListParams) (entities.OrderPage, error)
	DeleteOrder(ctx context.Context, caller entities.Caller, orderID uuid.UUID) (entities.Order, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	responses middleware.ResponseCache
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, responses middleware.ResponseCache) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "orders")),
		validate:  validator.New(),
		svc:       svc,
		responses: responses,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.With(middleware.Idempotency(h.responses)).Post("/", h.PlaceOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/cancel", h.CancelOrder)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(entities.RoleAdmin))
			r.Patch("/{id}/status", h.ChangeStatus)
			r.Delete("/{id}", h.DeleteOrder)
		})
	})
}

// PlaceOrder создает заказ.
// @Summary      Создать заказ
// @Description  Проверяет позиции, списывает остатки и сохраняет заказ с ценами из каталога
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID        header  string             true   "Идентификатор пользователя"
// @Param        Idempotency-Key  header  string             false  "Ключ идемпотентности"
// @Param        request          body    PlaceOrderRequest  true   "Позиции заказа"
// @Success      201  {object}  OrderResponse
// @Failure      400  {object}  InsufficientStockResponse "Ошибка валидации или недостаточно товара"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), caller, req.ToEntity())
	if err != nil {
		writeServiceError(w, r, h.logger, "place_order", err)
		return
	}

	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Message: "order created successfully",
		Data:    OrderDetailsToJSON(order),
	}, http.StatusCreated)
}

// ListOrders возвращает страницу заказов.
// @Summary      Список заказов
// @Description  Пользователь видит только свои заказы, администратор все. search ищет по статусу.
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true   "Идентификатор пользователя"
// @Param        page       query   int     false  "Номер страницы"  default(1)
// @Param        limit      query   int     false  "Размер страницы"  default(10)
// @Param        search     query   string  false  "Подстрока статуса"
// @Success      200  {object}  OrderListResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	// как и раньше, нечисловые значения заменяются значениями по умолчанию
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	search := q.Get("search")

	result, err := h.svc.ListOrders(r.Context(), caller, entities.ListParams{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, "list_orders", err)
		return
	}

	utils.WriteJSON(w, OrderPageToJSON(result, search), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Доступно владельцу заказа и администратору
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректный идентификатор"
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get_order", err)
		return
	}

	utils.WriteJSON(w, OrderResponse{Success: true, Data: OrderDetailsToJSON(order)}, http.StatusOK)
}

// CancelOrder отменяет заказ и возвращает товары на склад.
// @Summary      Отменить заказ
// @Description  Отменить можно только свой заказ в статусе pending или processing
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже отменен или отправлен"
// @Router       /orders/{id}/cancel [patch]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CancelOrder(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, h.logger, "cancel_order", err)
		return
	}

	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Message: "order cancelled successfully",
		Data:    OrderEntityToJSON(order),
	}, http.StatusOK)
}

// ChangeStatus меняет статус заказа.
// @Summary      Сменить статус
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string               true  "Идентификатор администратора"
// @Param        X-User-Role  header  string               true  "admin"
// @Param        id           path    string               true  "Идентификатор заказа"
// @Param        request      body    ChangeStatusRequest  true  "Новый статус"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/status [patch]
func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.ChangeStatus(r.Context(), caller, id, entities.Status(req.Status))
	if err != nil {
		writeServiceError(w, r, h.logger, "change_status", err)
		return
	}

	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Message: "order status updated successfully",
		Data:    OrderEntityToJSON(order),
	}, http.StatusOK)
}

// DeleteOrder удаляет заказ без возврата остатков.
// @Summary      Удалить заказ
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "admin"
// @Param        id           path    string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.DeleteOrder(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, h.logger, "delete_order", err)
		return
	}

	utils.WriteJSON(w, OrderResponse{
		Success: true,
		Message: "order deleted successfully",
		Data:    OrderEntityToJSON(order),
	}, http.StatusOK)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parsePathID(w, r, h.validate, "invalid order id")
}

func parsePathID(w http.ResponseWriter, r *http.Request, validate *validator.Validate, message string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if err := validate.Var(raw, "required,uuid"); err != nil {
		utils.WriteError(w, message, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

func callerOrUnauthorized(w http.ResponseWriter, r *http.Request) (entities.Caller, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return caller, ok
}
