package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, caller entities.Caller, p entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.With(middleware.RequireRoles(entities.RoleAdmin)).Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
	})
}

// CreateProduct добавляет товар в каталог.
// @Summary      Создать товар
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                true  "Идентификатор администратора"
// @Param        X-User-Role  header  string                true  "admin"
// @Param        request      body    CreateProductRequest  true  "Товар"
// @Success      201  {object}  ProductResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Категория не найдена"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), caller, req.ToEntity())
	if err != nil {
		writeServiceError(w, r, h.logger, "create_product", err)
		return
	}

	utils.WriteJSON(w, ProductResponse{
		Success: true,
		Message: "product created successfully",
		Data:    ProductEntityToJSON(product),
	}, http.StatusCreated)
}

// GetProduct возвращает товар по ID.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор товара"
// @Success      200  {object}  ProductResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректный идентификатор"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.validate, "invalid product id")
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get_product", err)
		return
	}

	utils.WriteJSON(w, ProductResponse{Success: true, Data: ProductEntityToJSON(product)}, http.StatusOK)
}
