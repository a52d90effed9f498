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

type CategoryService interface {
	CreateCategory(ctx context.Context, caller entities.Caller, name string) (entities.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (entities.Category, error)
}

type CategoryHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CategoryService
}

func NewCategoryHandler(logger *slog.Logger, svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		logger:   logger.With(slog.String("handler", "categories")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CategoryHandler) Init(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.With(middleware.RequireRoles(entities.RoleAdmin)).Post("/", h.CreateCategory)
		r.Get("/{id}", h.GetCategory)
	})
}

// CreateCategory добавляет категорию товаров.
// @Summary      Создать категорию
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                 true  "Идентификатор администратора"
// @Param        X-User-Role  header  string                 true  "admin"
// @Param        request      body    CreateCategoryRequest  true  "Категория"
// @Success      201  {object}  CategoryResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), caller, req.Name)
	if err != nil {
		writeServiceError(w, r, h.logger, "create_category", err)
		return
	}

	utils.WriteJSON(w, CategoryResponse{
		Success: true,
		Message: "category created successfully",
		Data:    CategoryEntityToJSON(category),
	}, http.StatusCreated)
}

// GetCategory возвращает категорию по ID.
// @Summary      Получить категорию
// @Tags         categories
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор категории"
// @Success      200  {object}  CategoryResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректный идентификатор"
// @Failure      404  {object}  utils.ErrorResponse "Категория не найдена"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.validate, "invalid category id")
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get_category", err)
		return
	}

	utils.WriteJSON(w, CategoryResponse{Success: true, Data: CategoryEntityToJSON(category)}, http.StatusOK)
}
