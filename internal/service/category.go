package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"
)

type CategoryRepo interface {
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (entities.Category, error)
}

type categoryService struct {
	logger *slog.Logger
	repo   CategoryRepo
}

func NewCategoryService(logger *slog.Logger, repo CategoryRepo) *categoryService {
	return &categoryService{
		logger: logger.With(slog.String("service", "category")),
		repo:   repo,
	}
}

// CreateCategory сохраняет категорию; имя обрезается по краям до проверки длины.
func (s *categoryService) CreateCategory(ctx context.Context, caller entities.Caller, name string) (entities.Category, error) {
	if !caller.CanManageCatalog() {
		return entities.Category{}, entities.ErrPermissionDenied
	}

	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < entities.MinCategoryName || n > entities.MaxCategoryName {
		return entities.Category{}, entities.ErrInvalidCategory
	}

	created, err := s.repo.CreateCategory(ctx, entities.Category{ID: uuid.New(), Name: name})
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created", slog.String("category_id", created.ID.String()))
	return created, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (entities.Category, error) {
	return s.repo.CategoryByID(ctx, id)
}
