package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/google/uuid"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	ProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewProductService(logger *slog.Logger, repo ProductRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, caller entities.Caller, p entities.Product) (entities.Product, error) {
	if !caller.CanManageCatalog() {
		return entities.Product{}, entities.ErrPermissionDenied
	}
	if p.Price.IsNegative() || p.CountInStock < 0 || p.CountInStock > entities.MaxStock {
		return entities.Product{}, entities.ErrInvalidProduct
	}

	p.ID = uuid.New()
	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created", slog.String("product_id", created.ID.String()))
	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return s.repo.ProductByID(ctx, id)
}
