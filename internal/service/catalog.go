package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx, category)
}

// Search is substring matching over active products; an empty result is not
// an error. Query emptiness is the caller's concern.
func (s *CatalogService) Search(ctx context.Context, query, category string) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, query, category)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.GetCategories(ctx)
}
