package repo

import (
	"context"
	"strings"

	"github.com/bloomcrust/storefront/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Where("is_active = ?", true)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var items []models.Product
	if err := q.Order("category, name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchProducts does a case-insensitive substring match over name,
// description and kind. LOWER/LIKE instead of ILIKE so the same query runs
// on postgres and the sqlite test database.
func (r *GormRepo) SearchProducts(ctx context.Context, query, category string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	q := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(kind) LIKE ?",
			pattern, pattern, pattern)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var items []models.Product
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
