package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
	"github.com/bloomcrust/storefront/internal/seed"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, seed.Products(db))
	return &CatalogService{Repo: &repo.GormRepo{DB: db}}
}

func TestSearchMatchesNameDescriptionAndKind(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	byName, err := svc.Search(ctx, "baguette", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Baguette", byName[0].Name)

	byDescription, err := svc.Search(ctx, "custard tarts", "")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	require.Equal(t, "Pastéis de Nata", byDescription[0].Name)

	byKind, err := svc.Search(ctx, "viennoiserie", "")
	require.NoError(t, err)
	require.Len(t, byKind, 2)
}

func TestSearchWithCategoryFilter(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	// "croissant" appears in Pastry names and descriptions only
	all, err := svc.Search(ctx, "croissant", "all")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	none, err := svc.Search(ctx, "croissant", "Bread & Rolls")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	svc := newCatalogService(t)

	products, err := svc.Search(context.Background(), "zzz-no-such-pastry", "")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestSearchExcludesInactive(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, svc.Repo.DB.Model(&models.Product{}).
		Where("name = ?", "Baguette").
		Update("is_active", false).Error)

	products, err := svc.Search(ctx, "baguette", "")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestListSortedByCategoryThenName(t *testing.T) {
	svc := newCatalogService(t)

	products, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 15)
	for i := 1; i < len(products); i++ {
		prev, cur := products[i-1], products[i]
		require.True(t, prev.Category < cur.Category ||
			(prev.Category == cur.Category && prev.Name <= cur.Name))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	svc := newCatalogService(t)

	products, err := svc.List(context.Background(), "Pies & Tarts")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.Equal(t, "Pies & Tarts", p.Category)
	}
}

func TestGetByID(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)

	product, err := svc.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	require.Equal(t, all[0].Name, product.Name)

	_, err = svc.GetByID(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDExcludesInactive(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	id := all[0].ID

	require.NoError(t, svc.Repo.DB.Model(&models.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error)

	_, err = svc.GetByID(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategories(t *testing.T) {
	svc := newCatalogService(t)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Bread & Rolls", "Cakes & Sweets", "Pastry", "Pies & Tarts"}, categories)
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := newCatalogService(t)

	require.NoError(t, seed.Products(svc.Repo.DB))

	products, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 15)
}
