package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
)

func newCartService(t *testing.T) (*CartService, *testFixtures) {
	t.Helper()

	db := newTestDB(t)
	svc := &CartService{Repo: &repo.GormRepo{DB: db}}
	f := &testFixtures{
		DB:      db,
		User:    createUser(t, db, "alice@example.com"),
		Other:   createUser(t, db, "bob@example.com"),
		Product: createProduct(t, db, "Artisan Sourdough", 6),
	}
	return svc, f
}

type testFixtures struct {
	DB      *gorm.DB
	User    models.User
	Other   models.User
	Product models.Product
}

func TestAddMergesQuantities(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)
	require.Equal(t, uint(2), first.Quantity)
	require.Equal(t, "Artisan Sourdough", first.Product.Name)

	second, err := svc.Add(ctx, f.User.ID, f.Product.ID, 3)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, uint(5), second.Quantity)

	items, err := svc.List(ctx, f.User.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uint(5), items[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc, f := newCartService(t)

	item, err := svc.Add(context.Background(), f.User.ID, f.Product.ID, 0)
	require.NoError(t, err)
	require.Equal(t, uint(1), item.Quantity)
}

func TestAddRequiresProductID(t *testing.T) {
	svc, f := newCartService(t)

	_, err := svc.Add(context.Background(), f.User.ID, 0, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddDoesNotCheckStock(t *testing.T) {
	svc, f := newCartService(t)

	item, err := svc.Add(context.Background(), f.User.ID, f.Product.ID, uint(f.Product.Stock)*10)
	require.NoError(t, err)
	require.Equal(t, uint(f.Product.Stock)*10, item.Quantity)
}

func TestUpdateSetsExactQuantity(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)

	item, removed, err := svc.Update(ctx, f.User.ID, added.ID, 7)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, uint(7), item.Quantity)
	require.Equal(t, f.Product.ID, item.Product.ID)
}

func TestUpdateToZeroRemoves(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)

	item, removed, err := svc.Update(ctx, f.User.ID, added.ID, 0)
	require.NoError(t, err)
	require.True(t, removed)
	require.Nil(t, item)

	items, err := svc.List(ctx, f.User.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestUpdateToNegativeRemoves(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)

	_, removed, err := svc.Update(ctx, f.User.ID, added.ID, -3)
	require.NoError(t, err)
	require.True(t, removed)
}

func TestUpdateMissingItemIsNotFound(t *testing.T) {
	svc, f := newCartService(t)

	_, removed, err := svc.Update(context.Background(), f.User.ID, 999, 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, removed)

	// removal of a missing row is also not-found, not "removed"
	_, removed, err = svc.Update(context.Background(), f.User.ID, 999, 0)
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, removed)
}

func TestUpdateScopedToOwner(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)

	_, _, err = svc.Update(ctx, f.Other.ID, added.ID, 9)
	require.ErrorIs(t, err, ErrNotFound)

	items, err := svc.List(ctx, f.User.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uint(2), items[0].Quantity)
}

func TestRemoveScopedToOwner(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, f.User.ID, f.Product.ID, 2)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Remove(ctx, f.Other.ID, added.ID), ErrNotFound)

	items, err := svc.List(ctx, f.User.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Remove(ctx, f.User.ID, added.ID))
	require.ErrorIs(t, svc.Remove(ctx, f.User.ID, added.ID), ErrNotFound)
}

func TestClearEmptiesOnlyOwnCart(t *testing.T) {
	svc, f := newCartService(t)
	ctx := context.Background()

	second := createProduct(t, f.DB, "Baguette", 12)

	_, err := svc.Add(ctx, f.User.ID, f.Product.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, f.User.ID, second.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, f.Other.ID, f.Product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, f.User.ID))

	items, err := svc.List(ctx, f.User.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = svc.List(ctx, f.Other.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestListNewestFirst(t *testing.T) {
	svc, f := newCartService(t)

	second := createProduct(t, f.DB, "Baguette", 12)
	now := time.Now().UTC()

	older := models.CartItem{UserID: f.User.ID, ProductID: f.Product.ID, Quantity: 1, CreatedAt: now.Add(-time.Hour)}
	require.NoError(t, f.DB.Create(&older).Error)
	newer := models.CartItem{UserID: f.User.ID, ProductID: second.ID, Quantity: 1, CreatedAt: now}
	require.NoError(t, f.DB.Create(&newer).Error)

	items, err := svc.List(context.Background(), f.User.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, newer.ID, items[0].ID)
	require.Equal(t, older.ID, items[1].ID)
}
