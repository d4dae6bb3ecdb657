package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, userID)
}

// Add merges into an existing (user, product) row or inserts a new one.
// Stock is deliberately not checked here; display-side gating is the only
// stock affordance.
func (s *CartService) Add(ctx context.Context, userID, productID uint, quantity uint) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}
	return s.Repo.AddToCart(ctx, userID, productID, quantity)
}

// Update sets the quantity exactly; a quantity of zero or less removes the
// item (removed=true). A cart item that does not exist or belongs to another
// user yields ErrNotFound — distinct from removal.
func (s *CartService) Update(ctx context.Context, userID, cartItemID uint, quantity int) (item *models.CartItem, removed bool, err error) {
	if cartItemID == 0 {
		return nil, false, fmt.Errorf("cart item id is required: %w", ErrValidation)
	}

	item, removed, err = s.Repo.UpdateCartItem(ctx, userID, cartItemID, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("cart item %d: %w", cartItemID, ErrNotFound)
	}
	return item, removed, err
}

func (s *CartService) Remove(ctx context.Context, userID, cartItemID uint) error {
	if cartItemID == 0 {
		return fmt.Errorf("cart item id is required: %w", ErrValidation)
	}

	deleted, err := s.Repo.RemoveFromCart(ctx, userID, cartItemID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("cart item %d: %w", cartItemID, ErrNotFound)
	}
	return nil
}

// Clear empties the user's cart. Checkout hook; not reachable from any route
// yet.
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.Repo.ClearCart(ctx, userID)
}
