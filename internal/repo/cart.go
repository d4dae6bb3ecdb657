package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bloomcrust/storefront/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart is a single atomic upsert keyed on the (user_id, product_id)
// unique index: an existing row gets its quantity incremented, otherwise the
// row is inserted. Returns the resulting row hydrated with its product.
func (r *GormRepo) AddToCart(ctx context.Context, userID, productID uint, quantity uint) (*models.CartItem, error) {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	var out models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartItem sets the quantity exactly. A non-positive quantity deletes
// the row instead, reported through removed. Both paths are scoped to the
// owning user; a miss surfaces as gorm.ErrRecordNotFound.
func (r *GormRepo) UpdateCartItem(ctx context.Context, userID, cartItemID uint, quantity int) (item *models.CartItem, removed bool, err error) {
	if quantity <= 0 {
		res := r.DB.WithContext(ctx).
			Where("id = ? AND user_id = ?", cartItemID, userID).
			Delete(&models.CartItem{})
		if res.Error != nil {
			return nil, false, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, false, gorm.ErrRecordNotFound
		}
		return nil, true, nil
	}

	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, gorm.ErrRecordNotFound
	}

	var out models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		First(&out, cartItemID).Error; err != nil {
		return nil, false, err
	}
	return &out, false, nil
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, userID, cartItemID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
