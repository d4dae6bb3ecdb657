package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/config"
	"github.com/bloomcrust/storefront/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "irrelevant",
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, name string, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Price:    decimal.RequireFromString("3.90"),
		Category: "Bread & Rolls",
		Kind:     "Sourdough",
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
