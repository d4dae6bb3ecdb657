// Package seed fills an empty products table with the bakery catalog.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/models"
)

func catalog() []models.Product {
	price := decimal.RequireFromString
	return []models.Product{
		{Name: "Artisan Sourdough", Description: "Naturally leavened sourdough bread", Price: price("3.90"), Category: "Bread & Rolls", ImageURL: "/assets/Bread & Rolls/sliced-loaf-artisan-sourdough-bread.jpg", Kind: "Sourdough", Stock: 6, IsActive: true},
		{Name: "Baguette", Description: "Classic French baguette", Price: price("2.50"), Category: "Bread & Rolls", ImageURL: "/assets/Bread & Rolls/baguettes-bread.jpg", Kind: "French Bread", Stock: 12, IsActive: true},
		{Name: "Square Loaf", Description: "Soft sandwich loaf", Price: price("3.20"), Category: "Bread & Rolls", ImageURL: "/assets/Bread & Rolls/square-loaf-bread.jpg", Kind: "Soft Loaf", Stock: 8, IsActive: true},
		{Name: "Spelt Teacakes", Description: "Traditional English teacakes", Price: price("2.80"), Category: "Bread & Rolls", ImageURL: "/assets/Bread & Rolls/spelt-english-teackes.jpg", Kind: "Spelt", Stock: 9, IsActive: true},
		{Name: "Butter Croissant", Description: "Flaky butter croissant", Price: price("2.20"), Category: "Pastry", ImageURL: "/assets/Pastry/butter-croissantsjpg.jpg", Kind: "Viennoiserie", Stock: 14, IsActive: true},
		{Name: "Cinnamon Roll", Description: "Sweet cinnamon swirl", Price: price("2.70"), Category: "Pastry", ImageURL: "/assets/Pastry/cinnamon-roll.jpg", Kind: "Sweet Roll", Stock: 7, IsActive: true},
		{Name: "Baked Cinnamon Buns", Description: "Sticky cinnamon buns", Price: price("2.60"), Category: "Pastry", ImageURL: "/assets/Pastry/baked-cinnamon-buns.jpg", Kind: "Bun", Stock: 10, IsActive: true},
		{Name: "Pain au Chocolat", Description: "Chocolate croissant", Price: price("2.90"), Category: "Pastry", ImageURL: "/assets/Pastry/pain_au_chocolat_luc_viatour.jpg", Kind: "Viennoiserie", Stock: 11, IsActive: true},
		{Name: "Puff with Raisins", Description: "Puff pastry with raisins", Price: price("2.40"), Category: "Pastry", ImageURL: "/assets/Pastry/puff-pastry-with-raisins.jpg", Kind: "Puff Pastry", Stock: 5, IsActive: true},
		{Name: "Sausage Roll", Description: "British sausage roll", Price: price("2.30"), Category: "Pastry", ImageURL: "/assets/Pastry/british-sausage-rolls.jpg", Kind: "Savory", Stock: 10, IsActive: true},
		{Name: "Brownies", Description: "Rich chocolate brownies", Price: price("3.00"), Category: "Cakes & Sweets", ImageURL: "/assets/Cakes & Sweets/variants-brownies.jpg", Kind: "Chocolate", Stock: 16, IsActive: true},
		{Name: "Victoria Sponge", Description: "Classic layer cake", Price: price("4.50"), Category: "Cakes & Sweets", ImageURL: "/assets/Cakes & Sweets/victoria-sponge-cake.jpg", Kind: "Classic Cake", Stock: 4, IsActive: true},
		{Name: "Dundee Cake", Description: "Traditional Scottish fruit cake", Price: price("4.20"), Category: "Cakes & Sweets", ImageURL: "/assets/Cakes & Sweets/traditional-scottish-dundee-cake.jpg", Kind: "Fruit Cake", Stock: 3, IsActive: true},
		{Name: "Apple Pie", Description: "Classic apple pie", Price: price("4.00"), Category: "Pies & Tarts", ImageURL: "/assets/Pies & Tarts/old-fashioned-apple_pie.jpg", Kind: "Pie", Stock: 5, IsActive: true},
		{Name: "Pastéis de Nata", Description: "Portuguese custard tarts", Price: price("2.00"), Category: "Pies & Tarts", ImageURL: "/assets/Pies & Tarts/portuguese-custard-tarts-pasteis-de-nata.jpg", Kind: "Custard Tart", Stock: 20, IsActive: true},
	}
}

// Products inserts the sample catalog when the table is empty.
func Products(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := catalog()
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("seed: insert products: %w", err)
	}
	return nil
}
