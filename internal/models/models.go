package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as plain decimal numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null"         json:"-"`
	FirstName    string    `gorm:"size:100;not null"         json:"first_name"`
	LastName     string    `gorm:"size:100;not null"         json:"last_name"`
	Phone        string    `gorm:"size:20"                   json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:255;not null"        json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:100;not null;index"  json:"category"`
	ImageURL    string          `gorm:"size:500"                 json:"image_url"`
	Kind        string          `gorm:"size:100"                 json:"kind"`
	Stock       int             `gorm:"default:0"                json:"stock"`
	IsActive    bool            `gorm:"default:true"             json:"is_active"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// CartItem holds at most one row per (user, product); repeated adds merge
// into quantity. Product is the hydrated snapshot joined in on reads.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                        json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null"      json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null"      json:"product_id"`
	Quantity  uint      `gorm:"not null;default:1"                              json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"    json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
}

func (CartItem) TableName() string { return "cart_items" }

// Orders are migrated as a target for future checkout; no live code path
// writes or reads them yet.
type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID          uint            `gorm:"index;not null"              json:"user_id"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          string          `gorm:"size:50;default:pending"     json:"status"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint            `gorm:"index;not null"              json:"order_id"`
	ProductID uint            `gorm:"not null"                    json:"product_id"`
	Quantity  uint            `gorm:"not null"                    json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"   json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
