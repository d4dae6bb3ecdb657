package transport

import "github.com/bloomcrust/storefront/internal/models"

type RegisterRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AddToCartRequest struct {
	ProductID uint `json:"productId" validate:"required,gt=0"`
	Quantity  uint `json:"quantity"  validate:"omitempty,gt=0"`
}

// Quantity is a pointer so that an explicit 0 (meaning: remove) survives the
// required check; negative values also remove.
type UpdateCartRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CartResponse struct {
	CartItems []models.CartItem `json:"cartItems"`
}

type CartItemResponse struct {
	Message  string           `json:"message"`
	CartItem *models.CartItem `json:"cartItem,omitempty"`
	Removed  bool             `json:"removed,omitempty"`
}

type ProductsResponse struct {
	Products []models.Product `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
