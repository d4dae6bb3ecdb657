package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/hash"
	"github.com/bloomcrust/storefront/internal/logging"
	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
	"github.com/bloomcrust/storefront/internal/token"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Register creates a user after an exact-match duplicate check on the email.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("user %q: %w", email, ErrEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_error", "reason", "email lookup failed", "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		l.Error("register_error", "reason", "cannot create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// Login composes lookup, password verify and token issue. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		l.Error("login_error", "reason", "email lookup failed", "error", err)
		return "", nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	bearer, err := token.Issue(user.ID, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return "", nil, err
	}
	return bearer, user, nil
}
