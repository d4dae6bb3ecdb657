package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloomcrust/storefront/internal/events"
	"github.com/bloomcrust/storefront/internal/logging"
	"github.com/bloomcrust/storefront/internal/service"
	"github.com/bloomcrust/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(event["user_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "error", err)
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "validation failed")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{
			Error:   "validation failed",
			Details: validationDetails(err),
		})
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("register_error", "status", 400, "reason", "email already registered")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "user with this email already exists"})
		}
		l.Error("register_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	h.publish(c, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.RegisterResponse{
		Message: "user created successfully",
		User:    transport.NewUserResponse(user),
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "validation failed")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{
			Error:   "validation failed",
			Details: validationDetails(err),
		})
	}

	bearer, user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "reason", "invalid credentials")
			return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "invalid email or password"})
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	h.publish(c, map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Token: bearer,
		User:  transport.NewUserResponse(user),
	})
}
