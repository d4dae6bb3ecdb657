package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloomcrust/storefront/internal/events"
	"github.com/bloomcrust/storefront/internal/logging"
	"github.com/bloomcrust/storefront/internal/service"
	"github.com/bloomcrust/storefront/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(event["user_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	uid, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	items, err := h.Svc.List(ctx, uid)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, transport.CartResponse{CartItems: items})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	uid, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "validation failed")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{
			Error:   "validation failed",
			Details: validationDetails(err),
		})
	}

	item, err := h.Svc.Add(ctx, uid, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "productId and a positive quantity are required"})
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_added",
		"user_id":    uid,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("item added to cart", "user_id", uid, "product_id", item.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusCreated, transport.CartItemResponse{
		Message:  "item added to cart",
		CartItem: item,
	})
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	uid, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("update_cart_error", "status", 400, "reason", "invalid cart item id")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid cart item id"})
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "reason", "validation failed")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{
			Error:   "validation failed",
			Details: validationDetails(err),
		})
	}

	item, removed, err := h.Svc.Update(ctx, uid, uint(id), *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_error", "status", 404, "cart_item_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "cart item not found"})
		}
		l.Error("update_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	if removed {
		h.publish(c, map[string]any{
			"type":         "cart_item_removed",
			"user_id":      uid,
			"cart_item_id": id,
		})
		l.Info("item removed from cart", "user_id", uid, "cart_item_id", id)
		return c.JSON(http.StatusOK, transport.CartItemResponse{
			Message: "item removed from cart",
			Removed: true,
		})
	}

	h.publish(c, map[string]any{
		"type":         "cart_item_updated",
		"user_id":      uid,
		"cart_item_id": id,
		"quantity":     item.Quantity,
	})
	l.Info("cart item updated", "user_id", uid, "cart_item_id", id, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, transport.CartItemResponse{
		Message:  "cart item updated",
		CartItem: item,
	})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	uid, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "invalid cart item id")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid cart item id"})
	}

	if err := h.Svc.Remove(ctx, uid, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "cart_item_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "cart item not found"})
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	h.publish(c, map[string]any{
		"type":         "cart_item_removed",
		"user_id":      uid,
		"cart_item_id": id,
	})
	l.Info("item removed from cart", "user_id", uid, "cart_item_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "item removed from cart"})
}
