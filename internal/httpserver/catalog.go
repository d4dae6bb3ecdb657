package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/bloomcrust/storefront/internal/logging"
	"github.com/bloomcrust/storefront/internal/search"
	"github.com/bloomcrust/storefront/internal/service"
	"github.com/bloomcrust/storefront/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService

	// ES is optional; when nil, search goes through the database.
	ES      *elasticsearch.Client
	ESIndex string
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list")

	products, err := h.Svc.List(ctx, c.QueryParam("category"))
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, transport.ProductsResponse{Products: products})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_product_error", "status", 400, "reason", "invalid product id")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid product id"})
	}

	product, err := h.Svc.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_error", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "product not found"})
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"product": product})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	query := c.QueryParam("q")
	if strings.TrimSpace(query) == "" {
		l.Warn("search_error", "status", 400, "reason", "empty query")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "search query is required"})
	}
	category := c.QueryParam("category")

	if h.ES != nil {
		products, err := search.Products(ctx, h.ES, h.ESIndex, query, category)
		if err == nil {
			return c.JSON(http.StatusOK, transport.ProductsResponse{Products: products})
		}
		l.Warn("search_fallback", "reason", "elasticsearch query failed", "error", err)
	}

	products, err := h.Svc.Search(ctx, query, category)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, transport.ProductsResponse{Products: products})
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.categories")

	categories, err := h.Svc.Categories(ctx)
	if err != nil {
		l.Error("get_categories_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, transport.CategoriesResponse{Categories: categories})
}
