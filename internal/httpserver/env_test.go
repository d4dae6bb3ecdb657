package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomcrust/storefront/internal/config"
	"github.com/bloomcrust/storefront/internal/models"
	"github.com/bloomcrust/storefront/internal/repo"
	"github.com/bloomcrust/storefront/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	gormRepo := &repo.GormRepo{DB: db}
	secret := []byte("test-secret")

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: secret}},
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		JWTSecret:      secret,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSON(method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) createProduct(name string, stock int) models.Product {
	env.T.Helper()

	product := models.Product{
		Name:     name,
		Price:    decimal.RequireFromString("2.50"),
		Category: "Bread & Rolls",
		Kind:     "French Bread",
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(env.T, env.DB.Create(&product).Error)
	return product
}

func (env *testEnv) registerAndLogin(email string) string {
	env.T.Helper()

	rec := env.doJSON(http.MethodPost, "/api/v1/register", map[string]string{
		"email":     email,
		"password":  "hunter22",
		"firstName": "Test",
		"lastName":  "User",
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/v1/login", map[string]string{
		"email":    email,
		"password": "hunter22",
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.Token)
	return resp.Token
}
