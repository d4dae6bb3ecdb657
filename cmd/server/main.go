package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bloomcrust/storefront/internal/config"
	"github.com/bloomcrust/storefront/internal/events"
	"github.com/bloomcrust/storefront/internal/httpserver"
	"github.com/bloomcrust/storefront/internal/logging"
	"github.com/bloomcrust/storefront/internal/repo"
	"github.com/bloomcrust/storefront/internal/search"
	"github.com/bloomcrust/storefront/internal/seed"
	"github.com/bloomcrust/storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := seed.Products(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer([]string{cfg.KafkaAddress})
	}

	gormRepo := &repo.GormRepo{DB: db}

	catalogHandler := &httpserver.CatalogHTTP{
		Svc: &service.CatalogService{Repo: gormRepo},
	}
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search falls back to sql", "error", err)
		} else {
			catalogHandler.ES = esClient
			catalogHandler.ESIndex = search.ProductIndex
		}
	}

	jwtSecret := []byte(cfg.JWTSecret)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: gormRepo, JWTSecret: jwtSecret},
			Producer: producer,
		},
		CartHandler: &httpserver.CartHTTP{
			Svc:      &service.CartService{Repo: gormRepo},
			Producer: producer,
		},
		CatalogHandler: catalogHandler,
		JWTSecret:      jwtSecret,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("producer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
