// Package router wires middleware and routes onto an Echo instance.
package router

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/chatbook-study-hub/internal/config"
	"github.com/iliyamo/chatbook-study-hub/internal/handler"
	"github.com/iliyamo/chatbook-study-hub/internal/metrics"
	"github.com/iliyamo/chatbook-study-hub/internal/middleware"
	"github.com/iliyamo/chatbook-study-hub/internal/view"
)

// contentSecurityPolicy allows the inline styles of the status page and
// nothing from foreign origins.
const contentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'; frame-ancestors 'self'; object-src 'none'"

// New builds a fully wired Echo instance.  rdb may be nil, in which case rate
// limiting and response caching are disabled.
func New(cfg config.Config, logger *slog.Logger, rdb *redis.Client) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("view renderer: %w", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.NewErrorHandler(e)

	RegisterMiddleware(e, cfg, logger, rdb)
	RegisterRoutes(e, handler.New(cfg), cfg, rdb)
	return e, nil
}

// RegisterMiddleware installs the global middleware chain.  The request id
// comes first so every log line carries it; recovery sits inside logging and
// metrics so panics are observed with their final 500 status.
func RegisterMiddleware(e *echo.Echo, cfg config.Config, logger *slog.Logger, rdb *redis.Client) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		e.Use(metrics.Middleware())
	}
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{DisableErrorHandler: true}))
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.AllowedOrigins()}))
	e.Use(echomw.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.NewTokenBucket(cfg.RateLimit, rdb, isProbe))
}

// RegisterRoutes maps the public routes.  None of them require
// authentication.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, cfg config.Config, rdb *redis.Client) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/status", h.Status)

	api := e.Group("/api")
	// /api/test only depends on startup configuration, so replaying it is safe
	api.GET("/test", h.APITest, middleware.NewRedisCache(cfg.Cache, rdb))
	api.POST("/echo", h.Echo)

	if cfg.MetricsEnabled {
		e.GET("/metrics", metrics.Handler())
	}
}

// isProbe exempts health checks and metric scrapes from rate limiting.
func isProbe(c echo.Context) bool {
	switch c.Path() {
	case "/health", "/metrics":
		return true
	}
	return false
}
