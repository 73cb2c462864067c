// Package handler contains the HTTP handlers for the storefront API.  Each
// handler validates its input, delegates to a repository and returns the
// canonical stored document, so clients can always replace their local copy
// with the response body.  Storage failures are logged with detail and
// surfaced as a generic message.
package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/saavyshop/storefront/internal/config"
	"github.com/saavyshop/storefront/internal/license"
	"github.com/saavyshop/storefront/internal/middleware"
	"github.com/saavyshop/storefront/internal/repository"
)

// Handler bundles the repositories and collaborators the API needs.
type Handler struct {
	Products     *repository.ProductRepo
	SiteContent  *repository.SiteContentRepo
	SiteSettings *repository.SiteSettingsRepo
	Checkout     *repository.CheckoutConfigRepo
	License      *license.Validator
	Redis        *redis.Client
	CacheCfg     config.CacheConfig
	EnvFile      string
}

// New constructs a Handler and panics if a repository is missing; the
// Validator and Redis client are optional collaborators.
func New(products *repository.ProductRepo, content *repository.SiteContentRepo,
	settings *repository.SiteSettingsRepo, checkout *repository.CheckoutConfigRepo,
	validator *license.Validator, rdb *redis.Client, cacheCfg config.CacheConfig, envFile string) *Handler {
	if products == nil || content == nil || settings == nil || checkout == nil {
		panic("nil repository passed to handler.New")
	}
	return &Handler{
		Products:     products,
		SiteContent:  content,
		SiteSettings: settings,
		Checkout:     checkout,
		License:      validator,
		Redis:        rdb,
		CacheCfg:     cacheCfg,
		EnvFile:      envFile,
	}
}

// fail writes the uniform error body used across the API.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"message": message})
}

// bustCache drops cached public responses after a successful mutation so a
// follow-up read returns the persisted document.
func (h *Handler) bustCache(ctx context.Context) {
	middleware.InvalidateCache(ctx, h.Redis, h.CacheCfg)
}
