// Package router wires the API routes to their handlers.  Public reads sit
// behind the optional response cache; every mutating or status endpoint is
// wrapped by the admin gate, so no handler ever runs for an unauthorized
// mutation.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/saavyshop/storefront/internal/config"
	"github.com/saavyshop/storefront/internal/handler"
	"github.com/saavyshop/storefront/internal/middleware"
)

// Register attaches all routes to the Echo instance.
func Register(e *echo.Echo, h *handler.Handler, adminSecret string, rdb *redis.Client, cacheCfg config.CacheConfig) {
	api := e.Group("/api")

	// Public storefront reads.  The cache middleware is a no-op without
	// Redis, so registration is unconditional.
	public := api.Group("", middleware.ResponseCache(rdb, cacheCfg))
	public.GET("/health", h.Health)
	public.GET("/products", h.ListProducts)
	public.GET("/products/:id", h.GetProduct)
	public.GET("/site-content", h.GetSiteContent)
	public.GET("/config", h.GetSiteConfig)
	public.GET("/checkout-config", h.GetCheckoutConfig)

	// Admin-gated mutations and status endpoints.
	admin := api.Group("", middleware.RequireAdmin(adminSecret))
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.PUT("/site-content", h.UpdateSiteContent)
	admin.PUT("/admin/site-config", h.UpdateSiteName)
	admin.PUT("/checkout-config", h.UpdateCheckoutConfig)
	admin.POST("/admin/verify", h.VerifyAdmin)
	admin.GET("/license/status", h.LicenseStatus)
	admin.POST("/license/revalidate", h.RevalidateLicense)
}
