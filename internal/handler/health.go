package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles GET /api/health.  Load balancers and the client's liveness
// probe use it; the site name rides along so the storefront can render a
// title before any other request completes.
func (h *Handler) Health(c echo.Context) error {
	siteName := ""
	if settings, err := h.SiteSettings.Get(c.Request().Context()); err == nil {
		siteName = settings.SiteName
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "siteName": siteName})
}
