package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saavyshop/storefront/internal/config"
)

// GetSiteConfig handles GET /api/config.  Layout and theme in the response
// are the seeded values; the admin surface only ever writes the site name,
// appearance stays a client-local preference.
func (h *Handler) GetSiteConfig(c echo.Context) error {
	settings, err := h.SiteSettings.Get(c.Request().Context())
	if err != nil {
		c.Logger().Error("failed to load site settings: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to load site settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSiteName handles PUT /api/admin/site-config.  Besides persisting the
// name it rewrites SITE_NAME in the env file so the value survives a
// restart.
func (h *Handler) UpdateSiteName(c echo.Context) error {
	var in struct {
		SiteName *string `json:"siteName"`
	}
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if in.SiteName == nil || strings.TrimSpace(*in.SiteName) == "" {
		return fail(c, http.StatusBadRequest, "Missing required field: siteName")
	}
	name := strings.TrimSpace(*in.SiteName)

	settings, err := h.SiteSettings.UpdateSiteName(c.Request().Context(), name)
	if err != nil {
		c.Logger().Error("failed to update site name: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to update site settings")
	}
	if err := config.UpdateEnvFile(h.EnvFile, "SITE_NAME", name); err != nil {
		// The database write already landed; report the env file problem but
		// keep the canonical document as the response.
		c.Logger().Error("failed to rewrite env file: ", err)
	}
	h.bustCache(c.Request().Context())
	return c.JSON(http.StatusOK, settings)
}
