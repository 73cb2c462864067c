package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VerifyAdmin handles POST /api/admin/verify.  The admin gate middleware has
// already authorized the request by the time this runs, so the body is a
// bare acknowledgement the client uses to confirm a stored secret.
func (h *Handler) VerifyAdmin(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// LicenseStatus handles GET /api/license/status: the cached verdict for the
// currently configured key.
func (h *Handler) LicenseStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.License.Status(false))
}

// RevalidateLicense handles POST /api/license/revalidate: a forced recheck
// that bypasses the single-slot cache.
func (h *Handler) RevalidateLicense(c echo.Context) error {
	return c.JSON(http.StatusOK, h.License.Status(true))
}
