// Package middleware contains reusable HTTP middleware: the shared-secret
// admin gate and the optional Redis response cache.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminHeader carries the shared admin secret on mutating requests.
const AdminHeader = "X-Admin-Password"

// RequireAdmin returns a middleware that authorizes mutating requests by
// comparing the presented secret to the configured one.  The comparison is
// exact byte equality with no trimming or case folding; an absent or
// mismatched value yields 401 without reaching the handler, and the response
// never echoes the expected secret.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			presented := c.Request().Header.Get(AdminHeader)
			if presented == "" || presented != secret {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			return next(c)
		}
	}
}
