package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saavyshop/storefront/internal/repository"
)

// GetCheckoutConfig handles GET /api/checkout-config.  The checkout page can
// always render, so a storage failure degrades to the shipped defaults
// instead of an error response.
func (h *Handler) GetCheckoutConfig(c echo.Context) error {
	cfg, err := h.Checkout.Get(c.Request().Context())
	if err != nil {
		c.Logger().Error("failed to load checkout config: ", err)
		cfg = repository.DefaultCheckoutConfig()
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateCheckoutConfig handles PUT /api/checkout-config.  All fields are
// optional; supplied ones merge over the current document and an empty value
// disables that checkout path in presentation.
func (h *Handler) UpdateCheckoutConfig(c echo.Context) error {
	var patch repository.CheckoutConfigPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	cfg, err := h.Checkout.Update(c.Request().Context(), patch)
	if err != nil {
		c.Logger().Error("failed to update checkout config: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to update checkout config")
	}
	h.bustCache(c.Request().Context())
	return c.JSON(http.StatusOK, cfg)
}
