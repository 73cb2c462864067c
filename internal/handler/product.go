package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saavyshop/storefront/internal/repository"
)

// flexNumber accepts a JSON number or a numeric string, since the admin form
// submits prices as strings.
type flexNumber struct {
	set bool
	val float64
	ok  bool
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	f.set = true
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.val, f.ok = n, true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s = strings.TrimSpace(s); s == "" {
			// A blank string counts as an omitted field.
			f.set = false
		} else if n, err := strconv.ParseFloat(s, 64); err == nil {
			f.val, f.ok = n, true
		}
		return nil
	}
	// Wrong type: treat as unparseable rather than failing the whole bind,
	// so the validation error can name the field.
	return nil
}

// productInput is the typed request body for create and update.
type productInput struct {
	Name        *string    `json:"name"`
	Price       flexNumber `json:"price"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Featured    *bool      `json:"featured"`
}

// sanitizeProduct validates the input and returns a row ready to persist.
// Required text fields must be non-empty after trimming and the price must
// be a finite number >= 0; the returned error names the first offending
// field in submission order.
func sanitizeProduct(in productInput) (*repository.Product, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"name", in.Name == nil || strings.TrimSpace(*in.Name) == ""},
		{"price", !in.Price.set},
		{"category", in.Category == nil || strings.TrimSpace(*in.Category) == ""},
		{"description", in.Description == nil || strings.TrimSpace(*in.Description) == ""},
	}
	for _, f := range required {
		if f.missing {
			return nil, fmt.Errorf("Missing required field: %s", f.name)
		}
	}
	if !in.Price.ok || math.IsInf(in.Price.val, 0) || math.IsNaN(in.Price.val) || in.Price.val < 0 {
		return nil, errors.New("Price must be a valid number")
	}

	p := &repository.Product{
		Name:        strings.TrimSpace(*in.Name),
		Price:       in.Price.val,
		Category:    strings.TrimSpace(*in.Category),
		Description: strings.TrimSpace(*in.Description),
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p, nil
}

// parseFilter builds the list filter from query parameters.  Non-numeric
// price bounds are ignored rather than rejected.
func parseFilter(c echo.Context) repository.ProductFilter {
	f := repository.ProductFilter{Category: c.QueryParam("category")}
	if v := c.QueryParam("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.Products.List(c.Request().Context(), parseFilter(c))
	if err != nil {
		c.Logger().Error("failed to list products: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to load products")
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (h *Handler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	p, err := h.Products.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, "Product not found")
		}
		c.Logger().Error("failed to fetch product: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to load product")
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /api/products.
func (h *Handler) CreateProduct(c echo.Context) error {
	var in productInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	p, err := sanitizeProduct(in)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	created, err := h.Products.Create(c.Request().Context(), p)
	if err != nil {
		c.Logger().Error("failed to create product: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to create product")
	}
	h.bustCache(c.Request().Context())
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles PUT /api/products/:id.  Every editable field is
// replaced; the id is immutable.
func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	var in productInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	p, err := sanitizeProduct(in)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	updated, err := h.Products.Update(c.Request().Context(), id, p)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, "Product not found")
		}
		c.Logger().Error("failed to update product: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to update product")
	}
	h.bustCache(c.Request().Context())
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles DELETE /api/products/:id.  Deletion is hard; the
// second delete of an id is a 404, not an error.
func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	removed, err := h.Products.Delete(c.Request().Context(), id)
	if err != nil {
		c.Logger().Error("failed to delete product: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to delete product")
	}
	if !removed {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	h.bustCache(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
