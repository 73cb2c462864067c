// Package client is the Go client for the storefront API: a typed HTTP
// client plus per-document caches that mirror the admin panel's data flow.
// Every cache follows the same rule: after a successful mutation it refetches
// the canonical document instead of trusting locally composed input, so it
// never displays a value the server did not actually persist.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/saavyshop/storefront/internal/license"
	"github.com/saavyshop/storefront/internal/middleware"
	"github.com/saavyshop/storefront/internal/repository"
)

// Client talks to the storefront REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do sends a request and decodes the JSON response into out (skipped when
// out is nil or the response is 204).  A status >= 400 is returned as an
// *APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path, secret string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(middleware.AdminHeader, secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ProductInput is the request body for product create and update.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
}

// ListProducts fetches the catalog, optionally filtered.
func (c *Client) ListProducts(ctx context.Context, f repository.ProductFilter) ([]*repository.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []*repository.Product
	err := c.do(ctx, http.MethodGet, path, "", nil, &out)
	return out, err
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id uint64) (*repository.Product, error) {
	var out repository.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), "", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct creates a product and returns the canonical stored row.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput, secret string) (*repository.Product, error) {
	var out repository.Product
	err := c.do(ctx, http.MethodPost, "/api/products", secret, in, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces every editable field of the product.
func (c *Client) UpdateProduct(ctx context.Context, id uint64, in ProductInput, secret string) (*repository.Product, error) {
	var out repository.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), secret, in, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct hard-deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id uint64, secret string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), secret, nil, nil)
}

// GetSiteContent fetches the marketing copy document.
func (c *Client) GetSiteContent(ctx context.Context) (*repository.SiteContent, error) {
	var out repository.SiteContent
	err := c.do(ctx, http.MethodGet, "/api/site-content", "", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSiteContent overwrites the marketing copy wholesale.  The full field
// set must be supplied or the server rejects the write.
func (c *Client) UpdateSiteContent(ctx context.Context, content *repository.SiteContent, secret string) (*repository.SiteContent, error) {
	var out repository.SiteContent
	err := c.do(ctx, http.MethodPut, "/api/site-content", secret, content, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSiteConfig fetches the settings document.
func (c *Client) GetSiteConfig(ctx context.Context) (*repository.SiteSettings, error) {
	var out repository.SiteSettings
	err := c.do(ctx, http.MethodGet, "/api/config", "", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSiteName merges a new site name into the settings document.
func (c *Client) UpdateSiteName(ctx context.Context, siteName, secret string) (*repository.SiteSettings, error) {
	var out repository.SiteSettings
	body := map[string]string{"siteName": siteName}
	err := c.do(ctx, http.MethodPut, "/api/admin/site-config", secret, body, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCheckoutConfig fetches the checkout destinations document.
func (c *Client) GetCheckoutConfig(ctx context.Context) (*repository.CheckoutConfig, error) {
	var out repository.CheckoutConfig
	err := c.do(ctx, http.MethodGet, "/api/checkout-config", "", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCheckoutConfig merges the supplied fields over the current document.
func (c *Client) UpdateCheckoutConfig(ctx context.Context, patch repository.CheckoutConfigPatch, secret string) (*repository.CheckoutConfig, error) {
	var out repository.CheckoutConfig
	err := c.do(ctx, http.MethodPut, "/api/checkout-config", secret, patch, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify checks a candidate admin secret against the gate.
func (c *Client) Verify(ctx context.Context, secret string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/verify", secret, nil, nil)
}

// LicenseStatus fetches the cached license verdict.
func (c *Client) LicenseStatus(ctx context.Context, secret string) (*license.Status, error) {
	var out license.Status
	err := c.do(ctx, http.MethodGet, "/api/license/status", secret, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RevalidateLicense forces a license recheck on the server.
func (c *Client) RevalidateLicense(ctx context.Context, secret string) (*license.Status, error) {
	var out license.Status
	err := c.do(ctx, http.MethodPost, "/api/license/revalidate", secret, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
