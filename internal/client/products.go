package client

import (
	"context"
	"sync"

	"github.com/saavyshop/storefront/internal/repository"
)

// ProductCache is the client-side copy of the catalog.  Mutations require an
// admin secret and always refetch the list afterwards, so the cache only
// ever holds rows the server persisted (including server-side trimming and
// defaulting the caller did not apply locally).
type ProductCache struct {
	*Cache[[]*repository.Product]
	client *Client

	mu     sync.Mutex
	filter repository.ProductFilter
}

// NewProductCache builds the cache.  The filter starts unconstrained.
func NewProductCache(c *Client) *ProductCache {
	pc := &ProductCache{client: c}
	pc.Cache = newCache(func(ctx context.Context) ([]*repository.Product, error) {
		pc.mu.Lock()
		f := pc.filter
		pc.mu.Unlock()
		return c.ListProducts(ctx, f)
	})
	return pc
}

// SetFilter changes the list filter used by subsequent refreshes.
func (pc *ProductCache) SetFilter(f repository.ProductFilter) {
	pc.mu.Lock()
	pc.filter = f
	pc.mu.Unlock()
}

// Create adds a product and refreshes the cached list.
func (pc *ProductCache) Create(ctx context.Context, in ProductInput, secret string) (*repository.Product, error) {
	var created *repository.Product
	err := pc.mutate(ctx, secret, func(ctx context.Context) error {
		var err error
		created, err = pc.client.CreateProduct(ctx, in, secret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces a product's editable fields and refreshes the cached list.
func (pc *ProductCache) Update(ctx context.Context, id uint64, in ProductInput, secret string) (*repository.Product, error) {
	var updated *repository.Product
	err := pc.mutate(ctx, secret, func(ctx context.Context) error {
		var err error
		updated, err = pc.client.UpdateProduct(ctx, id, in, secret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a product and refreshes the cached list.
func (pc *ProductCache) Delete(ctx context.Context, id uint64, secret string) error {
	return pc.mutate(ctx, secret, func(ctx context.Context) error {
		return pc.client.DeleteProduct(ctx, id, secret)
	})
}
