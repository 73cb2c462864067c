package client

import (
	"context"

	"github.com/saavyshop/storefront/internal/repository"
)

// CheckoutCache is the client-side copy of the checkout destinations
// document.
type CheckoutCache struct {
	*Cache[*repository.CheckoutConfig]
	client *Client
}

func NewCheckoutCache(c *Client) *CheckoutCache {
	return &CheckoutCache{
		Cache:  newCache(c.GetCheckoutConfig),
		client: c,
	}
}

// Update merges the supplied fields over the current document and refreshes
// the cache with the canonical result.
func (cc *CheckoutCache) Update(ctx context.Context, patch repository.CheckoutConfigPatch, secret string) (*repository.CheckoutConfig, error) {
	var updated *repository.CheckoutConfig
	err := cc.mutate(ctx, secret, func(ctx context.Context) error {
		var err error
		updated, err = cc.client.UpdateCheckoutConfig(ctx, patch, secret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
