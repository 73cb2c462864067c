package client

import (
	"context"

	"github.com/saavyshop/storefront/internal/repository"
)

// SiteContentCache is the client-side copy of the marketing copy document.
type SiteContentCache struct {
	*Cache[*repository.SiteContent]
	client *Client
}

func NewSiteContentCache(c *Client) *SiteContentCache {
	return &SiteContentCache{
		Cache:  newCache(c.GetSiteContent),
		client: c,
	}
}

// Update overwrites the document wholesale and refreshes the cache with the
// server's canonical copy.
func (sc *SiteContentCache) Update(ctx context.Context, content *repository.SiteContent, secret string) (*repository.SiteContent, error) {
	var updated *repository.SiteContent
	err := sc.mutate(ctx, secret, func(ctx context.Context) error {
		var err error
		updated, err = sc.client.UpdateSiteContent(ctx, content, secret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
