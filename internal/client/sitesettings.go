package client

import (
	"context"
	"sync"

	"github.com/saavyshop/storefront/internal/client/localstore"
	"github.com/saavyshop/storefront/internal/repository"
)

// Option is a selectable layout or theme identifier with its display label.
type Option struct {
	Value string
	Label string
}

// LayoutOptions and ThemeOptions are the fixed appearance choices.  Values
// outside these sets are ignored in favor of the current preference.
var LayoutOptions = []Option{
	{Value: "classic", Label: "Classic split"},
	{Value: "spotlight", Label: "Spotlight showcase"},
	{Value: "magazine", Label: "Magazine grid"},
}

var ThemeOptions = []Option{
	{Value: "light", Label: "Daylight"},
	{Value: "midnight", Label: "Midnight"},
	{Value: "sunset", Label: "Golden hour"},
}

const (
	layoutStorageKey = "saavyshop-layout"
	themeStorageKey  = "saavyshop-theme"
)

func validOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// SiteSettingsCache caches the server's settings document and layers the
// client-local appearance preferences on top.  The asymmetry is deliberate
// and mirrors the admin panel: siteName round-trips through the server,
// while layout and theme live only in the local store and are never sent
// upstream.
type SiteSettingsCache struct {
	*Cache[*repository.SiteSettings]
	client *Client
	store  *localstore.Store

	mu     sync.Mutex
	layout string
	theme  string
}

// NewSiteSettingsCache builds the cache and loads any stored appearance
// preferences; unknown stored values are discarded.
func NewSiteSettingsCache(ctx context.Context, c *Client, store *localstore.Store) *SiteSettingsCache {
	sc := &SiteSettingsCache{
		client: c,
		store:  store,
		layout: LayoutOptions[0].Value,
		theme:  ThemeOptions[0].Value,
	}
	sc.Cache = newCache(c.GetSiteConfig)
	if store != nil {
		if v, ok, err := store.Get(ctx, layoutStorageKey); err == nil && ok && validOption(LayoutOptions, v) {
			sc.layout = v
		}
		if v, ok, err := store.Get(ctx, themeStorageKey); err == nil && ok && validOption(ThemeOptions, v) {
			sc.theme = v
		}
	}
	return sc
}

// Settings merges the cached server document with the local appearance
// preferences.  Before the first successful refresh the site name falls back
// to the shipped default.
func (sc *SiteSettingsCache) Settings() repository.SiteSettings {
	name := "SaavyShop Demo"
	if doc, ok := sc.Data(); ok {
		name = doc.SiteName
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return repository.SiteSettings{SiteName: name, Layout: sc.layout, Theme: sc.theme}
}

// UpdateSiteName persists the name server-side and refreshes the cache.
func (sc *SiteSettingsCache) UpdateSiteName(ctx context.Context, name, secret string) (*repository.SiteSettings, error) {
	var updated *repository.SiteSettings
	err := sc.mutate(ctx, secret, func(ctx context.Context) error {
		var err error
		updated, err = sc.client.UpdateSiteName(ctx, name, secret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetLayout updates the local layout preference.  An unknown value is
// ignored and the current preference kept.
func (sc *SiteSettingsCache) SetLayout(ctx context.Context, layout string) {
	if !validOption(LayoutOptions, layout) {
		return
	}
	sc.mu.Lock()
	sc.layout = layout
	sc.mu.Unlock()
	if sc.store != nil {
		_ = sc.store.Set(ctx, layoutStorageKey, layout)
	}
}

// SetTheme updates the local theme preference.  An unknown value is ignored.
func (sc *SiteSettingsCache) SetTheme(ctx context.Context, theme string) {
	if !validOption(ThemeOptions, theme) {
		return
	}
	sc.mu.Lock()
	sc.theme = theme
	sc.mu.Unlock()
	if sc.store != nil {
		_ = sc.store.Set(ctx, themeStorageKey, theme)
	}
}

// CycleTheme advances to the next theme in ThemeOptions, wrapping around.
func (sc *SiteSettingsCache) CycleTheme(ctx context.Context) string {
	sc.mu.Lock()
	idx := 0
	for i, o := range ThemeOptions {
		if o.Value == sc.theme {
			idx = i
			break
		}
	}
	next := ThemeOptions[(idx+1)%len(ThemeOptions)].Value
	sc.theme = next
	sc.mu.Unlock()
	if sc.store != nil {
		_ = sc.store.Set(ctx, themeStorageKey, next)
	}
	return next
}
