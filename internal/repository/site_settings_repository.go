// This file defines the SiteSettings singleton: branding plus appearance
// seeds.  Only site_name is ever written through the API; layout and theme
// stay client-local preferences and the server merely reports the seeded
// values.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SiteSettings is the brand/appearance document.
type SiteSettings struct {
	SiteName string `json:"siteName"`
	Layout   string `json:"layout"`
	Theme    string `json:"theme"`
}

// SiteSettingsRepo persists the settings singleton (row id = 1).
type SiteSettingsRepo struct {
	db          *sql.DB
	defaultName string
}

// NewSiteSettingsRepo constructs the repo.  defaultName is reported when the
// singleton row has not been seeded yet.
func NewSiteSettingsRepo(db *sql.DB, defaultName string) *SiteSettingsRepo {
	return &SiteSettingsRepo{db: db, defaultName: defaultName}
}

// Get returns the current settings document.
func (r *SiteSettingsRepo) Get(ctx context.Context) (*SiteSettings, error) {
	const q = "SELECT site_name, layout, theme FROM site_settings WHERE id = 1"
	var s SiteSettings
	err := r.db.QueryRowContext(ctx, q).Scan(&s.SiteName, &s.Layout, &s.Theme)
	if errors.Is(err, sql.ErrNoRows) {
		return &SiteSettings{SiteName: r.defaultName, Layout: "classic", Theme: "light"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSiteName merges a new site name into the settings document, leaving
// layout and theme untouched, and returns the canonical document.
func (r *SiteSettingsRepo) UpdateSiteName(ctx context.Context, name string) (*SiteSettings, error) {
	const q = `INSERT INTO site_settings (id, site_name, layout, theme)
	           VALUES (1, ?, 'classic', 'light')
	           ON DUPLICATE KEY UPDATE site_name = VALUES(site_name)`
	if _, err := r.db.ExecContext(ctx, q, name); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
