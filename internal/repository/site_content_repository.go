// This file defines the SiteContent singleton document: the storefront's
// marketing copy.  The document is overwritten wholesale by admin
// submissions and never deleted; partial writes are rejected a layer above.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SiteContent holds every editable piece of homepage copy.  All fields are
// required; the handler rejects an update unless the full set is supplied.
type SiteContent struct {
	HeroBadge            string `json:"heroBadge"`
	HeroTitle            string `json:"heroTitle"`
	HeroDescription      string `json:"heroDescription"`
	HeroPrimaryLabel     string `json:"heroPrimaryLabel"`
	HeroPrimaryUrl       string `json:"heroPrimaryUrl"`
	HeroSecondaryLabel   string `json:"heroSecondaryLabel"`
	HeroSecondaryUrl     string `json:"heroSecondaryUrl"`
	HeroImage            string `json:"heroImage"`
	HeroSpotlightEyebrow string `json:"heroSpotlightEyebrow"`
	HeroSpotlightTitle   string `json:"heroSpotlightTitle"`
	FeaturedEyebrow      string `json:"featuredEyebrow"`
	FeaturedTitle        string `json:"featuredTitle"`
	FeaturedDescription  string `json:"featuredDescription"`
	SpotlightEyebrow     string `json:"spotlightEyebrow"`
	SpotlightTitle       string `json:"spotlightTitle"`
	SpotlightDescription string `json:"spotlightDescription"`
	SpotlightCtaLabel    string `json:"spotlightCtaLabel"`
	SpotlightCtaUrl      string `json:"spotlightCtaUrl"`
}

// DefaultSiteContent returns the copy the storefront ships with.  Migration
// seeds the singleton row from it, and Get falls back to it should the row
// ever be missing.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		HeroBadge:            "SaavyShop Demo",
		HeroTitle:            "Showcase products beautifully and update inventory without code.",
		HeroDescription:      "This retail demo website pairs a premium storefront with an intuitive admin panel. Update product details, swap imagery, and launch campaigns in minutes.",
		HeroPrimaryLabel:     "Explore Products",
		HeroPrimaryUrl:       "/shop",
		HeroSecondaryLabel:   "Manage Catalog",
		HeroSecondaryUrl:     "/admin",
		HeroImage:            "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=1600&q=80",
		HeroSpotlightEyebrow: "Featured Collection",
		HeroSpotlightTitle:   "Curate a stunning brand showcase",
		FeaturedEyebrow:      "Featured",
		FeaturedTitle:        "Product highlights",
		FeaturedDescription:  "Demonstrate merchandising strategy with a curated product grid. Update featured collections instantly from the admin panel.",
		SpotlightEyebrow:     "No-code admin tool",
		SpotlightTitle:       "Empower clients to launch updates without engineering tickets.",
		SpotlightDescription: "Editable tables, instant image previews, and confirmation modals make management effortless. Preview the admin workspace to see how your clients can own product storytelling.",
		SpotlightCtaLabel:    "Open admin panel",
		SpotlightCtaUrl:      "/admin",
	}
}

// SiteContentRepo persists the site content singleton (row id = 1).
type SiteContentRepo struct {
	db *sql.DB
}

func NewSiteContentRepo(db *sql.DB) *SiteContentRepo {
	return &SiteContentRepo{db: db}
}

const siteContentColumns = `hero_badge, hero_title, hero_description,
	hero_primary_label, hero_primary_url, hero_secondary_label, hero_secondary_url,
	hero_image, hero_spotlight_eyebrow, hero_spotlight_title,
	featured_eyebrow, featured_title, featured_description,
	spotlight_eyebrow, spotlight_title, spotlight_description,
	spotlight_cta_label, spotlight_cta_url`

// Get returns the current document, or the shipped defaults when the
// singleton row is absent.
func (r *SiteContentRepo) Get(ctx context.Context) (*SiteContent, error) {
	const q = "SELECT " + siteContentColumns + " FROM site_content WHERE id = 1"
	var c SiteContent
	err := r.db.QueryRowContext(ctx, q).Scan(
		&c.HeroBadge, &c.HeroTitle, &c.HeroDescription,
		&c.HeroPrimaryLabel, &c.HeroPrimaryUrl, &c.HeroSecondaryLabel, &c.HeroSecondaryUrl,
		&c.HeroImage, &c.HeroSpotlightEyebrow, &c.HeroSpotlightTitle,
		&c.FeaturedEyebrow, &c.FeaturedTitle, &c.FeaturedDescription,
		&c.SpotlightEyebrow, &c.SpotlightTitle, &c.SpotlightDescription,
		&c.SpotlightCtaLabel, &c.SpotlightCtaUrl,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSiteContent(), nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Replace overwrites the whole document and returns the canonical stored
// copy.  An upsert keeps the operation a single statement even when the row
// was never seeded.
func (r *SiteContentRepo) Replace(ctx context.Context, c *SiteContent) (*SiteContent, error) {
	const q = `INSERT INTO site_content (id, ` + siteContentColumns + `)
	    VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	    ON DUPLICATE KEY UPDATE
	    hero_badge = VALUES(hero_badge), hero_title = VALUES(hero_title),
	    hero_description = VALUES(hero_description),
	    hero_primary_label = VALUES(hero_primary_label), hero_primary_url = VALUES(hero_primary_url),
	    hero_secondary_label = VALUES(hero_secondary_label), hero_secondary_url = VALUES(hero_secondary_url),
	    hero_image = VALUES(hero_image),
	    hero_spotlight_eyebrow = VALUES(hero_spotlight_eyebrow), hero_spotlight_title = VALUES(hero_spotlight_title),
	    featured_eyebrow = VALUES(featured_eyebrow), featured_title = VALUES(featured_title),
	    featured_description = VALUES(featured_description),
	    spotlight_eyebrow = VALUES(spotlight_eyebrow), spotlight_title = VALUES(spotlight_title),
	    spotlight_description = VALUES(spotlight_description),
	    spotlight_cta_label = VALUES(spotlight_cta_label), spotlight_cta_url = VALUES(spotlight_cta_url)`
	_, err := r.db.ExecContext(ctx, q,
		c.HeroBadge, c.HeroTitle, c.HeroDescription,
		c.HeroPrimaryLabel, c.HeroPrimaryUrl, c.HeroSecondaryLabel, c.HeroSecondaryUrl,
		c.HeroImage, c.HeroSpotlightEyebrow, c.HeroSpotlightTitle,
		c.FeaturedEyebrow, c.FeaturedTitle, c.FeaturedDescription,
		c.SpotlightEyebrow, c.SpotlightTitle, c.SpotlightDescription,
		c.SpotlightCtaLabel, c.SpotlightCtaUrl,
	)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
