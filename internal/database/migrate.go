// Package database opens the MySQL pool and prepares the schema.  Migrate is
// idempotent: tables are created only if absent and seed rows are inserted
// only into empty tables, so restarting the server never clobbers documents
// an admin has already edited.
package database

import (
	"context"
	"database/sql"

	"github.com/saavyshop/storefront/internal/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(255) NOT NULL,
		price       DOUBLE NOT NULL,
		category    VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		image       MEDIUMTEXT,
		featured    TINYINT(1) NOT NULL DEFAULT 0,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS site_content (
		id                     TINYINT UNSIGNED NOT NULL,
		hero_badge             TEXT NOT NULL,
		hero_title             TEXT NOT NULL,
		hero_description       TEXT NOT NULL,
		hero_primary_label     TEXT NOT NULL,
		hero_primary_url       TEXT NOT NULL,
		hero_secondary_label   TEXT NOT NULL,
		hero_secondary_url     TEXT NOT NULL,
		hero_image             MEDIUMTEXT NOT NULL,
		hero_spotlight_eyebrow TEXT NOT NULL,
		hero_spotlight_title   TEXT NOT NULL,
		featured_eyebrow       TEXT NOT NULL,
		featured_title         TEXT NOT NULL,
		featured_description   TEXT NOT NULL,
		spotlight_eyebrow      TEXT NOT NULL,
		spotlight_title        TEXT NOT NULL,
		spotlight_description  TEXT NOT NULL,
		spotlight_cta_label    TEXT NOT NULL,
		spotlight_cta_url      TEXT NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id        TINYINT UNSIGNED NOT NULL,
		site_name VARCHAR(255) NOT NULL,
		layout    VARCHAR(32) NOT NULL,
		theme     VARCHAR(32) NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS checkout_config (
		id                    TINYINT UNSIGNED NOT NULL,
		secure_checkout_label TEXT NOT NULL,
		secure_checkout_url   TEXT NOT NULL,
		google_form_url       TEXT NOT NULL,
		microsoft_form_url    TEXT NOT NULL,
		instructions          TEXT NOT NULL,
		PRIMARY KEY (id)
	)`,
}

// seedProduct mirrors the demo catalog the storefront ships with.
type seedProduct struct {
	name        string
	price       float64
	category    string
	description string
	image       string
}

var seedProducts = []seedProduct{
	{
		name:        "Classic Leather Wallet",
		price:       49.99,
		category:    "Accessories",
		description: "Handcrafted genuine leather wallet with RFID protection.",
		image:       "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Minimalist Wristwatch",
		price:       129.0,
		category:    "Accessories",
		description: "Stainless steel case with sapphire crystal and leather strap.",
		image:       "https://images.unsplash.com/photo-1518544889280-45e21f2a0d91?auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Canvas Tote Bag",
		price:       39.5,
		category:    "Bags",
		description: "Durable organic cotton tote bag perfect for daily errands.",
		image:       "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Espresso Ceramic Mug",
		price:       24.99,
		category:    "Home",
		description: "Handmade ceramic mug with matte glaze and ergonomic handle.",
		image:       "https://images.unsplash.com/photo-1517686469429-8bdb88b9f907?auto=format&fit=crop&w=800&q=80",
	},
}

// Migrate creates the schema and seeds the default documents.  siteName is
// used for the settings singleton so a SITE_NAME configured before first
// boot survives into the database.
func Migrate(ctx context.Context, db *sql.DB, siteName string) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if err := seedProductsIfEmpty(ctx, db); err != nil {
		return err
	}
	if err := seedSiteContentIfEmpty(ctx, db); err != nil {
		return err
	}
	if err := seedSiteSettingsIfEmpty(ctx, db, siteName); err != nil {
		return err
	}
	return seedCheckoutConfigIfEmpty(ctx, db)
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedProductsIfEmpty(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "products")
	if err != nil || !empty {
		return err
	}
	const q = `INSERT INTO products (name, price, category, description, image, featured)
	           VALUES (?, ?, ?, ?, ?, 0)`
	for _, p := range seedProducts {
		if _, err := db.ExecContext(ctx, q, p.name, p.price, p.category, p.description, p.image); err != nil {
			return err
		}
	}
	return nil
}

func seedSiteContentIfEmpty(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "site_content")
	if err != nil || !empty {
		return err
	}
	const q = `INSERT INTO site_content (
	    id, hero_badge, hero_title, hero_description,
	    hero_primary_label, hero_primary_url, hero_secondary_label, hero_secondary_url,
	    hero_image, hero_spotlight_eyebrow, hero_spotlight_title,
	    featured_eyebrow, featured_title, featured_description,
	    spotlight_eyebrow, spotlight_title, spotlight_description,
	    spotlight_cta_label, spotlight_cta_url
	) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	c := repository.DefaultSiteContent()
	_, err = db.ExecContext(ctx, q,
		c.HeroBadge, c.HeroTitle, c.HeroDescription,
		c.HeroPrimaryLabel, c.HeroPrimaryUrl, c.HeroSecondaryLabel, c.HeroSecondaryUrl,
		c.HeroImage, c.HeroSpotlightEyebrow, c.HeroSpotlightTitle,
		c.FeaturedEyebrow, c.FeaturedTitle, c.FeaturedDescription,
		c.SpotlightEyebrow, c.SpotlightTitle, c.SpotlightDescription,
		c.SpotlightCtaLabel, c.SpotlightCtaUrl,
	)
	return err
}

func seedSiteSettingsIfEmpty(ctx context.Context, db *sql.DB, siteName string) error {
	empty, err := tableEmpty(ctx, db, "site_settings")
	if err != nil || !empty {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO site_settings (id, site_name, layout, theme) VALUES (1, ?, 'classic', 'light')`,
		siteName)
	return err
}

func seedCheckoutConfigIfEmpty(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "checkout_config")
	if err != nil || !empty {
		return err
	}
	c := repository.DefaultCheckoutConfig()
	_, err = db.ExecContext(ctx, `INSERT INTO checkout_config
	    (id, secure_checkout_label, secure_checkout_url, google_form_url, microsoft_form_url, instructions)
	    VALUES (1, ?, ?, ?, ?, ?)`,
		c.SecureCheckoutLabel, c.SecureCheckoutUrl, c.GoogleFormUrl, c.MicrosoftFormUrl, c.Instructions)
	return err
}
