package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func siteContentRows(c *SiteContent) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"hero_badge", "hero_title", "hero_description",
		"hero_primary_label", "hero_primary_url", "hero_secondary_label", "hero_secondary_url",
		"hero_image", "hero_spotlight_eyebrow", "hero_spotlight_title",
		"featured_eyebrow", "featured_title", "featured_description",
		"spotlight_eyebrow", "spotlight_title", "spotlight_description",
		"spotlight_cta_label", "spotlight_cta_url",
	}).AddRow(
		c.HeroBadge, c.HeroTitle, c.HeroDescription,
		c.HeroPrimaryLabel, c.HeroPrimaryUrl, c.HeroSecondaryLabel, c.HeroSecondaryUrl,
		c.HeroImage, c.HeroSpotlightEyebrow, c.HeroSpotlightTitle,
		c.FeaturedEyebrow, c.FeaturedTitle, c.FeaturedDescription,
		c.SpotlightEyebrow, c.SpotlightTitle, c.SpotlightDescription,
		c.SpotlightCtaLabel, c.SpotlightCtaUrl,
	)
}

func TestSiteContentGetFallsBackToDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSiteContentRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM site_content WHERE id = 1")).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultSiteContent(), got)
}

func TestSiteContentReplaceReturnsCanonicalDocument(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSiteContentRepo(db)

	doc := DefaultSiteContent()
	doc.HeroBadge = "New Badge"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO site_content")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM site_content WHERE id = 1")).
		WillReturnRows(siteContentRows(doc))

	got, err := repo.Replace(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, "New Badge", got.HeroBadge)
}

func TestSiteSettingsGetFallsBackToDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSiteSettingsRepo(db, "Acme")

	mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings WHERE id = 1")).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, &SiteSettings{SiteName: "Acme", Layout: "classic", Theme: "light"}, got)
}

func TestSiteSettingsUpdateSiteNameMergesOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSiteSettingsRepo(db, "Acme")

	mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE site_name = VALUES(site_name)")).
		WithArgs("Acme Store").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings WHERE id = 1")).
		WillReturnRows(sqlmock.NewRows([]string{"site_name", "layout", "theme"}).
			AddRow("Acme Store", "classic", "light"))

	got, err := repo.UpdateSiteName(context.Background(), "Acme Store")
	require.NoError(t, err)
	require.Equal(t, "Acme Store", got.SiteName)
	// Appearance seeds are untouched by a name update.
	require.Equal(t, "classic", got.Layout)
}

func TestCheckoutConfigUpdateOnlySetsSuppliedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCheckoutConfigRepo(db)

	u := "https://forms.example/order"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE checkout_config SET google_form_url = ? WHERE id = 1")).
		WithArgs(u).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM checkout_config WHERE id = 1")).
		WillReturnRows(sqlmock.NewRows([]string{
			"secure_checkout_label", "secure_checkout_url", "google_form_url",
			"microsoft_form_url", "instructions",
		}).AddRow("Secure checkout", "", u, "", "instructions"))

	got, err := repo.Update(context.Background(), CheckoutConfigPatch{GoogleFormUrl: &u})
	require.NoError(t, err)
	require.Equal(t, u, got.GoogleFormUrl)
}

func TestCheckoutConfigUpdateEmptyPatchIsReadOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCheckoutConfigRepo(db)

	// No UPDATE expected at all: an empty patch only reads.
	mock.ExpectQuery(regexp.QuoteMeta("FROM checkout_config WHERE id = 1")).
		WillReturnRows(sqlmock.NewRows([]string{
			"secure_checkout_label", "secure_checkout_url", "google_form_url",
			"microsoft_form_url", "instructions",
		}).AddRow("Secure checkout", "", "", "", "instructions"))

	got, err := repo.Update(context.Background(), CheckoutConfigPatch{})
	require.NoError(t, err)
	require.Equal(t, "Secure checkout", got.SecureCheckoutLabel)
}
