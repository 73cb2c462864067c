package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saavyshop/storefront/internal/repository"
)

// siteContentInput mirrors the SiteContent document with pointer fields so a
// missing key is distinguishable from an empty string.  A write must supply
// the complete field set or it is rejected; there are no partial updates of
// site content.
type siteContentInput struct {
	HeroBadge            *string `json:"heroBadge"`
	HeroTitle            *string `json:"heroTitle"`
	HeroDescription      *string `json:"heroDescription"`
	HeroPrimaryLabel     *string `json:"heroPrimaryLabel"`
	HeroPrimaryUrl       *string `json:"heroPrimaryUrl"`
	HeroSecondaryLabel   *string `json:"heroSecondaryLabel"`
	HeroSecondaryUrl     *string `json:"heroSecondaryUrl"`
	HeroImage            *string `json:"heroImage"`
	HeroSpotlightEyebrow *string `json:"heroSpotlightEyebrow"`
	HeroSpotlightTitle   *string `json:"heroSpotlightTitle"`
	FeaturedEyebrow      *string `json:"featuredEyebrow"`
	FeaturedTitle        *string `json:"featuredTitle"`
	FeaturedDescription  *string `json:"featuredDescription"`
	SpotlightEyebrow     *string `json:"spotlightEyebrow"`
	SpotlightTitle       *string `json:"spotlightTitle"`
	SpotlightDescription *string `json:"spotlightDescription"`
	SpotlightCtaLabel    *string `json:"spotlightCtaLabel"`
	SpotlightCtaUrl      *string `json:"spotlightCtaUrl"`
}

// sanitizeSiteContent checks that every field is present and returns the
// trimmed document.  The error names the first missing field in document
// order.
func sanitizeSiteContent(in siteContentInput) (*repository.SiteContent, error) {
	var out repository.SiteContent
	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"heroBadge", in.HeroBadge, &out.HeroBadge},
		{"heroTitle", in.HeroTitle, &out.HeroTitle},
		{"heroDescription", in.HeroDescription, &out.HeroDescription},
		{"heroPrimaryLabel", in.HeroPrimaryLabel, &out.HeroPrimaryLabel},
		{"heroPrimaryUrl", in.HeroPrimaryUrl, &out.HeroPrimaryUrl},
		{"heroSecondaryLabel", in.HeroSecondaryLabel, &out.HeroSecondaryLabel},
		{"heroSecondaryUrl", in.HeroSecondaryUrl, &out.HeroSecondaryUrl},
		{"heroImage", in.HeroImage, &out.HeroImage},
		{"heroSpotlightEyebrow", in.HeroSpotlightEyebrow, &out.HeroSpotlightEyebrow},
		{"heroSpotlightTitle", in.HeroSpotlightTitle, &out.HeroSpotlightTitle},
		{"featuredEyebrow", in.FeaturedEyebrow, &out.FeaturedEyebrow},
		{"featuredTitle", in.FeaturedTitle, &out.FeaturedTitle},
		{"featuredDescription", in.FeaturedDescription, &out.FeaturedDescription},
		{"spotlightEyebrow", in.SpotlightEyebrow, &out.SpotlightEyebrow},
		{"spotlightTitle", in.SpotlightTitle, &out.SpotlightTitle},
		{"spotlightDescription", in.SpotlightDescription, &out.SpotlightDescription},
		{"spotlightCtaLabel", in.SpotlightCtaLabel, &out.SpotlightCtaLabel},
		{"spotlightCtaUrl", in.SpotlightCtaUrl, &out.SpotlightCtaUrl},
	}
	for _, f := range fields {
		if f.src == nil {
			return nil, fmt.Errorf("Missing required field: %s", f.name)
		}
		*f.dst = strings.TrimSpace(*f.src)
	}
	return &out, nil
}

// GetSiteContent handles GET /api/site-content.
func (h *Handler) GetSiteContent(c echo.Context) error {
	content, err := h.SiteContent.Get(c.Request().Context())
	if err != nil {
		c.Logger().Error("failed to load site content: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to load site content")
	}
	return c.JSON(http.StatusOK, content)
}

// UpdateSiteContent handles PUT /api/site-content.  The write is
// all-or-nothing: a missing field rejects the request and leaves the stored
// document unchanged.
func (h *Handler) UpdateSiteContent(c echo.Context) error {
	var in siteContentInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	content, err := sanitizeSiteContent(in)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	updated, err := h.SiteContent.Replace(c.Request().Context(), content)
	if err != nil {
		c.Logger().Error("failed to update site content: ", err)
		return fail(c, http.StatusInternalServerError, "Failed to update site content")
	}
	h.bustCache(c.Request().Context())
	return c.JSON(http.StatusOK, updated)
}
