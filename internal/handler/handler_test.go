package handler_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/saavyshop/storefront/internal/config"
	"github.com/saavyshop/storefront/internal/handler"
	"github.com/saavyshop/storefront/internal/license"
	"github.com/saavyshop/storefront/internal/middleware"
	"github.com/saavyshop/storefront/internal/repository"
	"github.com/saavyshop/storefront/internal/router"
)

const testSecret = "s3cret"

type testAPI struct {
	e       *echo.Echo
	mock    sqlmock.Sqlmock
	envFile string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	validator := license.New(filepath.Join(dir, ".license"), "TEST_PRODUCT_KEY")

	h := handler.New(
		repository.NewProductRepo(db),
		repository.NewSiteContentRepo(db),
		repository.NewSiteSettingsRepo(db, "SaavyShop Demo"),
		repository.NewCheckoutConfigRepo(db),
		validator, nil, config.CacheConfig{}, envFile,
	)

	e := echo.New()
	router.Register(e, h, testSecret, nil, config.CacheConfig{})
	return &testAPI{e: e, mock: mock, envFile: envFile}
}

func (a *testAPI) request(t *testing.T, method, path, secret, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *strings.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	} else {
		rdr = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if secret != "" {
		req.Header.Set(middleware.AdminHeader, secret)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func expectProductReadback(mock sqlmock.Sqlmock, id int64, name string, price float64, category, description string) {
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
		WithArgs(uint64(id)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "price", "category", "description", "image", "featured", "created_at", "updated_at",
		}).AddRow(id, name, price, category, description, "", false, now, now))
}

func TestCreateProductWrongSecretNeverTouchesStore(t *testing.T) {
	api := newTestAPI(t)

	body := `{"name":"Mug","price":"9.99","category":"Home","description":"A mug"}`
	for _, secret := range []string{"", "wrong", "S3CRET"} {
		rec := api.request(t, http.MethodPost, "/api/products", secret, body)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	}
	// No sqlmock expectations were registered: the cleanup check proves the
	// store was never reached.
}

func TestCreateProductWithStringPrice(t *testing.T) {
	api := newTestAPI(t)

	api.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs("Mug", 9.99, "Home", "A mug", "", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	expectProductReadback(api.mock, 3, "Mug", 9.99, "Home", "A mug")

	body := `{"name":"Mug","price":"9.99","category":"Home","description":"A mug"}`
	rec := api.request(t, http.MethodPost, "/api/products", testSecret, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decodeBody(t, rec)
	require.Equal(t, 9.99, got["price"])
	require.Equal(t, false, got["featured"])
	require.NotNil(t, got["id"])
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"price":1,"category":"C","description":"D"}`, "Missing required field: name"},
		{"blank name", `{"name":"  ","price":1,"category":"C","description":"D"}`, "Missing required field: name"},
		{"missing price", `{"name":"N","category":"C","description":"D"}`, "Missing required field: price"},
		{"missing category", `{"name":"N","price":1,"description":"D"}`, "Missing required field: category"},
		{"missing description", `{"name":"N","price":1,"category":"C"}`, "Missing required field: description"},
		{"negative price", `{"name":"N","price":-5,"category":"C","description":"D"}`, "Price must be a valid number"},
		{"garbage price", `{"name":"N","price":"cheap","category":"C","description":"D"}`, "Price must be a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			rec := api.request(t, http.MethodPost, "/api/products", testSecret, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tt.want, decodeBody(t, rec)["message"])
		})
	}
}

func TestGetProductInvalidAndMissingID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodGet, "/api/products/banana", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	api.mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
		WithArgs(uint64(42)).
		WillReturnError(sql.ErrNoRows)
	rec = api.request(t, http.MethodGet, "/api/products/42", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decodeBody(t, rec)["message"])
}

func TestUpdateSiteContentRejectsPartialDocument(t *testing.T) {
	api := newTestAPI(t)

	// Every field except heroTitle.
	doc := map[string]string{}
	for _, f := range []string{
		"heroBadge", "heroDescription", "heroPrimaryLabel", "heroPrimaryUrl",
		"heroSecondaryLabel", "heroSecondaryUrl", "heroImage",
		"heroSpotlightEyebrow", "heroSpotlightTitle", "featuredEyebrow",
		"featuredTitle", "featuredDescription", "spotlightEyebrow",
		"spotlightTitle", "spotlightDescription", "spotlightCtaLabel", "spotlightCtaUrl",
	} {
		doc[f] = "x"
	}
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	rec := api.request(t, http.MethodPut, "/api/site-content", testSecret, string(body))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required field: heroTitle", decodeBody(t, rec)["message"])
	// No store expectations: the rejected write left the document untouched.
}

func TestUpdateSiteNameRewritesEnvFile(t *testing.T) {
	t.Setenv("SITE_NAME", "")
	api := newTestAPI(t)

	api.mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE site_name = VALUES(site_name)")).
		WithArgs("Acme").
		WillReturnResult(sqlmock.NewResult(0, 1))
	api.mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings WHERE id = 1")).
		WillReturnRows(sqlmock.NewRows([]string{"site_name", "layout", "theme"}).
			AddRow("Acme", "classic", "light"))

	rec := api.request(t, http.MethodPut, "/api/admin/site-config", testSecret, `{"siteName":"Acme"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Acme", decodeBody(t, rec)["siteName"])

	b, err := os.ReadFile(api.envFile)
	require.NoError(t, err)
	require.Contains(t, string(b), "SITE_NAME=Acme\n")
}

func TestUpdateSiteNameRequiresValue(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPut, "/api/admin/site-config", testSecret, `{"siteName":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required field: siteName", decodeBody(t, rec)["message"])
}

func TestLicenseEndpointsAreGated(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodGet, "/api/license/status", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.request(t, http.MethodGet, "/api/license/status", testSecret, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	require.Equal(t, false, got["valid"]) // no key configured in tests
}

func TestVerifyAdmin(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/admin/verify", testSecret, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["ok"])

	rec = api.request(t, http.MethodPost, "/api/admin/verify", "nope", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	api := newTestAPI(t)

	api.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rec := api.request(t, http.MethodDelete, "/api/products/5", testSecret, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	api.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	rec = api.request(t, http.MethodDelete, "/api/products/5", testSecret, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsPassesFilter(t *testing.T) {
	api := newTestAPI(t)

	now := time.Now().UTC()
	api.mock.ExpectQuery(regexp.QuoteMeta("WHERE category = ?")).
		WithArgs("Bags").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "price", "category", "description", "image", "featured", "created_at", "updated_at",
		}).AddRow(3, "Canvas Tote Bag", 39.5, "Bags", "A bag", "", false, now, now))

	rec := api.request(t, http.MethodGet, "/api/products?category=Bags", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Canvas Tote Bag", list[0]["name"])
}
