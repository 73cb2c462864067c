// This file defines the CheckoutConfig singleton: the destination links the
// checkout page offers.  No field is required; an empty value simply
// disables that checkout path in presentation, so updates merge supplied
// fields over the current document instead of replacing it wholesale.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// CheckoutConfig holds the checkout destination links and helper copy.
type CheckoutConfig struct {
	SecureCheckoutLabel string `json:"secureCheckoutLabel"`
	SecureCheckoutUrl   string `json:"secureCheckoutUrl"`
	GoogleFormUrl       string `json:"googleFormUrl"`
	MicrosoftFormUrl    string `json:"microsoftFormUrl"`
	Instructions        string `json:"instructions"`
}

// CheckoutConfigPatch carries a partial update.  Nil fields are left at
// their current value.
type CheckoutConfigPatch struct {
	SecureCheckoutLabel *string `json:"secureCheckoutLabel"`
	SecureCheckoutUrl   *string `json:"secureCheckoutUrl"`
	GoogleFormUrl       *string `json:"googleFormUrl"`
	MicrosoftFormUrl    *string `json:"microsoftFormUrl"`
	Instructions        *string `json:"instructions"`
}

// DefaultCheckoutConfig returns the configuration the demo ships with.
func DefaultCheckoutConfig() *CheckoutConfig {
	return &CheckoutConfig{
		SecureCheckoutLabel: "Secure checkout",
		Instructions:        "Choose a secure payment option or use one of the order form templates to collect requests from budget-conscious customers.",
	}
}

// CheckoutConfigRepo persists the checkout singleton (row id = 1).
type CheckoutConfigRepo struct {
	db *sql.DB
}

func NewCheckoutConfigRepo(db *sql.DB) *CheckoutConfigRepo {
	return &CheckoutConfigRepo{db: db}
}

// Get returns the current document, or the shipped defaults when the row is
// absent.
func (r *CheckoutConfigRepo) Get(ctx context.Context) (*CheckoutConfig, error) {
	const q = `SELECT secure_checkout_label, secure_checkout_url, google_form_url,
	           microsoft_form_url, instructions FROM checkout_config WHERE id = 1`
	var c CheckoutConfig
	err := r.db.QueryRowContext(ctx, q).Scan(
		&c.SecureCheckoutLabel, &c.SecureCheckoutUrl, &c.GoogleFormUrl,
		&c.MicrosoftFormUrl, &c.Instructions)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultCheckoutConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update merges the patch over the current document and returns the
// canonical result.  Only columns present in the patch appear in the SET
// clause, so a concurrent update to a different field is not clobbered.
func (r *CheckoutConfigRepo) Update(ctx context.Context, p CheckoutConfigPatch) (*CheckoutConfig, error) {
	var sets []string
	var params []any
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			params = append(params, strings.TrimSpace(*v))
		}
	}
	add("secure_checkout_label", p.SecureCheckoutLabel)
	add("secure_checkout_url", p.SecureCheckoutUrl)
	add("google_form_url", p.GoogleFormUrl)
	add("microsoft_form_url", p.MicrosoftFormUrl)
	add("instructions", p.Instructions)

	if len(sets) > 0 {
		q := "UPDATE checkout_config SET " + strings.Join(sets, ", ") + " WHERE id = 1"
		if _, err := r.db.ExecContext(ctx, q, params...); err != nil {
			return nil, err
		}
	}
	return r.Get(ctx)
}
