// This file defines the Product model and repository methods for CRUD and
// filtered listing.  A Product is a full catalog row; unlike the singleton
// documents it is id-addressed and hard-deleted with no tombstone.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Product represents a catalog row persisted in the database.  ID is the
// auto-incremented primary key and is immutable after creation.  Timestamps
// are server-assigned; UpdatedAt is refreshed on every full-field update.
type Product struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductFilter restricts List results.  Nil/empty fields impose no
// constraint; price bounds are inclusive and ANDed with the category match.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepo encapsulates all database queries related to products.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the provided DB handle so the
// database can be injected in tests and at startup.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = "id, name, price, category, description, image, featured, created_at, updated_at"

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description,
		&p.Image, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products matching the filter, most recently created first.
// Rows created in the same second tie-break on descending id so ordering
// stays stable.
func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]*Product, error) {
	var clauses []string
	var params []any
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		params = append(params, f.Category)
	}
	if f.MinPrice != nil {
		clauses = append(clauses, "price >= ?")
		params = append(params, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, "price <= ?")
		params = append(params, *f.MaxPrice)
	}
	q := "SELECT " + productColumns + " FROM products"
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a product by its ID.  It returns ErrProductNotFound when
// no row matches.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (*Product, error) {
	const q = "SELECT " + productColumns + " FROM products WHERE id = ?"
	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new product and returns the canonical stored row.  The
// caller supplies sanitized field values; id and both timestamps are
// assigned here.  After the insert a readback populates the returned row so
// callers always see exactly what the database holds.
func (r *ProductRepo) Create(ctx context.Context, p *Product) (*Product, error) {
	now := time.Now().UTC()
	const q = `INSERT INTO products (name, price, category, description, image, featured, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Price, p.Category, p.Description, p.Image, p.Featured, now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces every editable field of the product and refreshes
// updated_at.  The id is immutable.  ErrProductNotFound is returned when the
// row does not exist; existence is checked up front because MySQL reports
// zero affected rows for a no-op update as well.
func (r *ProductRepo) Update(ctx context.Context, id uint64, p *Product) (*Product, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	const q = `UPDATE products
	           SET name = ?, price = ?, category = ?, description = ?, image = ?, featured = ?, updated_at = ?
	           WHERE id = ?`
	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, q, p.Name, p.Price, p.Category, p.Description, p.Image, p.Featured, now, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete hard-deletes a product.  It reports whether a row was removed; a
// second delete of the same id returns false, not an error.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
