// Package db provides the SQLite-backed catalog store.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mediquick/mediquick/internal/catalog"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLite implements catalog.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite catalog store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// NewSeeded opens an in-memory store filled with the embedded mock catalog.
func NewSeeded(ctx context.Context) (*SQLite, error) {
	seed, err := catalog.LoadSeed()
	if err != nil {
		return nil, err
	}
	s, err := New(MemoryPath)
	if err != nil {
		return nil, err
	}
	if err := s.Seed(ctx, seed); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	return s, nil
}

// Seed inserts the seed data in a single transaction.
func (s *SQLite) Seed(ctx context.Context, seed *catalog.Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range seed.Products {
		if err := insertProduct(ctx, tx, p); err != nil {
			return err
		}
	}
	for i, c := range seed.Categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (position, name, item_count, color) VALUES (?, ?, ?, ?)`,
			i, c.Name, c.Count, c.Color,
		)
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}
	for i, ph := range seed.Pharmacies {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pharmacies (position, name, rating, delivery_time, verified, offer) VALUES (?, ?, ?, ?, ?, ?)`,
			i, ph.Name, ph.Rating, ph.DeliveryTime, ph.Verified, ph.Offer,
		)
		if err != nil {
			return fmt.Errorf("inserting pharmacy %q: %w", ph.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertProduct(ctx context.Context, tx *sql.Tx, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO products (
			id, name, generic_name, category, price, original_price, type, in_stock,
			eta, dosage, pack_size, rating, review_count, discount, featured
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.GenericName,
		p.Category,
		p.Price,
		p.OriginalPrice,
		p.Type,
		p.InStock,
		p.ETA,
		p.Dosage,
		p.PackSize,
		p.Rating,
		p.ReviewCount,
		p.Discount,
		p.Featured,
	)
	if err != nil {
		return fmt.Errorf("inserting product %s: %w", p.ID, err)
	}
	return nil
}

const productColumns = `
	id, name, generic_name, category, price, original_price, type, in_stock,
	eta, dosage, pack_size, rating, review_count, discount, featured
`

// ListProducts returns all products ordered by id.
func (s *SQLite) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	return s.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

// ListFeatured returns the featured products ordered by id.
func (s *SQLite) ListFeatured(ctx context.Context) ([]*catalog.Product, error) {
	return s.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE featured = 1 ORDER BY id`)
}

// SearchProducts returns products matching query, see catalog.Product.Matches.
// Matching runs in Go because SQLite's lower() only folds ASCII.
func (s *SQLite) SearchProducts(ctx context.Context, query string) ([]*catalog.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(products, func(p *catalog.Product) bool {
		return !p.Matches(query)
	}), nil
}

// GetProduct retrieves a product by id.
func (s *SQLite) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}
	return p, nil
}

// ListCategories returns categories in display order.
func (s *SQLite) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, item_count, color FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.Name, &c.Count, &c.Color); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// ListPharmacies returns partner pharmacies in display order.
func (s *SQLite) ListPharmacies(ctx context.Context) ([]catalog.Pharmacy, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, rating, delivery_time, verified, offer FROM pharmacies ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pharmacies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pharmacies []catalog.Pharmacy
	for rows.Next() {
		var p catalog.Pharmacy
		if err := rows.Scan(&p.Name, &p.Rating, &p.DeliveryTime, &p.Verified, &p.Offer); err != nil {
			return nil, fmt.Errorf("scanning pharmacy: %w", err)
		}
		pharmacies = append(pharmacies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pharmacies: %w", err)
	}
	return pharmacies, nil
}

func (s *SQLite) queryProducts(ctx context.Context, query string, args ...any) ([]*catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []*catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*catalog.Product, error) {
	var (
		p           catalog.Product
		productType string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.GenericName,
		&p.Category,
		&p.Price,
		&p.OriginalPrice,
		&productType,
		&p.InStock,
		&p.ETA,
		&p.Dosage,
		&p.PackSize,
		&p.Rating,
		&p.ReviewCount,
		&p.Discount,
		&p.Featured,
	)
	if err != nil {
		return nil, err
	}
	p.Type = catalog.ProductType(productType)
	return &p, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
