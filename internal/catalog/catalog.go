// Package catalog defines the mock storefront data: products, categories,
// partner pharmacies and testimonials.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductType distinguishes over-the-counter from prescription products.
type ProductType string

const (
	TypeOTC          ProductType = "otc"
	TypePrescription ProductType = "prescription"
)

// Valid returns true if the type is a known value.
func (t ProductType) Valid() bool {
	return t == TypeOTC || t == TypePrescription
}

// Product is a single catalog item shown on a product card.
type Product struct {
	ID            string      `toml:"id"`
	Name          string      `toml:"name"`
	GenericName   string      `toml:"generic_name"`
	Category      string      `toml:"category"`
	Price         int         `toml:"price"`          // Rupees
	OriginalPrice int         `toml:"original_price"` // 0 means no strike-through price
	Type          ProductType `toml:"type"`
	InStock       bool        `toml:"in_stock"`
	ETA           string      `toml:"eta"`
	Dosage        string      `toml:"dosage"`
	PackSize      string      `toml:"pack_size"`
	Rating        float64     `toml:"rating"`
	ReviewCount   int         `toml:"review_count"`
	Discount      int         `toml:"discount"` // Percent, 0 means none
	Featured      bool        `toml:"featured"`
}

// PrescriptionRequired reports whether the product needs a prescription.
func (p *Product) PrescriptionRequired() bool {
	return p.Type == TypePrescription
}

// HasDiscount reports whether a strike-through price should be shown.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// Matches reports whether the product name or generic name contains query,
// ignoring case. An empty query matches everything.
func (p *Product) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.GenericName), query)
}

// Validate checks the product fields.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %s has empty name", ErrInvalidProduct, p.ID)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: product %s has type %q", ErrInvalidProduct, p.ID, p.Type)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %s has negative price", ErrInvalidProduct, p.ID)
	}
	return nil
}

// Category is a browsable product group on the homepage.
type Category struct {
	Name  string `toml:"name"`
	Count string `toml:"count"`
	Color string `toml:"color"`
}

// Pharmacy is a partner pharmacy.
type Pharmacy struct {
	Name         string  `toml:"name"`
	Rating       float64 `toml:"rating"`
	DeliveryTime string  `toml:"delivery_time"`
	Verified     bool    `toml:"verified"`
	Offer        string  `toml:"offer"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name    string `toml:"name"`
	Role    string `toml:"role"`
	Rating  int    `toml:"rating"`
	Comment string `toml:"comment"`
}

// Benefit is one item of the homepage benefits strip.
type Benefit struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Repository defines read access to the catalog.
type Repository interface {
	// ListProducts returns all products ordered by id.
	ListProducts(ctx context.Context) ([]*Product, error)

	// ListFeatured returns the featured products ordered by id.
	ListFeatured(ctx context.Context) ([]*Product, error)

	// GetProduct returns a product by id, or ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// SearchProducts returns products whose name or generic name contains query.
	SearchProducts(ctx context.Context, query string) ([]*Product, error)

	// ListCategories returns categories in display order.
	ListCategories(ctx context.Context) ([]Category, error)

	// ListPharmacies returns partner pharmacies in display order.
	ListPharmacies(ctx context.Context) ([]Pharmacy, error)

	// Close releases resources.
	Close() error
}
