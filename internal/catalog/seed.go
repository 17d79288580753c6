package catalog

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/catalog.toml
var embeddedCatalog []byte

// Seed is the full mock data set the storefront starts with.
type Seed struct {
	Products     []*Product    `toml:"products"`
	Categories   []Category    `toml:"categories"`
	Pharmacies   []Pharmacy    `toml:"pharmacies"`
	Testimonials []Testimonial `toml:"testimonials"`
	Benefits     []Benefit     `toml:"benefits"`
}

// LoadSeed parses the embedded mock catalog.
func LoadSeed() (*Seed, error) {
	return ParseSeed(embeddedCatalog)
}

// ParseSeed parses and validates a TOML catalog.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = true
	}

	return &s, nil
}
