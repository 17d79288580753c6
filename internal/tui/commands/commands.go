// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediquick/mediquick/internal/catalog"
)

// Splash timing.
const (
	SplashInterval = 30 * time.Millisecond
	SplashStep     = 2
	SplashHold     = 500 * time.Millisecond
)

// AnimationInterval is the frame interval for the card cursor spring.
const AnimationInterval = time.Second / 60

// CatalogLoadedMsg is sent when the storefront data is loaded.
type CatalogLoadedMsg struct {
	Featured     []*catalog.Product
	Categories   []catalog.Category
	Pharmacies   []catalog.Pharmacy
	Testimonials []catalog.Testimonial
	Benefits     []catalog.Benefit
}

// SearchResultsMsg is sent when a search completes.
type SearchResultsMsg struct {
	Query   string
	Results []*catalog.Product
}

// ProductLoadedMsg is sent when a single product is loaded for the product screen.
type ProductLoadedMsg struct {
	Product *catalog.Product
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// CopiedMsg is sent after the cart summary was copied to the clipboard.
type CopiedMsg struct {
	Lines int
}

// DismissToastMsg asks the model to remove the toast with ID.
type DismissToastMsg struct {
	ID int
}

// SplashTickMsg advances the splash progress for generation Gen.
type SplashTickMsg struct {
	Gen int
}

// SplashDoneMsg ends the splash for generation Gen.
type SplashDoneMsg struct {
	Gen int
}

// AnimateMsg is a single animation frame.
type AnimateMsg time.Time

// LoadCatalog loads the homepage data from the repository and the embedded seed.
func LoadCatalog(repo catalog.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		featured, err := repo.ListFeatured(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading featured products: %w", err)}
		}
		categories, err := repo.ListCategories(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading categories: %w", err)}
		}
		pharmacies, err := repo.ListPharmacies(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading pharmacies: %w", err)}
		}
		seed, err := catalog.LoadSeed()
		if err != nil {
			return ErrMsg{Err: err}
		}

		return CatalogLoadedMsg{
			Featured:     featured,
			Categories:   categories,
			Pharmacies:   pharmacies,
			Testimonials: seed.Testimonials,
			Benefits:     seed.Benefits,
		}
	}
}

// Search runs a product search.
func Search(repo catalog.Repository, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := repo.SearchProducts(context.Background(), query)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("searching products: %w", err)}
		}
		return SearchResultsMsg{Query: query, Results: results}
	}
}

// LoadProduct loads one product by id.
func LoadProduct(repo catalog.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		p, err := repo.GetProduct(context.Background(), id)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ProductLoadedMsg{Product: p}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string, lines int) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Lines: lines}
	}
}

// DismissToastAfter schedules removal of toast id.
func DismissToastAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissToastMsg{ID: id}
	})
}

// SplashTick schedules the next splash progress step.
func SplashTick(gen int) tea.Cmd {
	return tea.Tick(SplashInterval, func(time.Time) tea.Msg {
		return SplashTickMsg{Gen: gen}
	})
}

// SplashDone schedules the end of the splash after the hold delay.
func SplashDone(gen int) tea.Cmd {
	return tea.Tick(SplashHold, func(time.Time) tea.Msg {
		return SplashDoneMsg{Gen: gen}
	})
}

// Animate schedules the next animation frame.
func Animate() tea.Cmd {
	return tea.Tick(AnimationInterval, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}
