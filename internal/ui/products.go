package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/tui/view"
)

var errNoCatalog = errors.New("no catalog available")

func (a *App) productsCmd() *cobra.Command {
	var (
		query   string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products in the catalog",
		Long: `List the mock product catalog.

With --search, only products whose name or generic name contains the
query are shown.`,
		Example: `  mediquick products
  mediquick products --search vitamin
  mediquick products --no-color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if a.repo == nil {
				return errNoCatalog
			}

			products, err := a.repo.SearchProducts(context.Background(), query)
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			printProducts(cmd.OutOrStdout(), products, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "Only show products matching the query")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// printProducts writes one line per product, truncated to width.
func printProducts(w io.Writer, products []*catalog.Product, width int) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No medicines found.")
		return
	}

	fmt.Fprintln(w, formatHeader(view.Pluralize(len(products), "product", "products")))
	for _, p := range products {
		fmt.Fprintln(w, ansi.Truncate(productLine(p), width, "…"))
	}
}

// productLine formats a product as "id  name  price  badge  stock".
func productLine(p *catalog.Product) string {
	badge := formatOTC("OTC")
	if p.PrescriptionRequired() {
		badge = formatRx("Rx ")
	}

	price := formatPrice(view.FormatPrice(p.Price))
	if p.HasDiscount() {
		price += " " + formatMuted(view.FormatPrice(p.OriginalPrice))
	}

	stock := formatMuted(p.ETA)
	if !p.InStock {
		stock = formatDanger("out of stock")
	}

	return fmt.Sprintf("  %-4s %s  %-28s %s  %s  %s",
		p.ID,
		badge,
		p.Name,
		price,
		formatMuted(view.FormatRating(p.Rating, p.ReviewCount)),
		stock,
	)
}
