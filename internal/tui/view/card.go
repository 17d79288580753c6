package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// ProductCardModel holds the values shown on one product card.
type ProductCardModel struct {
	Name          string
	GenericName   string
	Dosage        string
	PackSize      string
	ETA           string
	Price         int
	OriginalPrice int
	Discount      int
	Prescription  bool
	InStock       bool
	Rating        float64
	Reviews       int
	Quantity      int
	Selected      bool
	ActionZone    string // Mouse zone for the add/quantity control, optional
}

// ProductCardStyles groups the styles used by RenderProductCard.
type ProductCardStyles struct {
	Card          lipgloss.Style
	Selected      lipgloss.Style
	Title         lipgloss.Style
	Meta          lipgloss.Style
	Price         lipgloss.Style
	OriginalPrice lipgloss.Style
	Discount      lipgloss.Style
	RxBadge       lipgloss.Style
	OTCBadge      lipgloss.Style
	InStock       lipgloss.Style
	OutOfStock    lipgloss.Style
	Rating        lipgloss.Style
	AddButton     lipgloss.Style
	Quantity      lipgloss.Style
}

// RenderProductCard renders a bordered product card.
func RenderProductCard(m ProductCardModel, s ProductCardStyles) string {
	frame := s.Card
	if m.Selected {
		frame = s.Selected
	}
	inner := frame.GetWidth() - frame.GetHorizontalPadding()
	if inner <= 0 {
		inner = 20
	}

	badge := s.OTCBadge.Render("OTC")
	if m.Prescription {
		badge = s.RxBadge.Render("Rx")
	}
	if m.Discount > 0 {
		badge += " " + s.Discount.Render("-"+strconv.Itoa(m.Discount)+"%")
	}

	lines := []string{
		badge,
		s.Title.Render(ansi.Truncate(m.Name, inner, "…")),
		s.Meta.Render(ansi.Truncate(m.GenericName, inner, "…")),
	}
	if details := joinNonEmpty(" · ", m.Dosage, m.PackSize); details != "" {
		lines = append(lines, s.Meta.Render(ansi.Truncate(details, inner, "…")))
	}
	if m.Rating > 0 {
		lines = append(lines, s.Rating.Render(FormatRating(m.Rating, m.Reviews)))
	}

	price := s.Price.Render(FormatPrice(m.Price))
	if m.OriginalPrice > m.Price {
		price += " " + s.OriginalPrice.Render(FormatPrice(m.OriginalPrice))
	}
	lines = append(lines, price)

	if m.InStock {
		lines = append(lines, s.InStock.Render(ansi.Truncate(joinNonEmpty(" · ", "In stock", m.ETA), inner, "…")))
	} else {
		lines = append(lines, s.OutOfStock.Render("Out of stock"))
	}

	action := ProductAction(m.Quantity, s)
	if m.ActionZone != "" {
		action = zone.Mark(m.ActionZone, action)
	}
	lines = append(lines, "", action)

	return frame.Render(strings.Join(lines, "\n"))
}

// ProductAction renders "Add" for products not in the cart, otherwise the
// quantity control.
func ProductAction(quantity int, s ProductCardStyles) string {
	if quantity <= 0 {
		return s.AddButton.Render("+ Add")
	}
	return s.Meta.Render("[-]") + s.Quantity.Render(strconv.Itoa(quantity)) + s.Meta.Render("[+]")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
