package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/tui/view"
	"github.com/mediquick/mediquick/internal/viewstate"
)

type placeholderPage struct {
	title string
	body  string
}

var placeholderPages = map[viewstate.ScreenID]placeholderPage{
	viewstate.ScreenPrescriptionUpload: {"Upload Prescription", "Prescription upload and pharmacist verification coming soon..."},
	viewstate.ScreenProfile:            {"My Profile", "Orders, addresses and saved prescriptions coming soon..."},
	viewstate.ScreenSymptomChecker:     {"AI Symptom Checker", "AI-powered symptom analysis and doctor connect feature coming soon..."},
	viewstate.ScreenHealthInsights:     {"Health Insights", "Comprehensive health tracking dashboard coming soon..."},
	viewstate.ScreenCommunity:          {"Health Community", "Patient groups and expert Q&A coming soon..."},
	viewstate.ScreenSustainability:     {"Green Pharma Initiative", "Sustainable medicine packaging and recycling program details coming soon..."},
	viewstate.ScreenTeleconsult:        {"Tele Consult", "Video consultations with licensed doctors coming soon..."},
}

// renderScreen renders the body for the active screen.
func (m Model) renderScreen(width int) string {
	screen := m.renderedScreen()
	switch screen {
	case viewstate.ScreenHomepage:
		return m.renderHomepage(width)
	case viewstate.ScreenSearch:
		return m.renderSearch(width)
	case viewstate.ScreenCart:
		return m.renderCart()
	case viewstate.ScreenProduct:
		return m.renderProduct(width)
	case viewstate.ScreenEmergency:
		return m.renderEmergency()
	}
	if page, ok := placeholderPages[screen]; ok {
		return view.RenderPage(page.title, []string{page.body, "", "Press esc to go back."}, m.pageStyles())
	}
	return m.renderHomepage(width)
}

func (m Model) pageStyles() view.PageStyles {
	s := m.styles()
	return view.PageStyles{Title: s.PlaceholderTitleStyle, Body: s.PlaceholderBodyStyle}
}

func (m Model) renderHomepage(width int) string {
	s := m.styles()

	heroW := max(10, width)
	hero := s.HeroStyle.Width(heroW).Render(lipgloss.JoinVertical(lipgloss.Left,
		s.HeroTitleStyle.Render("Your medicines, delivered in 30 minutes"),
		s.HeroSubtitleStyle.Render("India's fastest medicine delivery service. Upload prescription, get verified medicines delivered to your doorstep instantly."),
		"",
		s.HeroSubtitleStyle.Render("30 mins Avg Delivery · 500+ Verified Pharmacies · 15 mins Emergency Response"),
	))

	sections := []string{hero, ""}

	if len(m.benefits) > 0 {
		parts := make([]string, 0, len(m.benefits))
		for _, b := range m.benefits {
			parts = append(parts, s.BenefitStyle.Render(b.Title))
		}
		sections = append(sections, strings.Join(parts, s.MutedStyle.Render("  ·  ")), "")
	}

	sections = append(sections, s.SectionTitleStyle.Render("Featured Products"))
	switch {
	case m.loading:
		sections = append(sections, s.MutedStyle.Render("Loading catalog..."))
	case len(m.featured) == 0:
		sections = append(sections, s.MutedStyle.Render("No products available."))
	default:
		sections = append(sections, m.renderCardGrid(m.featured, width))
	}

	if len(m.categories) > 0 {
		sections = append(sections, "", s.SectionTitleStyle.Render("Shop by Category"), m.renderCategories(width))
	}

	if len(m.pharmacies) > 0 {
		sections = append(sections, "", s.SectionTitleStyle.Render("Partner Pharmacies"))
		for _, p := range m.pharmacies {
			line := s.PharmacyStyle.Render(fmt.Sprintf("%s  ★ %.1f  %s", p.Name, p.Rating, p.DeliveryTime))
			if p.Verified {
				line += s.VerifiedStyle.Render("  ✓ Verified")
			}
			if p.Offer != "" {
				line += s.MutedStyle.Render("  " + p.Offer)
			}
			sections = append(sections, line)
		}
	}

	if len(m.testimonials) > 0 {
		sections = append(sections, "", s.SectionTitleStyle.Render("What our customers say"))
		for _, t := range m.testimonials {
			sections = append(sections,
				s.RatingStyle.Render(view.Stars(t.Rating))+s.BodyStyle.Render(" "+t.Name+", "+t.Role),
				s.TestimonialStyle.Width(max(10, width)).Render("\""+t.Comment+"\""),
			)
		}
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderCategories(width int) string {
	s := m.styles()
	tiles := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		style := s.CategoryStyle
		if c.Color != "" {
			style = style.BorderForeground(lipgloss.Color(c.Color))
		}
		tile := style.Render(s.CardTitleStyle.Render(c.Name) + "\n" + s.CardMetaStyle.Render(c.Count))
		tiles = append(tiles, zone.Mark(zoneCategory(i), tile))
	}
	return wrapBlocks(tiles, width)
}

// renderCardGrid renders product cards in rows that fit width, with a
// spring-animated indicator under the selected card.
func (m Model) renderCardGrid(products []*catalog.Product, width int) string {
	s := m.styles()
	perRow := max(1, (width+1)/(cardWidth+1))

	rows := make([]string, 0, len(products)/perRow+1)
	for start := 0; start < len(products); start += perRow {
		end := min(len(products), start+perRow)
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			card := view.RenderProductCard(m.cardModel(products[i], i), m.cardStyles())
			cards = append(cards, zone.Mark(zoneCard(i), card))
		}
		rows = append(rows, joinWithGap(cards, s.BodyStyle.Render(" ")))

		if m.cursor >= start && m.cursor < end {
			offset := int(math.Round((m.animCursor - float64(start)) * float64(cardWidth+1)))
			offset = max(0, min(offset, (end-start-1)*(cardWidth+1)))
			rows = append(rows, strings.Repeat(" ", offset)+s.SectionTitleStyle.Render(strings.Repeat("▀", cardWidth)))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) cardModel(p *catalog.Product, i int) view.ProductCardModel {
	return view.ProductCardModel{
		Name:          p.Name,
		GenericName:   p.GenericName,
		Dosage:        p.Dosage,
		PackSize:      p.PackSize,
		ETA:           p.ETA,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Prescription:  p.PrescriptionRequired(),
		InStock:       p.InStock,
		Rating:        p.Rating,
		Reviews:       p.ReviewCount,
		Quantity:      m.ctl.Quantity(viewstate.ProductID(p.ID)),
		Selected:      i == m.cursor,
		ActionZone:    zoneCardAction(i),
	}
}

func (m Model) cardStyles() view.ProductCardStyles {
	s := m.styles()
	return view.ProductCardStyles{
		Card:          s.CardStyle,
		Selected:      s.CardSelectedStyle,
		Title:         s.CardTitleStyle,
		Meta:          s.CardMetaStyle,
		Price:         s.PriceStyle,
		OriginalPrice: s.OriginalPriceStyle,
		Discount:      s.DiscountStyle,
		RxBadge:       s.RxBadgeStyle,
		OTCBadge:      s.OTCBadgeStyle,
		InStock:       s.InStockStyle,
		OutOfStock:    s.OutOfStockStyle,
		Rating:        s.RatingStyle,
		AddButton:     s.AddButtonStyle,
		Quantity:      s.QuantityStyle,
	}
}

func (m Model) renderSearch(width int) string {
	s := m.styles()
	lines := []string{s.SectionTitleStyle.Render("Search Results"), m.search.View(), ""}

	query := strings.TrimSpace(m.search.Value())
	switch {
	case len(m.results) == 0 && query != "":
		lines = append(lines, s.MutedStyle.Render(fmt.Sprintf("No medicines found for %q.", query)))
	case len(m.results) == 0:
		lines = append(lines, s.MutedStyle.Render("Start typing to search the catalog."))
	default:
		label := view.Pluralize(len(m.results), "result", "results")
		if query != "" {
			label += fmt.Sprintf(" for %q", query)
		}
		lines = append(lines, s.MutedStyle.Render(label), m.renderCardGrid(m.results, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCart() string {
	s := m.styles()
	total := m.ctl.TotalItems()
	if total == 0 {
		return view.RenderPage("Shopping Cart", []string{"Your cart is empty", "", "Press 1 to browse featured products."}, m.pageStyles())
	}

	body := []string{view.Pluralize(total, "item", "items") + " in cart", ""}
	sum := 0
	for _, l := range m.cartLines() {
		subtotal := l.price * l.quantity
		sum += subtotal
		body = append(body, fmt.Sprintf("%-28s x%-3d %s", l.name, l.quantity, view.FormatPrice(subtotal)))
	}
	body = append(body, "", "Total: "+view.FormatPrice(sum))
	return view.RenderPage("Shopping Cart", body, view.PageStyles{Title: s.PlaceholderTitleStyle, Body: s.BodyStyle})
}

func (m Model) renderProduct(width int) string {
	s := m.styles()
	p := m.product
	if p == nil {
		if m.err != nil {
			return view.RenderPage("Product", []string{"Product not available.", "", "Press esc to go back."}, m.pageStyles())
		}
		return s.MutedStyle.Render("Loading product...")
	}

	details := []string{
		s.SectionTitleStyle.Render(p.Name),
		s.MutedStyle.Render(p.GenericName),
		"",
		s.BodyStyle.Render("Category:  " + p.Category),
		s.BodyStyle.Render("Dosage:    " + p.Dosage),
		s.BodyStyle.Render("Pack size: " + p.PackSize),
		s.BodyStyle.Render("Delivery:  " + p.ETA),
	}
	if p.PrescriptionRequired() {
		details = append(details, "", s.RxBadgeStyle.Render("Prescription required"),
			s.MutedStyle.Render("Upload it from Scripts (4) before checkout."))
	}

	card := view.RenderProductCard(m.cardModel(p, 0), m.cardStyles())
	card = zone.Mark(zoneCard(0), card)
	if width < 2*cardWidth+4 {
		return lipgloss.JoinVertical(lipgloss.Left, card, strings.Join(details, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", strings.Join(details, "\n"))
}

func (m Model) renderEmergency() string {
	s := m.styles()
	lines := []string{
		s.EmergencyStyle.Render("Emergency Help"),
		"",
		s.BodyStyle.Render("Emergency Call     108 ambulance, 24x7"),
		s.BodyStyle.Render("Tele Consult       Talk to a doctor in under 5 minutes"),
		s.BodyStyle.Render("Find Pharmacy      Nearest open pharmacy"),
		"",
		s.MutedStyle.Render("Emergency orders are delivered within 15 minutes."),
	}
	return strings.Join(lines, "\n")
}

func joinWithGap(blocks []string, gap string) string {
	parts := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// wrapBlocks lays blocks out left to right, starting a new row when width
// would be exceeded.
func wrapBlocks(blocks []string, width int) string {
	var rows []string
	var row []string
	rowW := 0
	for _, b := range blocks {
		w := lipgloss.Width(b)
		if len(row) > 0 && rowW+1+w > width {
			rows = append(rows, joinWithGap(row, " "))
			row, rowW = nil, 0
		}
		if len(row) > 0 {
			rowW++
		}
		row = append(row, b)
		rowW += w
	}
	if len(row) > 0 {
		rows = append(rows, joinWithGap(row, " "))
	}
	return strings.Join(rows, "\n")
}
