package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Key    string // Shortcut shown before the label
	Label  string
	Active bool
	ZoneID string
}

// HeaderStyles groups the styles used by RenderHeader.
type HeaderStyles struct {
	Bar        lipgloss.Style
	Brand      lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	CartBadge  lipgloss.Style
	ThemeBadge lipgloss.Style
}

// HeaderModel contains content for the two-line storefront header.
type HeaderModel struct {
	Width     int
	Brand     string
	Tagline   string
	Nav       []NavItem
	CartCount int
	ThemeName string
	CartZone  string
}

// HeaderHeight is the number of lines RenderHeader produces.
const HeaderHeight = 2

// RenderHeader renders the brand line and the navigation bar.
func RenderHeader(m HeaderModel, s HeaderStyles) string {
	bar := s.Bar
	frameW, _ := bar.GetFrameSize()
	contentW := max(0, m.Width-frameW)

	left := s.Brand.Render(m.Brand)
	if m.Tagline != "" {
		left += s.ThemeBadge.Render("  " + m.Tagline)
	}
	cart := s.CartBadge.Render("Cart " + strconv.Itoa(m.CartCount))
	if m.CartZone != "" {
		cart = zone.Mark(m.CartZone, cart)
	}
	right := s.ThemeBadge.Render(m.ThemeName+"  ") + cart

	gap := contentW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := s.ThemeBadge.UnsetItalic().Render(strings.Repeat(" ", gap))
	brandLine := bar.Width(m.Width).Render(ansi.Truncate(left+spacer+right, contentW, ""))

	items := make([]string, 0, len(m.Nav))
	for _, item := range m.Nav {
		style := s.NavItem
		if item.Active {
			style = s.NavActive
		}
		label := item.Label
		if item.Key != "" {
			label = item.Key + " " + label
		}
		rendered := style.Render(label)
		if item.ZoneID != "" {
			rendered = zone.Mark(item.ZoneID, rendered)
		}
		items = append(items, rendered)
	}
	navLine := bar.Width(m.Width).Render(ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, items...), contentW, ""))

	return lipgloss.JoinVertical(lipgloss.Left, brandLine, navLine)
}
