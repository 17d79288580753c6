package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/tui/view"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// ScreenCategory is the tag used when a category tile is opened. It has no
// view of its own and renders as the homepage.
const ScreenCategory viewstate.ScreenID = "category"

type navItem struct {
	key    string
	label  string
	screen viewstate.ScreenID
}

var navItems = []navItem{
	{key: "1", label: "Home", screen: viewstate.ScreenHomepage},
	{key: "2", label: "Search", screen: viewstate.ScreenSearch},
	{key: "3", label: "Cart", screen: viewstate.ScreenCart},
	{key: "4", label: "Scripts", screen: viewstate.ScreenPrescriptionUpload},
	{key: "5", label: "Profile", screen: viewstate.ScreenProfile},
	{key: "6", label: "AI Checker", screen: viewstate.ScreenSymptomChecker},
	{key: "7", label: "Insights", screen: viewstate.ScreenHealthInsights},
	{key: "8", label: "Community", screen: viewstate.ScreenCommunity},
	{key: "9", label: "Green", screen: viewstate.ScreenSustainability},
	{key: "0", label: "Teleconsult", screen: viewstate.ScreenTeleconsult},
}

func navScreenForKey(key string) (viewstate.ScreenID, bool) {
	for _, item := range navItems {
		if item.key == key {
			return item.screen, true
		}
	}
	return "", false
}

// renderedScreen maps the active screen tag to the view that draws it.
// Unknown tags fall back to the homepage.
func (m Model) renderedScreen() viewstate.ScreenID {
	screen := m.ctl.Screen()
	if !screen.Known() {
		return viewstate.ScreenHomepage
	}
	return screen
}

// navigate changes screen through the controller and resets per-screen state.
func (m *Model) navigate(screen viewstate.ScreenID, payload any) tea.Cmd {
	m.ctl.Navigate(screen, payload)
	m.logger.Info("screen changed", zap.String("screen", string(screen)))

	m.cursor = 0
	m.scroll = 0
	m.err = nil
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.search.Blur()
	m.prompt.Blur()

	var cmds []tea.Cmd
	switch screen {
	case viewstate.ScreenSearch:
		if q, ok := payload.(string); ok {
			m.search.SetValue(q)
		}
		m.mode = ModeSearch
		cmds = append(cmds, m.search.Focus(), m.runSearch())
	case viewstate.ScreenProduct:
		m.product = nil
		if id, ok := payload.(string); ok && m.repo != nil {
			cmds = append(cmds, commands.LoadProduct(m.repo, id))
		}
	}
	cmds = append(cmds, m.startAnimation())
	return tea.Batch(cmds...)
}

func (m Model) runSearch() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.Search(m.repo, m.search.Value())
}

// visibleProducts returns the products the card cursor moves over.
func (m Model) visibleProducts() []*catalog.Product {
	switch m.renderedScreen() {
	case viewstate.ScreenHomepage:
		return m.featured
	case viewstate.ScreenSearch:
		return m.results
	case viewstate.ScreenProduct:
		if m.product != nil {
			return []*catalog.Product{m.product}
		}
	}
	return nil
}

func (m Model) selectedProduct() *catalog.Product {
	products := m.visibleProducts()
	if m.cursor < 0 || m.cursor >= len(products) {
		return nil
	}
	return products[m.cursor]
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	n := len(m.visibleProducts())
	if n == 0 {
		return nil
	}
	m.cursor = max(0, min(n-1, m.cursor+delta))
	return m.startAnimation()
}

// startAnimation begins spring frames unless they are already running.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return commands.Animate()
}

func (m Model) handleAnimate() (tea.Model, tea.Cmd) {
	target := float64(m.cursor)
	m.animCursor, m.velocity = m.spring.Update(m.animCursor, m.velocity, target)
	if math.Abs(m.animCursor-target) < 0.01 && math.Abs(m.velocity) < 0.01 {
		m.animCursor = target
		m.velocity = 0
		m.animating = false
		return m, nil
	}
	return m, commands.Animate()
}

// addSelected puts the selected product in the cart, or adds one more.
func (m *Model) addSelected() {
	p := m.selectedProduct()
	if p == nil {
		return
	}
	m.setQuantity(p, m.ctl.Quantity(viewstate.ProductID(p.ID))+1)
}

// removeSelected takes one of the selected product out of the cart. The
// quantity never goes below zero.
func (m *Model) removeSelected() {
	p := m.selectedProduct()
	if p == nil {
		return
	}
	m.setQuantity(p, max(0, m.ctl.Quantity(viewstate.ProductID(p.ID))-1))
}

func (m *Model) setQuantity(p *catalog.Product, qty int) {
	m.known[p.ID] = p
	if err := m.ctl.SetCartQuantity(viewstate.ProductID(p.ID), qty); err != nil {
		m.toasts.errorNotice("Could not update cart", err)
	}
}

func (m *Model) setTheme(id viewstate.ThemeID) {
	if err := m.ctl.SetTheme(id); err != nil {
		m.toasts.errorNotice("Could not switch theme", err)
		return
	}
	m.applyInputStyles()
}

func (m *Model) rememberProducts(products []*catalog.Product) {
	for _, p := range products {
		m.known[p.ID] = p
	}
}

// cartLine is one non-empty cart entry resolved against the catalog.
type cartLine struct {
	id       viewstate.ProductID
	name     string
	quantity int
	price    int
}

func (m Model) cartLines() []cartLine {
	ids := m.ctl.Lines()
	lines := make([]cartLine, 0, len(ids))
	for _, id := range ids {
		line := cartLine{id: id, name: string(id), quantity: m.ctl.Quantity(id)}
		if p, ok := m.known[string(id)]; ok {
			line.name = p.Name
			line.price = p.Price
		}
		lines = append(lines, line)
	}
	return lines
}

// cartSummary returns the cart as plain text for the clipboard.
func (m Model) cartSummary() (string, int) {
	lines := m.cartLines()
	var b strings.Builder
	total := 0
	for _, l := range lines {
		subtotal := l.price * l.quantity
		total += subtotal
		fmt.Fprintf(&b, "%s x%d %s\n", l.name, l.quantity, view.FormatPrice(subtotal))
	}
	fmt.Fprintf(&b, "Total: %s, %s", view.Pluralize(m.ctl.TotalItems(), "item", "items"), view.FormatPrice(total))
	return b.String(), len(lines)
}
