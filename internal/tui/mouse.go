package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mediquick/mediquick/internal/viewstate"
)

// Zone ids.
const (
	zoneCart      = "header_cart"
	zoneEmergency = "emergency"
)

func zoneCard(i int) string        { return fmt.Sprintf("card_%d", i) }
func zoneCardAction(i int) string  { return fmt.Sprintf("card_action_%d", i) }
func zoneNav(key string) string    { return "nav_" + key }
func zoneCategory(i int) string    { return fmt.Sprintf("category_%d", i) }
func zoneThemeOption(i int) string { return fmt.Sprintf("theme_%d", i) }

// handleMouseMsg maps clicks on marked zones to the same actions as keys.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.stage != StageStore {
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.mode == ModeModal && m.modalType == ModalThemeSelector {
		for i, t := range m.themes {
			if zone.Get(zoneThemeOption(i)).InBounds(msg) {
				m.themeCursor = i
				m.setTheme(viewstate.ThemeID(t.Name))
				m.closeModal()
				return m, nil
			}
		}
		return m, nil
	}

	for _, item := range navItems {
		if zone.Get(zoneNav(item.key)).InBounds(msg) {
			return m, m.navigate(item.screen, nil)
		}
	}
	if zone.Get(zoneCart).InBounds(msg) {
		return m, m.navigate(viewstate.ScreenCart, nil)
	}
	if zone.Get(zoneEmergency).InBounds(msg) {
		return m, m.navigate(viewstate.ScreenEmergency, nil)
	}

	for i := range m.visibleProducts() {
		if zone.Get(zoneCardAction(i)).InBounds(msg) {
			m.cursor = i
			m.addSelected()
			return m, m.startAnimation()
		}
		if zone.Get(zoneCard(i)).InBounds(msg) {
			m.cursor = i
			return m, m.startAnimation()
		}
	}

	if m.renderedScreen() == viewstate.ScreenHomepage {
		for i, c := range m.categories {
			if zone.Get(zoneCategory(i)).InBounds(msg) {
				return m, m.navigate(ScreenCategory, c.Name)
			}
		}
	}
	return m, nil
}
