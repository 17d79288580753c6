package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mediquick/mediquick/internal/tui/view"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var out string
	switch m.stage {
	case StageSplash:
		out = m.renderSplash()
	case StageOnboarding:
		out = m.renderOnboarding()
	default:
		out = view.Render(m.viewState())
	}
	return zone.Scan(out)
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles().ModalBgColor,
		EmptyPlaceholder: "Loading...",
	}
}

// innerWidth is the content width inside the app padding.
func (m Model) innerWidth() int {
	frameW, _ := m.styles().AppStyle.GetFrameSize()
	return max(0, m.width-frameW)
}

func (m Model) bodyHeight() int {
	return max(0, m.height-view.HeaderHeight-view.FooterHeight(m.footerModel()))
}

func (m Model) renderAppContent() string {
	s := m.styles()
	innerW := m.innerWidth()
	bodyH := m.bodyHeight()
	if innerW <= 0 || bodyH <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(m.headerModel(), m.headerStyles())

	lines := strings.Split(m.renderScreen(innerW), "\n")
	scroll := max(0, min(m.scroll, len(lines)-bodyH))
	lines = lines[scroll:]
	if len(lines) > bodyH {
		lines = lines[:bodyH]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerW, "")
	}
	body := m.placeBox(innerW, bodyH, lipgloss.Top, strings.Join(lines, "\n"))
	footer := view.RenderFooter(m.footerModel())

	content := lipgloss.JoinVertical(lipgloss.Left, body, footer)
	app := s.AppStyle.Render(content)
	return view.FillLines(lipgloss.JoinVertical(lipgloss.Left, header, app), m.width, m.height, s.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles().colorBg)
}

func (m Model) headerModel() view.HeaderModel {
	active := m.renderedScreen()
	nav := make([]view.NavItem, 0, len(navItems)+1)
	for _, item := range navItems {
		nav = append(nav, view.NavItem{
			Key:    item.key,
			Label:  item.label,
			Active: item.screen == active,
			ZoneID: zoneNav(item.key),
		})
	}
	nav = append(nav, view.NavItem{
		Key:    "!",
		Label:  "Emergency",
		Active: active == viewstate.ScreenEmergency,
		ZoneID: zoneEmergency,
	})

	return view.HeaderModel{
		Width:     m.width,
		Brand:     "MediQuick",
		Tagline:   "Ultra-fast medicine delivery",
		Nav:       nav,
		CartCount: m.ctl.TotalItems(),
		ThemeName: m.root.theme.Title,
		CartZone:  zoneCart,
	}
}

func (m Model) headerStyles() view.HeaderStyles {
	s := m.styles()
	return view.HeaderStyles{
		Bar:        s.HeaderStyle,
		Brand:      s.BrandStyle,
		NavItem:    s.NavItemStyle,
		NavActive:  s.NavActiveStyle,
		CartBadge:  s.CartBadgeStyle,
		ThemeBadge: s.ThemeBadgeStyle,
	}
}

func (m Model) footerModel() view.FooterModel {
	s := m.styles()
	innerW := m.innerWidth()

	toasts := make([]view.ToastModel, 0, maxToasts)
	for _, n := range m.toasts.Visible() {
		style := s.ToastInfoStyle
		switch n.Kind {
		case viewstate.NoticeSuccess:
			style = s.ToastSuccessStyle
		case viewstate.NoticeError:
			style = s.ToastErrorStyle
		}
		toasts = append(toasts, view.ToastModel{Title: n.Title, Description: n.Description, Style: style})
	}

	showPrompt := m.mode == ModePrompt
	var promptLines []string
	if showPrompt {
		frameW, _ := s.PromptStyle.GetFrameSize()
		contentW := max(0, innerW-frameW)
		promptLines = view.PromptLines(view.PromptState{
			Value:      m.prompt.Value(),
			Cursor:     "_",
			ModePrompt: true,
		}, contentW, promptCommands)
		promptLines = view.ClampPromptLines(promptLines, 6, contentW)
	}

	return view.FooterModel{
		InnerW:           innerW,
		Toasts:           toasts,
		PromptLines:      promptLines,
		ShowPrompt:       showPrompt,
		PromptFocus:      showPrompt,
		StatusText:       m.statusText(),
		HelpText:         m.helpText(),
		StatusStyle:      s.StatusStyle,
		HelpStyle:        s.HelpStyle,
		PromptStyle:      s.PromptStyle,
		PromptFocusStyle: s.PromptFocusedStyle,
		Bg:               s.colorBg,
	}
}

func (m Model) statusText() string {
	if m.loading {
		return "Loading catalog..."
	}
	return m.statusMsg
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeSearch:
		return "type to search · enter browse results · esc done"
	case ModePrompt:
		return "tab complete · enter run · esc cancel"
	case ModeModal:
		return "j/k move · enter apply · 1-3 pick · esc close"
	}
	help := "h/l select · a add · -/+ qty · enter details · s search · c cart · t theme · / command · q quit"
	if m.renderedScreen() == viewstate.ScreenCart {
		help = "y copy summary · " + help
	}
	return help
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalThemeSelector:
		return m.renderThemeSelectorModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	s := m.styles()
	return view.ModalStyles{
		Frame:        s.ModalStyle,
		Header:       s.ModalHeaderStyle,
		Title:        s.ModalTitleStyle,
		Body:         s.ModalBodyStyle,
		Footer:       s.ModalFooterStyle,
		Button:       s.ModalButtonStyle,
		ActiveButton: s.ModalButtonActiveStyle,
	}
}

func (m Model) renderThemeSelectorModal() string {
	s := m.styles()
	options := make([]view.ThemeOption, 0, len(m.themes))
	for i, t := range m.themes {
		options = append(options, view.ThemeOption{
			Title:       t.Title,
			Description: t.Description,
			Swatches:    []lipgloss.Color{lipgloss.Color(t.Bg), lipgloss.Color(t.Primary), lipgloss.Color(t.Accent)},
			Active:      t.Name == string(m.ctl.Theme()),
			Selected:    i == m.themeCursor,
			ZoneID:      zoneThemeOption(i),
		})
	}
	body := view.RenderThemeSelectorBody(options, view.ThemeSelectorStyles{
		Body:     s.ModalBodyStyle,
		Muted:    s.ModalMutedStyle,
		Selected: s.ModalSelectedStyle,
	})
	return view.RenderModal(view.Modal{
		Title:   "Choose Theme",
		Body:    body,
		Buttons: []string{"[Enter] Apply", "[Esc] Close"},
	}, m.modalStyles())
}
