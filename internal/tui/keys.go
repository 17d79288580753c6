package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/tui/input"
	"github.com/mediquick/mediquick/internal/viewstate"
)

var promptCommands = []input.PromptCommand{
	{Name: "/home", Description: "Back to the homepage"},
	{Name: "/search", Description: "Search medicines by name"},
	{Name: "/cart", Description: "Open the cart"},
	{Name: "/product", Description: "Open a product by id"},
	{Name: "/add", Description: "Set a cart quantity: /add <id> [qty]"},
	{Name: "/theme", Description: "Switch theme: default, gradient, dark"},
	{Name: "/go", Description: "Open any screen by tag"},
	{Name: "/emergency", Description: "Emergency help"},
	{Name: "/copy", Description: "Copy the cart summary"},
	{Name: "/quit", Description: "Exit MediQuick"},
}

var errUnknownCommand = errors.New("unknown command")

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key",
		zap.String("key", msg.String()),
		zap.Int("stage", int(m.stage)),
		zap.Int("mode", int(m.mode)),
	)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case StageSplash:
		return m.handleSplashKeys(msg)
	case StageOnboarding:
		return m.handleOnboardingKeys(msg)
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys while browsing the store.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if screen, ok := navScreenForKey(key); ok {
		return m, m.navigate(screen, nil)
	}

	switch key {
	case "q":
		return m, tea.Quit

	// Card cursor
	case "h", "left", "k", "up":
		return m, m.moveCursor(-1)
	case "l", "right", "j", "down":
		return m, m.moveCursor(1)

	// Cart
	case "a", "+", "=":
		m.addSelected()
	case "-", "_":
		m.removeSelected()
	case "y":
		if m.renderedScreen() == viewstate.ScreenCart {
			text, lines := m.cartSummary()
			return m, commands.CopyToClipboard(text, lines)
		}

	// Screens
	case "enter":
		if p := m.selectedProduct(); p != nil && m.renderedScreen() != viewstate.ScreenProduct {
			return m, m.navigate(viewstate.ScreenProduct, p.ID)
		}
	case "s":
		return m, m.navigate(viewstate.ScreenSearch, nil)
	case "c":
		return m, m.navigate(viewstate.ScreenCart, nil)
	case "!":
		return m, m.navigate(viewstate.ScreenEmergency, nil)
	case "esc", "b", "backspace":
		if m.ctl.Screen() != viewstate.ScreenHomepage {
			return m, m.navigate(viewstate.ScreenHomepage, nil)
		}

	// Scrolling
	case "pgdown", "ctrl+d":
		m.scroll += max(1, m.bodyHeight()/2)
	case "pgup", "ctrl+u":
		m.scroll = max(0, m.scroll-max(1, m.bodyHeight()/2))

	// Overlays
	case "t":
		m.openThemeSelector()
	case "/", ":":
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		return m, m.prompt.Focus()
	}

	return m, nil
}

// handleSearchKeys handles keys while the search box has focus.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab", "down":
		m.mode = ModeNormal
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		return m, tea.Batch(cmd, m.runSearch())
	}
	return m, cmd
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "tab":
		if value, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil
	case "enter":
		line := m.prompt.Value()
		m.closePrompt()
		return m.executePrompt(line)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.Reset()
}

// executePrompt runs a prompt line. Plain text is treated as a search.
func (m Model) executePrompt(line string) (tea.Model, tea.Cmd) {
	cmd, ok := input.ParseCommand(line)
	if !ok {
		return m, nil
	}
	m.logger.Debug("prompt command", zap.String("name", cmd.Name), zap.String("arg", cmd.Arg))

	switch cmd.Name {
	case "home":
		return m, m.navigate(viewstate.ScreenHomepage, nil)
	case "search":
		return m, m.navigate(viewstate.ScreenSearch, cmd.Arg)
	case "cart":
		return m, m.navigate(viewstate.ScreenCart, nil)
	case "emergency":
		return m, m.navigate(viewstate.ScreenEmergency, nil)
	case "product":
		if cmd.Arg == "" {
			m.toasts.errorNotice("Missing product id", errors.New("usage: /product <id>"))
			return m, nil
		}
		return m, m.navigate(viewstate.ScreenProduct, cmd.Arg)
	case "go":
		if cmd.Arg == "" {
			m.toasts.errorNotice("Missing screen", errors.New("usage: /go <screen>"))
			return m, nil
		}
		return m, m.navigate(viewstate.ScreenID(strings.ToLower(cmd.Arg)), nil)
	case "theme":
		if cmd.Arg == "" {
			m.openThemeSelector()
			return m, nil
		}
		m.setTheme(viewstate.ThemeID(strings.ToLower(cmd.Arg)))
		return m, nil
	case "add":
		m.addFromPrompt(cmd.Arg)
		return m, nil
	case "copy":
		text, lines := m.cartSummary()
		return m, commands.CopyToClipboard(text, lines)
	case "quit":
		return m, tea.Quit
	}

	m.toasts.errorNotice("Unknown command", fmt.Errorf("%w: /%s", errUnknownCommand, cmd.Name))
	return m, nil
}

// addFromPrompt handles "/add <id> [qty]". Without a quantity it adds one.
func (m *Model) addFromPrompt(arg string) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		m.toasts.errorNotice("Missing product id", errors.New("usage: /add <id> [qty]"))
		return
	}
	id := viewstate.ProductID(fields[0])
	qty := m.ctl.Quantity(id) + 1
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			m.toasts.errorNotice("Invalid quantity", err)
			return
		}
		qty = n
	}
	if err := m.ctl.SetCartQuantity(id, qty); err != nil {
		m.toasts.errorNotice("Could not update cart", err)
	}
}

func (m *Model) openThemeSelector() {
	m.mode = ModeModal
	m.modalType = ModalThemeSelector
	m.themeCursor = 0
	for i, t := range m.themes {
		if t.Name == string(m.ctl.Theme()) {
			m.themeCursor = i
		}
	}
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "t":
		m.closeModal()
	case "j", "down":
		m.themeCursor = min(len(m.themes)-1, m.themeCursor+1)
	case "k", "up":
		m.themeCursor = max(0, m.themeCursor-1)
	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.themes) {
			m.themeCursor = idx
			m.setTheme(viewstate.ThemeID(m.themes[idx].Name))
			m.closeModal()
		}
	case "enter", " ":
		if m.themeCursor < len(m.themes) {
			m.setTheme(viewstate.ThemeID(m.themes[m.themeCursor].Name))
		}
		m.closeModal()
	}
	return m, nil
}
