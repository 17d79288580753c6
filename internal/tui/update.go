package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/tui/view"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// Update handles messages and updates the model. Notices raised while
// handling the message are scheduled for dismissal afterwards.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.update(msg)
	return updated, tea.Batch(cmd, m.toasts.flush())
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splashBar.Width = max(10, min(40, msg.Width-10))
		m.search.Width = max(10, msg.Width-16)
		return m, nil

	case commands.CatalogLoadedMsg:
		m.loading = false
		m.featured = msg.Featured
		m.categories = msg.Categories
		m.pharmacies = msg.Pharmacies
		m.testimonials = msg.Testimonials
		m.benefits = msg.Benefits
		m.rememberProducts(msg.Featured)
		return m, nil

	case commands.SearchResultsMsg:
		// Results for an older query are dropped.
		if msg.Query != m.search.Value() {
			return m, nil
		}
		m.results = msg.Results
		m.rememberProducts(msg.Results)
		m.cursor = min(m.cursor, max(0, len(m.results)-1))
		return m, nil

	case commands.ProductLoadedMsg:
		m.product = msg.Product
		m.rememberProducts([]*catalog.Product{msg.Product})
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.toasts.errorNotice("Something went wrong", msg.Err)
		return m, nil

	case commands.CopiedMsg:
		m.toasts.Notify(viewstate.Notice{
			Kind:        viewstate.NoticeSuccess,
			Title:       "Copied cart summary",
			Description: view.Pluralize(msg.Lines, "line", "lines") + " copied to the clipboard",
			Duration:    viewstate.DefaultNoticeDuration,
		})
		return m, nil

	case commands.DismissToastMsg:
		m.toasts.dismiss(msg.ID)
		return m, nil

	case commands.SplashTickMsg:
		return m.handleSplashTick(msg)

	case commands.SplashDoneMsg:
		return m.handleSplashDone(msg)

	case commands.AnimateMsg:
		return m.handleAnimate()
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	switch m.mode {
	case ModeSearch:
		m.search, cmd = m.search.Update(msg)
	case ModePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}
