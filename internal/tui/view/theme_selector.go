package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ThemeOption is one row of the theme selector.
type ThemeOption struct {
	Title       string
	Description string
	Swatches    []lipgloss.Color
	Active      bool // Currently applied
	Selected    bool // Under the cursor
	ZoneID      string
}

// ThemeSelectorStyles groups the styles used by RenderThemeSelectorBody.
type ThemeSelectorStyles struct {
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// RenderThemeSelectorBody renders the theme list for the selector modal.
func RenderThemeSelectorBody(options []ThemeOption, s ThemeSelectorStyles) string {
	rows := make([]string, 0, len(options)*2)
	for _, opt := range options {
		marker := "  "
		if opt.Active {
			marker = "✓ "
		}
		title := s.Body.Render(marker + opt.Title)
		if opt.Selected {
			title = s.Selected.Render(marker + opt.Title)
		}

		var swatches strings.Builder
		for _, c := range opt.Swatches {
			swatches.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
		}

		row := lipgloss.JoinVertical(lipgloss.Left,
			title+s.Body.Render(" ")+swatches.String(),
			s.Muted.Render("  "+opt.Description),
		)
		if opt.ZoneID != "" {
			row = zone.Mark(opt.ZoneID, row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n"+s.Body.Render("")+"\n")
}
