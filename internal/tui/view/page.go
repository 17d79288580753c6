package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PageStyles groups the styles used for simple titled pages.
type PageStyles struct {
	Title lipgloss.Style
	Body  lipgloss.Style
}

// RenderPage renders a title followed by body lines.
func RenderPage(title string, body []string, s PageStyles) string {
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, s.Title.Render(title), "")
	for _, line := range body {
		lines = append(lines, s.Body.Render(line))
	}
	return strings.Join(lines, "\n")
}
