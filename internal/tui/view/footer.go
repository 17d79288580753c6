package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	Toasts      []ToastModel
	PromptLines []string
	ShowPrompt  bool
	PromptFocus bool
	StatusText  string
	HelpText    string

	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	Bg               lipgloss.Color
}

// FooterHeight returns the number of lines RenderFooter will produce.
func FooterHeight(m FooterModel) int {
	h := len(m.Toasts) + 2
	if m.ShowPrompt {
		lines := max(1, len(m.PromptLines))
		_, frameH := m.PromptStyle.GetFrameSize()
		h += lines + frameH
	}
	return h
}

// RenderFooter renders toasts, the optional prompt, the status and help lines.
func RenderFooter(m FooterModel) string {
	parts := make([]string, 0, 4)
	if len(m.Toasts) > 0 {
		parts = append(parts, RenderToasts(m.Toasts, m.InnerW, m.Bg))
	}
	if m.ShowPrompt {
		style := m.PromptStyle
		if m.PromptFocus {
			style = m.PromptFocusStyle
		}
		parts = append(parts, RenderPrompt(m.InnerW, style, m.PromptLines))
	}
	parts = append(parts,
		footerLine(m.InnerW, m.StatusStyle, m.StatusText),
		footerLine(m.InnerW, m.HelpStyle, m.HelpText),
	)
	return strings.Join(parts, "\n")
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
