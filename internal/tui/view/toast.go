package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ToastModel is one visible notification.
type ToastModel struct {
	Title       string
	Description string
	Style       lipgloss.Style
}

// RenderToasts renders toasts right-aligned, one per line.
func RenderToasts(toasts []ToastModel, width int, bg lipgloss.Color) string {
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		text := t.Title
		if t.Description != "" {
			text += " · " + t.Description
		}
		frameW, _ := t.Style.GetFrameSize()
		if width > frameW {
			text = ansi.Truncate(text, width-frameW, "…")
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, t.Style.Render(text),
			lipgloss.WithWhitespaceBackground(bg)))
	}
	return strings.Join(lines, "\n")
}
