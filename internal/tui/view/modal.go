package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal is a titled dialog box. The first button is drawn as the default
// action.
type Modal struct {
	Title   string
	Body    string
	Buttons []string
}

type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
}

// RenderModal draws the header, body and button row inside the frame.
// Empty sections are skipped along with their spacing.
func RenderModal(m Modal, s ModalStyles) string {
	sections := []string{s.Header.Render(s.Title.Render(m.Title))}
	if m.Body != "" {
		sections = append(sections, m.Body)
	}
	if row := renderButtons(m.Buttons, s); row != "" {
		sections = append(sections, s.Footer.Render(row))
	}
	return s.Frame.Render(strings.Join(sections, "\n\n"))
}

func renderButtons(labels []string, s ModalStyles) string {
	if len(labels) == 0 {
		return ""
	}
	buttons := make([]string, len(labels))
	for i, label := range labels {
		style := s.Button
		if i == 0 {
			style = s.ActiveButton
		}
		buttons[i] = style.Render(label)
	}
	return strings.Join(buttons, s.Body.Render(" "))
}
