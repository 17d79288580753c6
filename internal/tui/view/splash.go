package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SplashModel contains content for the splash screen.
type SplashModel struct {
	Width    int
	Height   int
	Title    string
	Subtitle string
	Bar      string // Pre-rendered progress bar
	Percent  int
}

// SplashStyles groups the styles used by the splash and onboarding screens.
type SplashStyles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	StepActive   lipgloss.Style
	StepInactive lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Bg           lipgloss.Color
}

// RenderSplash renders the centered splash screen.
func RenderSplash(m SplashModel, s SplashStyles) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(m.Title),
		s.Subtitle.Render(m.Subtitle),
		"",
		m.Bar,
		s.Subtitle.Render(fmt.Sprintf("Loading... %d%%", m.Percent)),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(s.Bg))
}

// OnboardingModel contains content for one onboarding step.
type OnboardingModel struct {
	Width       int
	Height      int
	Step        int
	Steps       int
	Title       string
	Subtitle    string
	Description string
}

// RenderOnboarding renders an onboarding step with its progress dots.
func RenderOnboarding(m OnboardingModel, s SplashStyles) string {
	dots := make([]string, 0, m.Steps)
	for i := 0; i < m.Steps; i++ {
		if i == m.Step {
			dots = append(dots, s.StepActive.Render("●"))
		} else {
			dots = append(dots, s.StepInactive.Render("○"))
		}
	}

	next := "Continue"
	if m.Step == m.Steps-1 {
		next = "Get Started"
	}
	buttons := []string{s.ButtonActive.Render("[Enter] " + next)}
	if m.Step > 0 {
		buttons = append(buttons, s.Button.Render("[←] Back"))
	}
	buttons = append(buttons, s.Button.Render("[s] Skip"))

	width := min(56, max(20, m.Width-4))
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(m.Title),
		s.StepActive.Render(m.Subtitle),
		"",
		s.Subtitle.Width(width).Align(lipgloss.Center).Render(m.Description),
		"",
		strings.Join(dots, s.Subtitle.Render(" ")),
		"",
		strings.Join(buttons, s.Subtitle.Render("  ")),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(s.Bg))
}
