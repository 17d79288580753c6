package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediquick/mediquick/internal/tui/view"
)

type onboardingStep struct {
	title       string
	subtitle    string
	description string
}

var onboardingSteps = []onboardingStep{
	{
		title:       "Lightning Fast",
		subtitle:    "Delivery in 30 minutes",
		description: "Get your medicines delivered to your doorstep in just 30 minutes. No more waiting in long pharmacy queues.",
	},
	{
		title:       "Verified & Safe",
		subtitle:    "Licensed pharmacies only",
		description: "All our partner pharmacies are licensed and verified. Your health and safety are our top priorities.",
	},
	{
		title:       "Super Convenient",
		subtitle:    "Upload prescriptions easily",
		description: "Simply take a photo of your prescription and we'll handle the rest. Track your order in real-time.",
	},
}

func (m Model) handleOnboardingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", "l", "right", " ":
		if m.onboardingStep < len(onboardingSteps)-1 {
			m.onboardingStep++
			return m, nil
		}
		m.stage = StageStore
	case "h", "left", "backspace":
		if m.onboardingStep > 0 {
			m.onboardingStep--
		}
	case "s", "esc":
		m.stage = StageStore
	}
	return m, nil
}

func (m Model) renderOnboarding() string {
	step := onboardingSteps[m.onboardingStep]
	return view.RenderOnboarding(view.OnboardingModel{
		Width:       m.width,
		Height:      m.height,
		Step:        m.onboardingStep,
		Steps:       len(onboardingSteps),
		Title:       step.title,
		Subtitle:    step.subtitle,
		Description: step.description,
	}, m.splashStyles(m.styles()))
}
