package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/tui/view"
)

// splashState tracks one run of the splash progress bar. Ticks carry the
// generation they were scheduled for; a tick from an older generation is
// dropped.
type splashState struct {
	progress int
	gen      int
	holding  bool // Reached 100% and waiting for SplashDoneMsg
}

func (m Model) handleSplashTick(msg commands.SplashTickMsg) (tea.Model, tea.Cmd) {
	if m.stage != StageSplash || msg.Gen != m.splash.gen || m.splash.holding {
		return m, nil
	}
	m.splash.progress += commands.SplashStep
	if m.splash.progress >= 100 {
		m.splash.progress = 100
		m.splash.holding = true
		return m, commands.SplashDone(m.splash.gen)
	}
	return m, commands.SplashTick(m.splash.gen)
}

func (m Model) handleSplashDone(msg commands.SplashDoneMsg) (tea.Model, tea.Cmd) {
	if m.stage != StageSplash || msg.Gen != m.splash.gen {
		return m, nil
	}
	m.finishSplash()
	return m, nil
}

// finishSplash leaves the splash and invalidates any tick still in flight.
func (m *Model) finishSplash() {
	m.splash.gen++
	m.splash.holding = false
	if m.config.UI.Onboarding {
		m.stage = StageOnboarding
		m.onboardingStep = 0
		return
	}
	m.stage = StageStore
}

func (m Model) handleSplashKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	m.finishSplash()
	return m, nil
}

func (m Model) renderSplash() string {
	s := m.styles()
	return view.RenderSplash(view.SplashModel{
		Width:    m.width,
		Height:   m.height,
		Title:    "MediQuick",
		Subtitle: "Ultra-fast medicine delivery",
		Bar:      m.splashBar.ViewAs(float64(m.splash.progress) / 100),
		Percent:  m.splash.progress,
	}, m.splashStyles(s))
}

func (m Model) splashStyles(s *Styles) view.SplashStyles {
	return view.SplashStyles{
		Title:        s.SplashTitleStyle,
		Subtitle:     s.SplashSubtitleStyle,
		StepActive:   s.StepActiveStyle,
		StepInactive: s.StepInactiveStyle,
		Button:       s.ModalButtonStyle.Background(s.colorBg),
		ButtonActive: s.ModalButtonActiveStyle,
		Bg:           s.colorBg,
	}
}
