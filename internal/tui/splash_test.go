package tui

import (
	"testing"

	"github.com/mediquick/mediquick/internal/config"
	"github.com/mediquick/mediquick/internal/tui/commands"
)

func newSplashModel(onboarding bool) Model {
	cfg := config.Default()
	cfg.UI.Onboarding = onboarding
	return *New(nil, cfg, nil)
}

func TestSplash_ProgressAndFinish(t *testing.T) {
	m := newSplashModel(false)
	gen := m.splash.gen

	for i := 0; i < 100/commands.SplashStep; i++ {
		m = send(m, commands.SplashTickMsg{Gen: gen})
	}
	if m.splash.progress != 100 || !m.splash.holding {
		t.Fatalf("expected held at 100%%, got %d holding=%t", m.splash.progress, m.splash.holding)
	}

	m = send(m, commands.SplashTickMsg{Gen: gen})
	if m.splash.progress != 100 {
		t.Errorf("progress should not exceed 100, got %d", m.splash.progress)
	}

	m = send(m, commands.SplashDoneMsg{Gen: gen})
	if m.stage != StageStore {
		t.Errorf("stage = %v, want StageStore", m.stage)
	}
}

func TestSplash_FinishGoesToOnboarding(t *testing.T) {
	m := newSplashModel(true)
	m = pressKeys(m, "x")

	if m.stage != StageOnboarding {
		t.Fatalf("stage = %v, want StageOnboarding", m.stage)
	}
	if m.onboardingStep != 0 {
		t.Errorf("onboarding step = %d, want 0", m.onboardingStep)
	}
}

func TestSplash_StaleTicksIgnored(t *testing.T) {
	m := newSplashModel(true)
	stale := m.splash.gen
	m = send(m, commands.SplashTickMsg{Gen: stale})
	if m.splash.progress != commands.SplashStep {
		t.Fatalf("progress = %d, want %d", m.splash.progress, commands.SplashStep)
	}

	m = pressKeys(m, "enter")
	m = send(m, commands.SplashTickMsg{Gen: stale})
	m = send(m, commands.SplashDoneMsg{Gen: stale})

	if m.stage != StageOnboarding {
		t.Errorf("stale done message changed stage to %v", m.stage)
	}
	if m.splash.progress != commands.SplashStep {
		t.Errorf("stale tick advanced progress to %d", m.splash.progress)
	}
}

func TestOnboarding_Steps(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Splash = false
	m := *New(nil, cfg, nil)
	if m.stage != StageOnboarding {
		t.Fatalf("stage = %v, want StageOnboarding", m.stage)
	}

	m = pressKeys(m, "left")
	if m.onboardingStep != 0 {
		t.Errorf("back on first step should stay, got %d", m.onboardingStep)
	}

	m = pressKeys(m, "enter", "enter")
	if m.onboardingStep != 2 {
		t.Fatalf("step = %d, want 2", m.onboardingStep)
	}
	m = pressKeys(m, "left")
	if m.onboardingStep != 1 {
		t.Errorf("step = %d, want 1", m.onboardingStep)
	}

	m = pressKeys(m, "right", "enter")
	if m.stage != StageStore {
		t.Errorf("finishing onboarding should open the store, got %v", m.stage)
	}
}

func TestOnboarding_Skip(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Splash = false
	m := *New(nil, cfg, nil)

	m = pressKeys(m, "s")
	if m.stage != StageStore {
		t.Errorf("stage = %v, want StageStore", m.stage)
	}
}
