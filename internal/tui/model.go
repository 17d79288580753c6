// Package tui provides the terminal storefront for MediQuick.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/config"
	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/tui/theme"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// Stage is the startup phase the TUI is in.
type Stage int

const (
	StageSplash Stage = iota
	StageOnboarding
	StageStore
)

// Mode represents the current interaction mode inside the store.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // Typing into the search box
	ModePrompt      // Typing a /command
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalThemeSelector
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctl    *viewstate.Controller
	repo   catalog.Repository
	config *config.Config
	logger *zap.Logger

	// Theme root and notices, shared with the controller
	root   *styleRoot
	toasts *toastQueue

	stage     Stage
	mode      Mode
	modalType ModalType

	// Splash and onboarding
	splash         splashState
	splashBar      progress.Model
	onboardingStep int

	// Catalog data
	loading      bool
	featured     []*catalog.Product
	categories   []catalog.Category
	pharmacies   []catalog.Pharmacy
	testimonials []catalog.Testimonial
	benefits     []catalog.Benefit
	known        map[string]*catalog.Product // Every product seen, for cart lines
	product      *catalog.Product            // Product screen subject

	// Card cursor, animated with a spring
	cursor     int
	animCursor float64
	velocity   float64
	spring     harmonica.Spring
	animating  bool

	// Search
	search  textinput.Model
	results []*catalog.Product

	// Command prompt
	prompt textinput.Model

	// Theme selector
	themes      []*theme.Theme
	themeCursor int

	// Terminal dimensions
	width  int
	height int
	scroll int

	statusMsg string
	err       error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSkipIntro starts directly in the store, without splash or onboarding.
func WithSkipIntro() ModelOption {
	return func(m *Model) {
		m.stage = StageStore
	}
}

// New creates a new TUI model with its own controller.
func New(repo catalog.Repository, cfg *config.Config, logger *zap.Logger, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	root := newStyleRoot()
	toasts := newToastQueue()
	ctl := viewstate.New(
		viewstate.WithNotifier(toasts),
		viewstate.WithThemeApplier(root),
		viewstate.WithLogger(logger.Named("viewstate")),
		viewstate.WithInitialTheme(viewstate.ThemeID(cfg.UI.Theme)),
	)

	search := textinput.New()
	search.Placeholder = "Search medicines..."
	search.CharLimit = 64
	search.Prompt = "Search: "

	prompt := textinput.New()
	prompt.Placeholder = "/command"
	prompt.Prompt = ""

	stage := StageStore
	switch {
	case cfg.UI.Splash:
		stage = StageSplash
	case cfg.UI.Onboarding:
		stage = StageOnboarding
	}

	m := &Model{
		ctl:       ctl,
		repo:      repo,
		config:    cfg,
		logger:    logger,
		root:      root,
		toasts:    toasts,
		stage:     stage,
		mode:      ModeNormal,
		splash:    splashState{gen: 1},
		splashBar: progress.New(progress.WithoutPercentage(), progress.WithWidth(30)),
		loading:   repo != nil,
		known:     make(map[string]*catalog.Product),
		spring:    harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
		search:    search,
		prompt:    prompt,
		themes:    theme.MustLoadAll(),
	}

	for _, opt := range opts {
		opt(m)
	}
	m.applyInputStyles()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.repo != nil {
		cmds = append(cmds, commands.LoadCatalog(m.repo))
	}
	if m.stage == StageSplash {
		cmds = append(cmds, commands.SplashTick(m.splash.gen))
	}
	return tea.Batch(cmds...)
}

// Controller returns the view-state controller driving this model.
func (m Model) Controller() *viewstate.Controller {
	return m.ctl
}

func (m Model) styles() *Styles {
	return m.root.styles
}

// applyInputStyles restyles the text inputs after a theme change.
func (m *Model) applyInputStyles() {
	s := m.styles()
	m.search.PromptStyle = s.SectionTitleStyle
	m.search.TextStyle = s.BodyStyle
	m.search.PlaceholderStyle = s.MutedStyle
	m.search.Cursor.Style = s.SectionTitleStyle
	m.prompt.TextStyle = s.BodyStyle
	m.prompt.PlaceholderStyle = s.MutedStyle
	m.splashBar.FullColor = string(s.colorPrimary)
	m.splashBar.EmptyColor = string(s.colorSelection)
}

// Run starts the TUI with the given catalog repository.
func Run(repo catalog.Repository, cfg *config.Config, logger *zap.Logger, opts ...ModelOption) error {
	zone.NewGlobal()

	model := New(repo, cfg, logger, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
