package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/config"
	"github.com/mediquick/mediquick/internal/logging"
	"github.com/mediquick/mediquick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     catalog.Repository
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
	noSplash bool // Skip splash and onboarding
}

// NewApp creates a new CLI application with the given catalog and config.
func NewApp(repo catalog.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "mediquick",
		Short: "Ultra-fast medicine delivery, in your terminal",
		Long: `MediQuick is a terminal storefront for a medicine delivery service.

Browse featured medicines, search the catalog, keep a cart and switch
between storefront themes. All data is a local mock catalog; nothing
is ordered or stored.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+cfg.Log.Path+")")
	a.root.Flags().BoolVar(&a.noSplash, "no-splash", false, "Skip the splash screen and onboarding")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.productsCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

func (a *App) runTUI() error {
	logger, err := logging.New(a.debug, a.config.Log.Level, a.config.Log.Path)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting tui",
		zap.String("version", Version),
		zap.String("theme", a.config.UI.Theme),
		zap.Bool("no_splash", a.noSplash),
	)

	var opts []tui.ModelOption
	if a.noSplash {
		opts = append(opts, tui.WithSkipIntro())
	}
	return tui.Run(a.repo, a.config, logger, opts...)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mediquick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the catalog.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
