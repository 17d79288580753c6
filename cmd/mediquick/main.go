package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mediquick/mediquick/internal/config"
	"github.com/mediquick/mediquick/internal/db"
	"github.com/mediquick/mediquick/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The catalog lives in memory for the life of the process
	repo, err := db.NewSeeded(context.Background())
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	app := ui.NewApp(repo, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
