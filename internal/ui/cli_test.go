package ui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mediquick/mediquick/internal/catalog"
	"github.com/mediquick/mediquick/internal/config"
	"github.com/mediquick/mediquick/internal/db"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	repo, err := db.NewSeeded(context.Background())
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	app := NewApp(repo, config.Default())
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	DisableColor()
	t.Cleanup(EnableColor)

	var out bytes.Buffer
	app.root.SetOut(&out)
	app.root.SetErr(&out)
	app.root.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewApp(nil, nil), "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "mediquick dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestProductsCmd(t *testing.T) {
	out, err := execute(t, newTestApp(t), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "products") {
		t.Errorf("expected product count header, got %q", out)
	}
	if !strings.Contains(out, "Paracetamol") {
		t.Errorf("expected seeded products in output:\n%s", out)
	}
}

func TestProductsCmd_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		notWant string
	}{
		{name: "no match", query: "zzzz", want: "No medicines found."},
		{name: "ignores case", query: "PARACETAMOL", want: "Paracetamol 500mg", notWant: "Vitamin"},
		{name: "generic name", query: "cholecalciferol", want: "Vitamin D3", notWant: "Paracetamol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newTestApp(t), "products", "--search", tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("unexpected %q in output:\n%s", tt.notWant, out)
			}
		})
	}
}

func TestProductsCmd_NoCatalog(t *testing.T) {
	_, err := execute(t, NewApp(nil, nil), "products")
	if !errors.Is(err, errNoCatalog) {
		t.Errorf("expected errNoCatalog, got %v", err)
	}
}

func TestThemesCmd(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "dark"
	out, err := execute(t, NewApp(nil, cfg), "themes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 themes, got %d:\n%s", len(lines), out)
	}
	for _, line := range lines {
		marked := strings.HasPrefix(line, "*")
		if marked != strings.Contains(line, "dark") {
			t.Errorf("only the configured theme should be marked: %q", line)
		}
	}
}

func TestProductLine(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	tests := []struct {
		name    string
		product catalog.Product
		want    []string
		notWant []string
	}{
		{
			name:    "otc with discount",
			product: catalog.Product{ID: "1", Name: "Paracetamol 500mg", Price: 25, OriginalPrice: 30, Type: catalog.TypeOTC, InStock: true, ETA: "15 mins", Rating: 4.5, ReviewCount: 128},
			want:    []string{"OTC", "₹25 ₹30", "★ 4.5 (128)", "15 mins"},
		},
		{
			name:    "prescription out of stock",
			product: catalog.Product{ID: "2", Name: "Insulin", Price: 950, Type: catalog.TypePrescription, ETA: "20 mins"},
			want:    []string{"Rx", "₹950", "out of stock"},
			notWant: []string{"20 mins", "OTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := productLine(&tt.product)
			for _, want := range tt.want {
				if !strings.Contains(line, want) {
					t.Errorf("expected %q in %q", want, line)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(line, notWant) {
					t.Errorf("did not expect %q in %q", notWant, line)
				}
			}
		})
	}
}

func TestEditConfig(t *testing.T) {
	input := strings.Join([]string{
		"purple",   // invalid theme, asked again
		"Gradient", // theme
		"maybe",    // invalid bool, asked again
		"false",    // splash
		"",         // onboarding keeps current
		"WARN",     // level
		"",         // path keeps current
	}, "\n") + "\n"

	cfg := config.Default()
	var out bytes.Buffer
	editConfig(bufio.NewReader(strings.NewReader(input)), &out, cfg)

	if cfg.UI.Theme != "gradient" {
		t.Errorf("theme = %q, want gradient", cfg.UI.Theme)
	}
	if cfg.UI.Splash {
		t.Error("expected splash disabled")
	}
	if !cfg.UI.Onboarding {
		t.Error("expected onboarding unchanged")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Log.Path != config.Default().Log.Path {
		t.Errorf("path = %q, want default", cfg.Log.Path)
	}
	if !strings.Contains(out.String(), `Invalid theme "purple"`) {
		t.Error("expected invalid theme message")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("edited config should be valid: %v", err)
	}
}
