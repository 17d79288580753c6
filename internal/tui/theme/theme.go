// Package theme provides the named storefront palettes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when no name or an unknown name is given.
const DefaultName = "default"

// Theme holds all colors for a storefront theme.
type Theme struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`       // Human readable name
	Description string `toml:"description"` // One line shown in the selector
	Marker      string `toml:"marker"`      // Root marker, empty for the default theme

	Bg        string `toml:"bg"`        // Base background
	Surface   string `toml:"surface"`   // Cards, header bar
	Selection string `toml:"selection"` // Selected card, cursor
	Border    string `toml:"border"`    // Card borders
	Fg        string `toml:"fg"`        // Primary foreground
	FgMuted   string `toml:"fg_muted"`  // Secondary text
	Primary   string `toml:"primary"`   // Brand color, titles, buttons
	Accent    string `toml:"accent"`    // Discounts, highlights
	Success   string `toml:"success"`   // Success toasts, in stock
	Warning   string `toml:"warning"`   // Prescription badges
	Danger    string `toml:"danger"`    // Errors, emergency

	// Modal palette (can override base theme values)
	ModalBg     string `toml:"modal_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is empty or unknown.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// MustLoadAll loads every available theme in selector order.
func MustLoadAll() []*Theme {
	names := Available()
	themes := make([]*Theme, 0, len(names))
	for _, name := range names {
		t, err := Load(name)
		if err != nil {
			panic(err)
		}
		themes = append(themes, t)
	}
	return themes
}

func (t *Theme) applyDefaults() {
	if t.ModalBg == "" {
		t.ModalBg = coalesce(t.Surface, t.Bg)
	}
	if t.ModalBorder == "" {
		t.ModalBorder = t.Primary
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.Selection, t.Primary)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the theme names in selector order.
func Available() []string {
	return []string{"default", "gradient", "dark"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
