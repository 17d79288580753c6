package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/mediquick/mediquick/internal/tui/theme"
	"github.com/mediquick/mediquick/internal/viewstate"
)

func TestNewStyles_AllThemes(t *testing.T) {
	for _, th := range theme.MustLoadAll() {
		t.Run(th.Name, func(t *testing.T) {
			s := NewStyles(th)
			if s.colorBg != lipgloss.Color(th.Bg) {
				t.Errorf("colorBg = %q, want %q", s.colorBg, th.Bg)
			}
			if s.colorPrimary != lipgloss.Color(th.Primary) {
				t.Errorf("colorPrimary = %q, want %q", s.colorPrimary, th.Primary)
			}
			if got := s.CardStyle.GetWidth(); got != cardWidth-2 {
				t.Errorf("card width = %d, want %d", got, cardWidth-2)
			}
			if s.ModalBgColor == "" {
				t.Error("expected modal background color")
			}
		})
	}
}

func TestStyleRoot_ApplyTheme(t *testing.T) {
	r := newStyleRoot()
	defaultStyles := r.styles

	r.ApplyTheme(viewstate.ThemeDark)
	if r.theme.Name != "dark" {
		t.Errorf("theme = %q, want dark", r.theme.Name)
	}
	if r.Marker() != "theme-dark" {
		t.Errorf("marker = %q, want theme-dark", r.Marker())
	}
	if r.styles == defaultStyles {
		t.Error("expected a different style set for dark")
	}

	r.ApplyTheme(viewstate.ThemeDefault)
	if r.Marker() != "" {
		t.Errorf("marker = %q, want none", r.Marker())
	}
	if r.styles != defaultStyles {
		t.Error("expected cached default styles to be reused")
	}
}

func TestStyleRoot_MarkerFromThemeFile(t *testing.T) {
	tests := []struct {
		id   viewstate.ThemeID
		want string
	}{
		{id: viewstate.ThemeGradient, want: "theme-gradient"},
		{id: viewstate.ThemeDark, want: "theme-dark"},
		{id: viewstate.ThemeDefault, want: ""},
	}

	r := newStyleRoot()
	for _, tt := range tests {
		r.ApplyTheme(tt.id)
		if r.Marker() != r.theme.Marker {
			t.Errorf("ApplyTheme(%s): marker %q does not come from theme file (%q)", tt.id, r.Marker(), r.theme.Marker)
		}
		if r.Marker() != tt.want {
			t.Errorf("ApplyTheme(%s): marker = %q, want %q", tt.id, r.Marker(), tt.want)
		}
	}
}

func TestSetTheme_ReappliesSameTheme(t *testing.T) {
	m := newStoreModel(t)
	applied := 0
	ctl := viewstate.New(viewstate.WithThemeApplier(viewstate.ThemeApplierFunc(func(id viewstate.ThemeID) {
		applied++
		m.root.ApplyTheme(id)
	})))
	m.ctl = ctl
	applied = 0

	for range 2 {
		if err := ctl.SetTheme(viewstate.ThemeGradient); err != nil {
			t.Fatalf("SetTheme: %v", err)
		}
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if m.root.Marker() != "theme-gradient" {
		t.Errorf("marker = %q, want exactly theme-gradient", m.root.Marker())
	}
}
