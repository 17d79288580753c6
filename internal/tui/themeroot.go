package tui

import (
	"github.com/mediquick/mediquick/internal/tui/theme"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// styleRoot is the view root the active theme is applied to. The Model is
// copied on every update, so it holds a pointer and the controller writes
// through it.
type styleRoot struct {
	theme  *theme.Theme
	styles *Styles
	marker string

	// Built style sets keyed by theme name.
	cache map[string]*Styles
}

func newStyleRoot() *styleRoot {
	t, err := theme.Load(theme.DefaultName)
	if err != nil {
		t = &theme.Theme{Name: theme.DefaultName}
	}
	r := &styleRoot{theme: t, cache: make(map[string]*Styles)}
	r.styles = r.stylesFor(t)
	return r
}

// ApplyTheme swaps the style set and replaces the root marker with the one
// declared in the theme file.
func (r *styleRoot) ApplyTheme(id viewstate.ThemeID) {
	t, err := theme.Load(string(id))
	if err != nil {
		return
	}
	r.theme = t
	r.styles = r.stylesFor(t)
	r.marker = t.Marker
}

// Marker returns the single marker currently on the root, or "".
func (r *styleRoot) Marker() string {
	return r.marker
}

func (r *styleRoot) stylesFor(t *theme.Theme) *Styles {
	if s, ok := r.cache[t.Name]; ok {
		return s
	}
	s := NewStyles(t)
	r.cache[t.Name] = s
	return s
}
