// Package view draws the storefront: chrome, screens, cards and overlays.
// Everything here renders plain models; state lives in package tui.
package view

import (
	"cmp"

	"github.com/charmbracelet/lipgloss"
)

// ViewState is everything Render needs to compose one frame.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	ModalBg          lipgloss.Color
	EmptyPlaceholder string
}

// Render composes a frame. Until the first window size arrives it returns
// the placeholder.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return cmp.Or(state.EmptyPlaceholder, "Loading...")
	}
	if !state.ShowModal || state.ModalContent == "" {
		return state.BaseContent
	}
	return OverlayModal(state.BaseContent, state.ModalContent, state.Width, state.Height, state.ModalBg)
}
