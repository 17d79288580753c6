package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Prices and product names
	colorPrice = color.New(color.FgGreen, color.Bold)

	// Prescription badge: yellow to stand out
	colorRx = color.New(color.FgYellow)

	// Over the counter badge
	colorOTC = color.New(color.FgCyan)

	// Out of stock
	colorDanger = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatPrice(s string) string {
	return colorPrice.Sprint(s)
}

func formatRx(s string) string {
	return colorRx.Sprint(s)
}

func formatOTC(s string) string {
	return colorOTC.Sprint(s)
}

func formatDanger(s string) string {
	return colorDanger.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
