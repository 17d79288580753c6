package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox places content in a w by h box painted with bg, so screen bodies
// shorter than the terminal never show the terminal's own background.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return FillLines(placed, w, h, bg)
}

// FillLines pads every line to width and the block to exactly height lines.
// Lines already wider than width are kept as they are.
func FillLines(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	fill := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + fill.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}

// OverlayModal centers modal over the store screen. Rows the modal covers
// keep the base content on both sides of it.
func OverlayModal(base, modal string, width, height int, bg lipgloss.Color) string {
	rows := strings.Split(modal, "\n")
	boxW := min(blockWidth(rows), width)
	if boxW == 0 {
		return base
	}
	top := max(0, (height-len(rows))/2)
	left := max(0, (width-boxW)/2)

	fill := lipgloss.NewStyle().Background(bg)
	seq := backgroundSeq(bg)
	out := strings.Split(FillLines(base, width, height, lipgloss.Color("")), "\n")
	for i, row := range rows {
		y := top + i
		if y >= len(out) {
			break
		}
		row = fitRow(row, boxW, fill, seq)
		out[y] = ansi.Cut(out[y], 0, left) + row + ansi.Cut(out[y], left+boxW, width)
	}
	return strings.Join(out, "\n")
}

func blockWidth(rows []string) int {
	w := 0
	for _, row := range rows {
		w = max(w, lipgloss.Width(row))
	}
	return w
}

// fitRow cuts or pads a modal row to w cells. The modal background is
// restored after every style reset inside the row.
func fitRow(row string, w int, fill lipgloss.Style, seq string) string {
	switch rw := lipgloss.Width(row); {
	case rw > w:
		row = ansi.Cut(row, 0, w)
	case rw < w:
		row += fill.Render(strings.Repeat(" ", w-rw))
	}
	if seq != "" {
		for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
			row = strings.ReplaceAll(row, reset, reset+seq)
		}
	}
	return row + ansi.ResetStyle
}

func backgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
