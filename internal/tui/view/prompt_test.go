package view

import (
	"strings"
	"testing"

	"github.com/mediquick/mediquick/internal/tui/input"
)

func TestPromptLinesIncludesSuggestions(t *testing.T) {
	state := PromptState{Value: "/ca", Cursor: "_", ModePrompt: true}
	commands := []input.PromptCommand{
		{Name: "/cart", Description: "Open the cart"},
		{Name: "/theme", Description: "Switch theme"},
	}
	lines := PromptLines(state, 40, commands)

	found := false
	for _, line := range lines {
		if line == "  /cart Open the cart" {
			found = true
		}
		if strings.Contains(line, "/theme") {
			t.Fatalf("unexpected suggestion for /theme: %v", lines)
		}
	}

	if !found {
		t.Fatalf("expected suggestion line, got %v", lines)
	}
}

func TestPromptLinesNoSuggestionsOutsidePromptMode(t *testing.T) {
	state := PromptState{Value: "/ca", Cursor: "_", ModePrompt: false}
	commands := []input.PromptCommand{{Name: "/cart", Description: "Open the cart"}}

	lines := PromptLines(state, 40, commands)
	if len(lines) != 1 {
		t.Fatalf("expected only the input line, got %v", lines)
	}
	if lines[0] != "> /ca_" {
		t.Fatalf("input line = %q, want %q", lines[0], "> /ca_")
	}
}

func TestClampPromptLinesAddsEllipsis(t *testing.T) {
	lines := []string{"one", "two", "three"}
	clamped := ClampPromptLines(lines, 2, 5)
	if len(clamped) != 2 {
		t.Fatalf("clamped length = %d, want 2", len(clamped))
	}
	if clamped[1] == "two" {
		t.Fatalf("expected ellipsis on last line, got %q", clamped[1])
	}
}

func TestWrapTextToWidths(t *testing.T) {
	lines := WrapTextToWidths("search vitamin d3 tablets", 10, 10)
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line %q exceeds width 10", line)
		}
	}
	if strings.Join(lines, " ") != "search vitamin d3 tablets" {
		t.Errorf("wrapped text lost words: %v", lines)
	}
}
