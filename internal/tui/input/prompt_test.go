package input

import "testing"

func TestPromptMatchingCommands(t *testing.T) {
	commands := []PromptCommand{
		{Name: "/cart", Description: "Cart"},
		{Name: "/community", Description: "Community"},
		{Name: "/theme", Description: "Theme"},
	}

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "cart", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "full", input: "/cart", want: 1},
		{name: "shared_prefix", input: "/c", want: 2},
		{name: "case_insensitive", input: "/TH", want: 1},
		{name: "with_space", input: "/theme dark", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, commands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	commands := []PromptCommand{
		{Name: "/theme", Description: "Theme"},
		{Name: "/teleconsult", Description: "Teleconsult"},
	}

	value, ok := PromptAutocomplete("/th", commands)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/theme " {
		t.Fatalf("value = %q, want %q", value, "/theme ")
	}

	if _, ok := PromptAutocomplete("/zzz", commands); ok {
		t.Fatal("expected no autocomplete for unknown prefix")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Command
		wantOK bool
	}{
		{name: "empty", line: "   ", wantOK: false},
		{name: "bare slash", line: "/", wantOK: false},
		{name: "command only", line: "/cart", want: Command{Name: "cart"}, wantOK: true},
		{name: "command with arg", line: "/theme  Dark ", want: Command{Name: "theme", Arg: "Dark"}, wantOK: true},
		{name: "uppercase name", line: "/GO health-insights", want: Command{Name: "go", Arg: "health-insights"}, wantOK: true},
		{name: "plain text is search", line: "vitamin d", want: Command{Name: "search", Arg: "vitamin d"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCommand(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseCommand(%q) ok = %t, want %t", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
