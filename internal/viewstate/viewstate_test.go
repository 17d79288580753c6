package viewstate

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// markerRoot mimics a view root carrying at most one theme marker.
type markerRoot struct {
	markers map[string]bool
	applied int
}

func newMarkerRoot() *markerRoot {
	return &markerRoot{markers: make(map[string]bool)}
}

func (r *markerRoot) ApplyTheme(id ThemeID) {
	r.applied++
	for m := range r.markers {
		delete(r.markers, m)
	}
	if id != ThemeDefault {
		r.markers["theme-"+string(id)] = true
	}
}

type recordingNotifier struct {
	notices []Notice
}

func (r *recordingNotifier) Notify(n Notice) {
	r.notices = append(r.notices, n)
}

func TestNew_StartState(t *testing.T) {
	c := New()

	if c.Screen() != ScreenHomepage {
		t.Errorf("Screen() = %q, want %q", c.Screen(), ScreenHomepage)
	}
	if len(c.Cart()) != 0 {
		t.Errorf("Cart() = %v, want empty", c.Cart())
	}
	if c.TotalItems() != 0 {
		t.Errorf("TotalItems() = %d, want 0", c.TotalItems())
	}
	if c.Theme() != ThemeDefault {
		t.Errorf("Theme() = %q, want %q", c.Theme(), ThemeDefault)
	}
}

func TestNew_AppliesInitialTheme(t *testing.T) {
	root := newMarkerRoot()
	c := New(WithThemeApplier(root), WithInitialTheme(ThemeDark))

	if c.Theme() != ThemeDark {
		t.Fatalf("Theme() = %q, want %q", c.Theme(), ThemeDark)
	}
	if diff := cmp.Diff(map[string]bool{"theme-dark": true}, root.markers); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_InvalidInitialThemeIgnored(t *testing.T) {
	c := New(WithInitialTheme("neon"))
	if c.Theme() != ThemeDefault {
		t.Errorf("Theme() = %q, want %q", c.Theme(), ThemeDefault)
	}
}

func TestSetCartQuantity_TotalIsSumOfLatest(t *testing.T) {
	type step struct {
		id  ProductID
		qty int
	}
	tests := []struct {
		name      string
		steps     []step
		wantCart  map[ProductID]int
		wantTotal int
	}{
		{
			name:      "single product",
			steps:     []step{{"p1", 2}},
			wantCart:  map[ProductID]int{"p1": 2},
			wantTotal: 2,
		},
		{
			name:      "overwrite replaces quantity",
			steps:     []step{{"p1", 2}, {"p1", 5}},
			wantCart:  map[ProductID]int{"p1": 5},
			wantTotal: 5,
		},
		{
			name:      "several products",
			steps:     []step{{"p1", 2}, {"p2", 1}, {"p3", 4}, {"p2", 3}},
			wantCart:  map[ProductID]int{"p1": 2, "p2": 3, "p3": 4},
			wantTotal: 9,
		},
		{
			name:      "zero is stored not removed",
			steps:     []step{{"p1", 2}, {"p1", 0}},
			wantCart:  map[ProductID]int{"p1": 0},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, s := range tt.steps {
				if err := c.SetCartQuantity(s.id, s.qty); err != nil {
					t.Fatalf("SetCartQuantity(%q, %d) unexpected error: %v", s.id, s.qty, err)
				}
			}
			if diff := cmp.Diff(tt.wantCart, c.Cart()); diff != "" {
				t.Errorf("Cart() mismatch (-want +got):\n%s", diff)
			}
			if c.TotalItems() != tt.wantTotal {
				t.Errorf("TotalItems() = %d, want %d", c.TotalItems(), tt.wantTotal)
			}

			sum := 0
			for _, q := range c.Cart() {
				sum += q
			}
			if sum != c.TotalItems() {
				t.Errorf("sum of cart = %d, TotalItems() = %d", sum, c.TotalItems())
			}
		})
	}
}

func TestSetCartQuantity_ZeroEntryStaysButNotInCart(t *testing.T) {
	c := New()
	if err := c.SetCartQuantity("p1", 0); err != nil {
		t.Fatalf("SetCartQuantity unexpected error: %v", err)
	}

	qty, ok := c.Cart()["p1"]
	if !ok || qty != 0 {
		t.Fatalf("Cart()[p1] = %d, %t, want 0, true", qty, ok)
	}
	if c.InCart("p1") {
		t.Error("InCart(p1) = true, want false for zero quantity")
	}
	if len(c.Lines()) != 0 {
		t.Errorf("Lines() = %v, want empty", c.Lines())
	}
}

func TestSetCartQuantity_RejectsInvalidInput(t *testing.T) {
	notifier := &recordingNotifier{}
	c := New(WithNotifier(notifier))
	if err := c.SetCartQuantity("p1", 3); err != nil {
		t.Fatalf("SetCartQuantity unexpected error: %v", err)
	}

	err := c.SetCartQuantity("p1", -1)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("SetCartQuantity(p1, -1) error = %v, want ErrNegativeQuantity", err)
	}
	err = c.SetCartQuantity("", 1)
	if !errors.Is(err, ErrEmptyProductID) {
		t.Errorf("SetCartQuantity(\"\", 1) error = %v, want ErrEmptyProductID", err)
	}
	err = c.SetCartQuantity("p2", math.MaxInt)
	if !errors.Is(err, ErrQuantityTooLarge) {
		t.Errorf("SetCartQuantity(p2, MaxInt) error = %v, want ErrQuantityTooLarge", err)
	}

	if diff := cmp.Diff(map[ProductID]int{"p1": 3}, c.Cart()); diff != "" {
		t.Errorf("cart changed by rejected input (-want +got):\n%s", diff)
	}
	if c.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", c.TotalItems())
	}
	if len(notifier.notices) != 1 {
		t.Errorf("got %d notices, want 1 (rejected input must not notify)", len(notifier.notices))
	}
}

func TestSetCartQuantity_TotalNeverOverflows(t *testing.T) {
	c := New()
	if err := c.SetCartQuantity("p1", math.MaxInt); err != nil {
		t.Fatalf("SetCartQuantity(p1, MaxInt) unexpected error: %v", err)
	}

	err := c.SetCartQuantity("p2", 1)
	if !errors.Is(err, ErrQuantityTooLarge) {
		t.Fatalf("SetCartQuantity(p2, 1) error = %v, want ErrQuantityTooLarge", err)
	}
	if c.TotalItems() != math.MaxInt {
		t.Errorf("TotalItems() = %d, want MaxInt", c.TotalItems())
	}

	// Replacing the same line only counts the new quantity.
	if err := c.SetCartQuantity("p1", 2); err != nil {
		t.Fatalf("SetCartQuantity(p1, 2) unexpected error: %v", err)
	}
	if err := c.SetCartQuantity("p2", 1); err != nil {
		t.Fatalf("SetCartQuantity(p2, 1) unexpected error: %v", err)
	}
	if c.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", c.TotalItems())
	}
}

func TestSetCartQuantity_NotifiesSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	c := New(WithNotifier(notifier))

	if err := c.SetCartQuantity("p1", 1); err != nil {
		t.Fatalf("SetCartQuantity unexpected error: %v", err)
	}

	want := []Notice{{
		Kind:        NoticeSuccess,
		Title:       "Added to cart",
		Description: "Product has been added to your cart",
		Duration:    DefaultNoticeDuration,
	}}
	if diff := cmp.Diff(want, notifier.notices); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
}

func TestCart_ReturnsCopy(t *testing.T) {
	c := New()
	_ = c.SetCartQuantity("p1", 2)

	cart := c.Cart()
	cart["p1"] = 100
	cart["p9"] = 1

	if c.Quantity("p1") != 2 {
		t.Errorf("Quantity(p1) = %d, want 2 after mutating the copy", c.Quantity("p1"))
	}
	if c.TotalItems() != 2 {
		t.Errorf("TotalItems() = %d, want 2", c.TotalItems())
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name       string
		screen     ScreenID
		wantNotice bool
	}{
		{name: "homepage is silent", screen: ScreenHomepage, wantNotice: false},
		{name: "cart notifies", screen: ScreenCart, wantNotice: true},
		{name: "placeholder notifies", screen: ScreenTeleconsult, wantNotice: true},
		{name: "unknown tag is stored", screen: "checkout-v2", wantNotice: true},
		{name: "empty tag is stored", screen: "", wantNotice: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			c := New(WithNotifier(notifier))

			n, notified := c.Navigate(tt.screen, nil)
			if c.Screen() != tt.screen {
				t.Errorf("Screen() = %q, want %q", c.Screen(), tt.screen)
			}
			if notified != tt.wantNotice {
				t.Errorf("Navigate notified = %t, want %t", notified, tt.wantNotice)
			}
			if tt.wantNotice {
				if len(notifier.notices) != 1 {
					t.Fatalf("got %d notices, want 1", len(notifier.notices))
				}
				if notifier.notices[0] != n {
					t.Errorf("emitted notice %+v, returned %+v", notifier.notices[0], n)
				}
				if n.Kind != NoticeInfo || n.Duration != DefaultNoticeDuration {
					t.Errorf("notice = %+v, want info with default duration", n)
				}
			} else if len(notifier.notices) != 0 {
				t.Errorf("got %d notices, want none", len(notifier.notices))
			}
		})
	}
}

func TestNavigate_KeepsPayloadAndCart(t *testing.T) {
	c := New()
	_ = c.SetCartQuantity("p1", 2)
	_ = c.SetCartQuantity("p2", 1)

	c.Navigate(ScreenProduct, ProductID("p2"))
	if got, ok := c.Payload().(ProductID); !ok || got != "p2" {
		t.Errorf("Payload() = %v, want p2", c.Payload())
	}

	c.Navigate(ScreenCart, nil)
	if c.Screen() != ScreenCart {
		t.Errorf("Screen() = %q, want cart", c.Screen())
	}
	if c.Payload() != nil {
		t.Errorf("Payload() = %v, want nil", c.Payload())
	}
	if diff := cmp.Diff(map[ProductID]int{"p1": 2, "p2": 1}, c.Cart()); diff != "" {
		t.Errorf("navigation changed cart (-want +got):\n%s", diff)
	}
	if c.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", c.TotalItems())
	}
}

func TestSetTheme_ExactlyOneMarker(t *testing.T) {
	root := newMarkerRoot()
	c := New(WithThemeApplier(root))

	steps := []struct {
		theme       ThemeID
		wantMarkers map[string]bool
	}{
		{ThemeDark, map[string]bool{"theme-dark": true}},
		{ThemeGradient, map[string]bool{"theme-gradient": true}},
		{ThemeDefault, map[string]bool{}},
		{ThemeDark, map[string]bool{"theme-dark": true}},
	}

	for _, s := range steps {
		if err := c.SetTheme(s.theme); err != nil {
			t.Fatalf("SetTheme(%q) unexpected error: %v", s.theme, err)
		}
		if c.Theme() != s.theme {
			t.Errorf("Theme() = %q, want %q", c.Theme(), s.theme)
		}
		if diff := cmp.Diff(s.wantMarkers, root.markers); diff != "" {
			t.Errorf("after SetTheme(%q) markers mismatch (-want +got):\n%s", s.theme, diff)
		}
	}
}

func TestSetTheme_Idempotent(t *testing.T) {
	root := newMarkerRoot()
	c := New(WithThemeApplier(root))
	start := root.applied

	for i := 0; i < 2; i++ {
		if err := c.SetTheme(ThemeGradient); err != nil {
			t.Fatalf("SetTheme unexpected error: %v", err)
		}
	}

	if c.Theme() != ThemeGradient {
		t.Errorf("Theme() = %q, want gradient", c.Theme())
	}
	if root.applied-start != 2 {
		t.Errorf("side effect ran %d times, want 2", root.applied-start)
	}
	if diff := cmp.Diff(map[string]bool{"theme-gradient": true}, root.markers); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestSetTheme_UnknownRejected(t *testing.T) {
	root := newMarkerRoot()
	c := New(WithThemeApplier(root))
	_ = c.SetTheme(ThemeDark)
	applied := root.applied

	err := c.SetTheme("solarized")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("SetTheme(solarized) error = %v, want ErrUnknownTheme", err)
	}
	if c.Theme() != ThemeDark {
		t.Errorf("Theme() = %q, want dark", c.Theme())
	}
	if root.applied != applied {
		t.Error("side effect ran for rejected theme")
	}
}

func TestScenario_CartThenNavigate(t *testing.T) {
	c := New()

	_ = c.SetCartQuantity("p1", 2)
	if diff := cmp.Diff(map[ProductID]int{"p1": 2}, c.Cart()); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
	if c.TotalItems() != 2 {
		t.Fatalf("TotalItems() = %d, want 2", c.TotalItems())
	}

	_ = c.SetCartQuantity("p2", 1)
	if c.TotalItems() != 3 {
		t.Fatalf("TotalItems() = %d, want 3", c.TotalItems())
	}

	c.Navigate(ScreenCart, nil)
	if c.Screen() != ScreenCart {
		t.Fatalf("Screen() = %q, want cart", c.Screen())
	}
	if diff := cmp.Diff(map[ProductID]int{"p1": 2, "p2": 1}, c.Cart()); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestScreenID_Known(t *testing.T) {
	for _, s := range Screens() {
		if !s.Known() {
			t.Errorf("%q.Known() = false, want true", s)
		}
	}
	if ScreenID("checkout").Known() {
		t.Error("checkout.Known() = true, want false")
	}
}

func TestLines_SortedNonZero(t *testing.T) {
	c := New()
	_ = c.SetCartQuantity("3", 1)
	_ = c.SetCartQuantity("1", 2)
	_ = c.SetCartQuantity("2", 0)

	if diff := cmp.Diff([]ProductID{"1", "3"}, c.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}
