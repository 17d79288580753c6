// Package viewstate owns the storefront's navigation, cart and theme state.
//
// A Controller is constructed explicitly and handed to the view layer by
// pointer. All mutation goes through its methods; views only read.
package viewstate

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"go.uber.org/zap"
)

// Validation errors.
var (
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrEmptyProductID   = errors.New("product id cannot be empty")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrQuantityTooLarge = errors.New("cart total would overflow")
)

// ScreenID identifies a top-level view.
type ScreenID string

const (
	ScreenHomepage           ScreenID = "homepage"
	ScreenSearch             ScreenID = "search"
	ScreenCart               ScreenID = "cart"
	ScreenProduct            ScreenID = "product"
	ScreenPrescriptionUpload ScreenID = "prescription-upload"
	ScreenProfile            ScreenID = "profile"
	ScreenSymptomChecker     ScreenID = "ai-symptom-checker"
	ScreenHealthInsights     ScreenID = "health-insights"
	ScreenCommunity          ScreenID = "community"
	ScreenSustainability     ScreenID = "sustainability"
	ScreenTeleconsult        ScreenID = "teleconsult"
	ScreenEmergency          ScreenID = "emergency"
)

// Screens returns every known screen tag.
func Screens() []ScreenID {
	return []ScreenID{
		ScreenHomepage, ScreenSearch, ScreenCart, ScreenProduct,
		ScreenPrescriptionUpload, ScreenProfile, ScreenSymptomChecker,
		ScreenHealthInsights, ScreenCommunity, ScreenSustainability,
		ScreenTeleconsult, ScreenEmergency,
	}
}

// Known reports whether s is one of the recognized screen tags.
func (s ScreenID) Known() bool {
	return slices.Contains(Screens(), s)
}

// ThemeID selects a named palette.
type ThemeID string

const (
	ThemeDefault  ThemeID = "default"
	ThemeGradient ThemeID = "gradient"
	ThemeDark     ThemeID = "dark"
)

// Valid reports whether the theme is one of the named palettes.
func (t ThemeID) Valid() bool {
	switch t {
	case ThemeDefault, ThemeGradient, ThemeDark:
		return true
	default:
		return false
	}
}

// ProductID is an opaque product identifier.
type ProductID string

// ThemeApplier receives the global theme side effect.
type ThemeApplier interface {
	ApplyTheme(id ThemeID)
}

// ThemeApplierFunc adapts a function to ThemeApplier.
type ThemeApplierFunc func(id ThemeID)

// ApplyTheme calls f(id).
func (f ThemeApplierFunc) ApplyTheme(id ThemeID) { f(id) }

// Controller holds the active screen, cart contents and active theme.
type Controller struct {
	screen  ScreenID
	payload any
	cart    map[ProductID]int
	total   int
	theme   ThemeID

	notifier Notifier
	applier  ThemeApplier
	logger   *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier routes notices to n.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithThemeApplier routes the theme side effect to a.
func WithThemeApplier(a ThemeApplier) Option {
	return func(c *Controller) {
		if a != nil {
			c.applier = a
		}
	}
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialTheme starts the controller on a theme other than default.
// Invalid themes are ignored.
func WithInitialTheme(id ThemeID) Option {
	return func(c *Controller) {
		if id.Valid() {
			c.theme = id
		}
	}
}

// New creates a controller in its start state: homepage, empty cart, default theme.
func New(opts ...Option) *Controller {
	c := &Controller{
		screen:   ScreenHomepage,
		cart:     make(map[ProductID]int),
		theme:    ThemeDefault,
		notifier: NopNotifier{},
		applier:  ThemeApplierFunc(func(ThemeID) {}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.applier.ApplyTheme(c.theme)
	return c
}

// Navigate makes screen the active screen. Any tag is accepted; mapping
// unknown tags to a view is the renderer's job. Every destination except
// the homepage produces an info notice, which is also returned.
func (c *Controller) Navigate(screen ScreenID, payload any) (Notice, bool) {
	from := c.screen
	c.screen = screen
	c.payload = payload

	c.logger.Debug("navigate",
		zap.String("from", string(from)),
		zap.String("to", string(screen)),
		zap.Bool("known", screen.Known()),
	)

	if screen == ScreenHomepage {
		return Notice{}, false
	}
	n := Notice{
		Kind:        NoticeInfo,
		Title:       fmt.Sprintf("Navigating to %s", screen),
		Description: fmt.Sprintf("%s functionality coming soon", screen),
		Duration:    DefaultNoticeDuration,
	}
	c.notifier.Notify(n)
	return n, true
}

// SetCartQuantity replaces the stored quantity for id. Zero is stored as
// zero, not removed. Negative quantities, empty ids and quantities that
// would overflow the cart total are rejected and leave the cart unchanged.
func (c *Controller) SetCartQuantity(id ProductID, quantity int) error {
	if id == "" {
		return ErrEmptyProductID
	}
	if quantity < 0 {
		return fmt.Errorf("setting %s to %d: %w", id, quantity, ErrNegativeQuantity)
	}
	if rest := c.total - c.cart[id]; quantity > math.MaxInt-rest {
		return fmt.Errorf("setting %s to %d: %w", id, quantity, ErrQuantityTooLarge)
	}

	c.total += quantity - c.cart[id]
	c.cart[id] = quantity

	c.logger.Debug("set cart quantity",
		zap.String("product", string(id)),
		zap.Int("quantity", quantity),
		zap.Int("total", c.total),
	)

	c.notifier.Notify(Notice{
		Kind:        NoticeSuccess,
		Title:       "Added to cart",
		Description: "Product has been added to your cart",
		Duration:    DefaultNoticeDuration,
	})
	return nil
}

// SetTheme replaces the active theme and reapplies the root marker, even
// when the theme did not change.
func (c *Controller) SetTheme(id ThemeID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	c.logger.Debug("set theme",
		zap.String("from", string(c.theme)),
		zap.String("to", string(id)),
	)
	c.theme = id
	c.applier.ApplyTheme(id)
	return nil
}

// Screen returns the active screen tag.
func (c *Controller) Screen() ScreenID {
	return c.screen
}

// Payload returns the data passed with the last navigation.
func (c *Controller) Payload() any {
	return c.payload
}

// Cart returns a copy of the cart mapping.
func (c *Controller) Cart() map[ProductID]int {
	return maps.Clone(c.cart)
}

// Quantity returns the stored quantity for id, zero when absent.
func (c *Controller) Quantity(id ProductID) int {
	return c.cart[id]
}

// InCart reports whether id is displayed as in the cart.
func (c *Controller) InCart(id ProductID) bool {
	return c.cart[id] > 0
}

// Lines returns product ids with a non-zero quantity, sorted.
func (c *Controller) Lines() []ProductID {
	ids := make([]ProductID, 0, len(c.cart))
	for id, qty := range c.cart {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// TotalItems returns the sum of all stored quantities.
func (c *Controller) TotalItems() int {
	return c.total
}

// Theme returns the active theme.
func (c *Controller) Theme() ThemeID {
	return c.theme
}
