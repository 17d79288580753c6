// Package tui provides the terminal storefront for MediQuick.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mediquick/mediquick/internal/tui/theme"
)

// Product card width including border.
const cardWidth = 30

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg        lipgloss.Color
	colorSurface   lipgloss.Color
	colorSelection lipgloss.Color
	colorBorder    lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorPrimary   lipgloss.Color
	colorAccent    lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorDanger    lipgloss.Color

	colorPrimarySoft lipgloss.Color
	colorAccentSoft  lipgloss.Color
	colorWarningSoft lipgloss.Color

	// App container
	AppStyle lipgloss.Style

	// Header bar
	HeaderStyle     lipgloss.Style
	BrandStyle      lipgloss.Style
	NavItemStyle    lipgloss.Style
	NavActiveStyle  lipgloss.Style
	CartBadgeStyle  lipgloss.Style
	ThemeBadgeStyle lipgloss.Style

	// Homepage hero
	HeroStyle         lipgloss.Style
	HeroTitleStyle    lipgloss.Style
	HeroSubtitleStyle lipgloss.Style

	SectionTitleStyle lipgloss.Style
	BodyStyle         lipgloss.Style
	MutedStyle        lipgloss.Style

	// Product cards
	CardStyle          lipgloss.Style
	CardSelectedStyle  lipgloss.Style
	CardTitleStyle     lipgloss.Style
	CardMetaStyle      lipgloss.Style
	PriceStyle         lipgloss.Style
	OriginalPriceStyle lipgloss.Style
	DiscountStyle      lipgloss.Style
	RxBadgeStyle       lipgloss.Style
	OTCBadgeStyle      lipgloss.Style
	InStockStyle       lipgloss.Style
	OutOfStockStyle    lipgloss.Style
	RatingStyle        lipgloss.Style
	AddButtonStyle     lipgloss.Style
	QuantityStyle      lipgloss.Style

	// Homepage sections
	CategoryStyle    lipgloss.Style
	PharmacyStyle    lipgloss.Style
	VerifiedStyle    lipgloss.Style
	TestimonialStyle lipgloss.Style
	BenefitStyle     lipgloss.Style

	// Toasts
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	// Footer
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	EmergencyStyle     lipgloss.Style

	// Splash and onboarding
	SplashTitleStyle    lipgloss.Style
	SplashSubtitleStyle lipgloss.Style
	StepActiveStyle     lipgloss.Style
	StepInactiveStyle   lipgloss.Style

	// Placeholder screens
	PlaceholderTitleStyle lipgloss.Style
	PlaceholderBodyStyle  lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMutedStyle        lipgloss.Style
	ModalSelectedStyle     lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorSurface = palette.Surface
	s.colorSelection = palette.Selection
	s.colorBorder = palette.Border
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorPrimary = palette.Primary
	s.colorAccent = palette.Accent
	s.colorSuccess = palette.Success
	s.colorWarning = palette.Warning
	s.colorDanger = palette.Danger
	s.colorPrimarySoft = palette.PrimarySoft
	s.colorAccentSoft = palette.AccentSoft
	s.colorWarningSoft = palette.WarningSoft

	base := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.AppStyle = base.Padding(0, 1)

	// Header bar sits on the surface color
	s.HeaderStyle = lipgloss.NewStyle().
		Background(s.colorSurface).
		Foreground(s.colorFg).
		Padding(0, 1)
	s.BrandStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorPrimary).
		Background(s.colorSurface)
	s.NavItemStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorSurface).
		Padding(0, 1)
	s.NavActiveStyle = s.NavItemStyle.
		Foreground(palette.TextOnPrimary).
		Background(s.colorPrimary).
		Bold(true)
	s.CartBadgeStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)
	s.ThemeBadgeStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorSurface).
		Italic(true)

	s.HeroStyle = lipgloss.NewStyle().
		Background(s.colorPrimarySoft).
		Foreground(s.colorFg).
		Padding(1, 2)
	s.HeroTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorPrimary).
		Background(s.colorPrimarySoft)
	s.HeroSubtitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorPrimarySoft)

	s.SectionTitleStyle = base.Bold(true).Foreground(s.colorPrimary)
	s.BodyStyle = base
	s.MutedStyle = base.Foreground(s.colorFgMuted)

	// Cards: rounded border, primary border when selected
	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBorder).
		BorderBackground(s.colorBg).
		Background(s.colorSurface).
		Foreground(s.colorFg).
		Width(cardWidth-2).
		Padding(0, 1)
	s.CardSelectedStyle = s.CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(s.colorPrimary).
		Background(s.colorSelection)
	s.CardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg)
	s.CardMetaStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.PriceStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorPrimary)
	s.OriginalPriceStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(s.colorFgMuted)
	s.DiscountStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)
	s.RxBadgeStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorWarningSoft).
		Padding(0, 1)
	s.OTCBadgeStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorAccentSoft).
		Padding(0, 1)
	s.InStockStyle = lipgloss.NewStyle().Foreground(s.colorSuccess)
	s.OutOfStockStyle = lipgloss.NewStyle().Foreground(s.colorDanger)
	s.RatingStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.AddButtonStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnPrimary).
		Background(s.colorPrimary).
		Bold(true).
		Padding(0, 1)
	s.QuantityStyle = lipgloss.NewStyle().
		Foreground(s.colorPrimary).
		Bold(true).
		Padding(0, 1)

	s.CategoryStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorBorder).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(0, 1)
	s.PharmacyStyle = base
	s.VerifiedStyle = base.Foreground(s.colorSuccess).Bold(true)
	s.TestimonialStyle = base.Italic(true).Foreground(s.colorFgMuted)
	s.BenefitStyle = base.Foreground(s.colorAccent).Bold(true)

	s.ToastInfoStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnPrimary).
		Background(s.colorPrimary).
		Padding(0, 1)
	s.ToastSuccessStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSuccess).
		Background(s.colorSuccess).
		Padding(0, 1)
	s.ToastErrorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnDanger).
		Background(s.colorDanger).
		Padding(0, 1)

	s.StatusStyle = base.Foreground(s.colorAccent)
	s.HelpStyle = base.Foreground(s.colorFgMuted)
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(0, 1)
	s.PromptFocusedStyle = s.PromptStyle.BorderForeground(s.colorPrimary)
	s.EmergencyStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnDanger).
		Background(s.colorDanger).
		Bold(true).
		Padding(0, 1)

	s.SplashTitleStyle = base.Bold(true).Foreground(s.colorPrimary)
	s.SplashSubtitleStyle = base.Foreground(s.colorFgMuted)
	s.StepActiveStyle = base.Foreground(s.colorPrimary).Bold(true)
	s.StepInactiveStyle = base.Foreground(s.colorFgMuted)

	s.PlaceholderTitleStyle = base.Bold(true).Foreground(s.colorPrimary)
	s.PlaceholderBodyStyle = base.Foreground(s.colorFgMuted)

	modal := palette.Modal
	s.ModalBgColor = modal.Bg
	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2)
	s.ModalHeaderStyle = lipgloss.NewStyle().Background(modal.Bg)
	s.ModalFooterStyle = lipgloss.NewStyle().Background(modal.Bg).Foreground(modal.Muted)
	s.ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(modal.Border).Background(modal.Bg)
	s.ModalBodyStyle = lipgloss.NewStyle().Foreground(modal.Text).Background(modal.Bg)
	s.ModalMutedStyle = lipgloss.NewStyle().Foreground(modal.Muted).Background(modal.Bg)
	s.ModalSelectedStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnPrimary).
		Background(s.colorPrimary).
		Bold(true)
	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg).
		Padding(0, 1)
	s.ModalButtonActiveStyle = s.ModalButtonStyle.
		Foreground(palette.TextOnPrimary).
		Background(s.colorPrimary).
		Bold(true)

	return s
}
