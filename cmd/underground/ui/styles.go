// Package ui provides the visual styling for the Electron Underground TUI.
// Punk palette: hot pink on black, cyan electrons, yellow warnings.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"underground/internal/orbital"
)

// Brand palette
var (
	Pink   = lipgloss.Color("#FF007F")
	Cyan   = lipgloss.Color("#22D3EE")
	Yellow = lipgloss.Color("#FACC15")
	Red    = lipgloss.Color("#EF4444")
	Green  = lipgloss.Color("#4ADE80")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0A0A0A")
	DarkForeground = lipgloss.Color("#F5F5F5")
	DarkMuted      = lipgloss.Color("#6B7280")
	DarkBorder     = lipgloss.Color("#374151")
	DarkCard       = lipgloss.Color("#1A1A1A")

	// Light Mode Colors
	LightBackground = lipgloss.Color("#FAFAFA")
	LightForeground = lipgloss.Color("#111111")
	LightMuted      = lipgloss.Color("#9CA3AF")
	LightBorder     = lipgloss.Color("#D1D5DB")
	LightCard       = lipgloss.Color("#FFFFFF")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    Pink,
		Accent:     Cyan,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    Pink,
		Accent:     lipgloss.Color("#0891B2"),
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DetectTheme resolves a ui.theme setting. "auto" inspects COLORFGBG and
// otherwise defaults to dark, the venue's natural lighting.
func DetectTheme(setting string) Theme {
	switch strings.ToLower(setting) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	}

	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil && (bgIdx == 7 || (bgIdx >= 9 && bgIdx <= 15)) {
			return LightTheme()
		}
	}
	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Panel   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Pit
	Notation  lipgloss.Style
	Label     lipgloss.Style
	Box       lipgloss.Style
	BoxFull   lipgloss.Style
	BoxCursor lipgloss.Style
	SpinUp    lipgloss.Style
	SpinDown  lipgloss.Style
	ModeAuto  lipgloss.Style
	ModeHand  lipgloss.Style

	// Chat
	UserInput  lipgloss.Style
	TutorReply lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Spinner lipgloss.Style
	Divider lipgloss.Style
	Badge   lipgloss.Style
	Tab     lipgloss.Style
	TabOn   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	box := lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Notation: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Width(4).
			Align(lipgloss.Right),

		Box: box,

		BoxFull: box.BorderForeground(theme.Primary),

		BoxCursor: box.BorderForeground(Yellow).
			BorderStyle(lipgloss.ThickBorder()),

		SpinUp: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		SpinDown: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		ModeAuto: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		ModeHand: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		TutorReply: lipgloss.NewStyle().
			Foreground(theme.Primary).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary),

		Success: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(Yellow).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		TabOn: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true),
	}
}

// BlockColor is the block-map colour for an s, p or d element.
func BlockColor(block orbital.Letter) lipgloss.Color {
	switch block {
	case orbital.LetterP:
		return Pink
	case orbital.LetterD:
		return Yellow
	default:
		return Cyan
	}
}

// Logo returns the header banner
func Logo(s Styles) string {
	return s.Header.Render("ELECTRON UNDERGROUND")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", max(width, 0)))
}
