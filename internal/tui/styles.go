// Package tui provides the terminal UI using Bubble Tea: the cooking
// wizard and the styled output helpers the CLI commands print with.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenhamou/souschef/internal/theme"
)

// Styles holds the lipgloss styles derived from a resolved color set.
// Every view renders through these so a theme change recolors the whole
// app at once.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Urgent    lipgloss.Style
	Selected  lipgloss.Style
	Timer     lipgloss.Style
	TimerDone lipgloss.Style
	Bar       lipgloss.Style
	Favorite  lipgloss.Style

	// AccentHex is the raw primary color, for widgets that take a color
	// value instead of a style.
	AccentHex string
}

// NewStyles maps resolved theme tokens onto the style set.
func NewStyles(c theme.Colors) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)),
		Primary: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)),
		Secondary: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtext1)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtext0)),
		Urgent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8")).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Base)).
			Background(lipgloss.Color(c.Primary)).
			Bold(true),
		Timer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Bold(true),
		TimerDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8")).
			Bold(true).
			Blink(true),
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color(c.Surface)).
			Foreground(lipgloss.Color(c.OnSurface)),
		Favorite: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)),
		AccentHex: c.Primary,
	}
}
