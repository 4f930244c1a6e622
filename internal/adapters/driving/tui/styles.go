package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates a translated file.
	Success lipgloss.Color

	// Warning indicates work in flight.
	Warning lipgloss.Color

	// Error indicates a failed file.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#7C3AED"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme Theme

	// Title style for the header.
	Title lipgloss.Style

	// Normal style for list rows.
	Normal lipgloss.Style

	// Selected style for the highlighted row.
	Selected lipgloss.Style

	// Muted style for secondary text and key help.
	Muted lipgloss.Style

	// Error style for the message line.
	Error lipgloss.Style

	// Footer style for the status bar.
	Footer lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),
		Normal:   lipgloss.NewStyle().Foreground(theme.Foreground),
		Selected: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),
	}
}

// Status returns the style for a file status.
func (s Styles) Status(status domain.FileStatus) lipgloss.Style {
	switch status {
	case domain.StatusTranslated:
		return lipgloss.NewStyle().Foreground(s.theme.Success)
	case domain.StatusError:
		return lipgloss.NewStyle().Foreground(s.theme.Error)
	case domain.StatusTranslating:
		return lipgloss.NewStyle().Foreground(s.theme.Warning)
	default:
		return lipgloss.NewStyle().Foreground(s.theme.Muted)
	}
}
