package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Single accent color, everything else stays neutral.
const (
	ColorAccent   = "39"  // picker highlight - deep sky blue
	ColorWhite    = "255" // headers, important text
	ColorGray     = "245" // secondary text, labels
	ColorDarkGray = "238" // borders, separators
	ColorRed      = "196" // errors
	ColorYellow   = "220" // warnings
)

// Styles holds the lipgloss styles for interactive components.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Category lipgloss.Style
	Help     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the styled components for TTY mode.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle(),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Category: lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle(),
		Warning:  lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor || DetectNoColor() {
		return NoColorStyles()
	}
	return DefaultStyles()
}
