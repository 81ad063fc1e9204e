package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/liquid"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - opening
	colorGreen  = lipgloss.Color("35")  // Green - settled
	colorYellow = lipgloss.Color("220") // Amber - closing
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray)
	StyleDim   = lipgloss.NewStyle().Foreground(colorDim)

	styleOpening = lipgloss.NewStyle().Foreground(colorCyan)
	styleClosing = lipgloss.NewStyle().Foreground(colorYellow)
	styleIdle    = lipgloss.NewStyle().Foreground(colorGreen)
)

// StyleState returns the style for a cascade state.
func StyleState(s liquid.State) lipgloss.Style {
	switch s {
	case liquid.StateOpening:
		return styleOpening
	case liquid.StateClosing:
		return styleClosing
	default:
		return styleIdle
	}
}
