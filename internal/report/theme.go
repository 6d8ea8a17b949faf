package report

import (
	"charm.land/lipgloss/v2"

	"github.com/triagekit/triagetree/internal/priority"
)

// Color palette, high-contrast on dark terminals.
var (
	colorLifeThreat = lipgloss.Color("#F43F5E") // Rose
	colorSafety     = lipgloss.Color("#F97316") // Orange
	colorPhysical   = lipgloss.Color("#EAB308") // Amber
	colorProcess    = lipgloss.Color("#14B8A6") // Teal
	colorText       = lipgloss.Color("#F8FAFC") // White
	colorDim        = lipgloss.Color("#94A3B8") // Slate
	colorGood       = lipgloss.Color("#22C55E") // Green
	colorBad        = lipgloss.Color("#F43F5E") // Rose
	colorBorder     = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleChosen = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGood)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorBad).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

// tierStyles maps each tier to its color.
var tierStyles = map[priority.Tier]lipgloss.Style{
	priority.TierLifeThreat:     lipgloss.NewStyle().Foreground(colorLifeThreat).Bold(true),
	priority.TierSafety:         lipgloss.NewStyle().Foreground(colorSafety).Bold(true),
	priority.TierPhysicalNeed:   lipgloss.NewStyle().Foreground(colorPhysical),
	priority.TierNursingProcess: lipgloss.NewStyle().Foreground(colorProcess),
}
