package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Theme contains the visual styles for the scene and its HUD.
type Theme struct {
	// Scene cell colors, indexed by core.Color
	Cells map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDStatus    lipgloss.Style
}

// DefaultTheme returns the default space palette.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorStarDim: lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Dim gray
			core.ColorStar:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // White
			core.ColorRock:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")), // Tan
			core.ColorRockFar: lipgloss.NewStyle().Foreground(lipgloss.Color("95")),  // Dark brown
			core.ColorLaser:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
			core.ColorCraft:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
			core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		},

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// MonochromeTheme drops all colors, for terminals where NO_COLOR is set.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Cells {
		theme.Cells[c] = lipgloss.NewStyle()
	}
	theme.Cells[core.ColorCraft] = lipgloss.NewStyle().Bold(true)
	theme.Cells[core.ColorAlert] = lipgloss.NewStyle().Bold(true)
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.HUDLabel = lipgloss.NewStyle()
	theme.HUDValue = lipgloss.NewStyle()
	theme.HUDSeparator = lipgloss.NewStyle()
	theme.HUDStatus = lipgloss.NewStyle().Bold(true)
	return theme
}
