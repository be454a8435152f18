package chart

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, shared with the interactive view.
const (
	ColorBlue     lipgloss.Color = "#89b4fa"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorSubtext0 lipgloss.Color = "#a6adc8"
	ColorOverlay1 lipgloss.Color = "#7f849c"
	ColorSurface2 lipgloss.Color = "#585b70"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	labelStyle = lipgloss.NewStyle().Foreground(ColorSubtext0)
	axisStyle  = lipgloss.NewStyle().Foreground(ColorOverlay1)
	barStyle   = lipgloss.NewStyle().Foreground(ColorBlue)
	peakStyle  = lipgloss.NewStyle().Foreground(ColorPeach)
	trackStyle = lipgloss.NewStyle().Foreground(ColorSurface2)
)
