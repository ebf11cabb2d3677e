package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (teal #2DD4BF): file paths, highlights
// - Muted (gray): hints, secondary info
// - Status is conveyed by symbols, not colored text

var (
	// Accent style for file paths and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))

	// Muted style for hints and secondary info
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis and section headers
	Bold = lipgloss.NewStyle().Bold(true)
)
