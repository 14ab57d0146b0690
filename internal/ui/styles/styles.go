// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the prompt and static output packages.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI; replaced by Init.
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for the cursor row (pink)
	Accent color.Color = DefaultTheme.Accent

	// Success is used for checked marks (green)
	Success color.Color = DefaultTheme.Success

	// Error is used for command errors (red)
	Error color.Color = DefaultTheme.Error

	// Muted is used for disabled rows and help text (gray)
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color (light gray)
	Normal color.Color = DefaultTheme.Normal

	// Info is used for the prompt message (gray)
	Info color.Color = DefaultTheme.Info

	// Warning is used for the filter line (orange)
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

// Prompt styles
var (
	// TitleStyle renders the prompt title
	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// GroupStyle renders group header rows
	GroupStyle = lipgloss.NewStyle().Foreground(Normal).Bold(true)

	// HighlightStyle marks fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
)
