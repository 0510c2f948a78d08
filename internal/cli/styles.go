// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/partsense/partsense/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#F4A261")
	// SuccessColor indicates confident results.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates uncertain results.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates failures and lost demand.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats confident output.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats uncertain output.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats failure output.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))
)

// ConfidenceStyle returns the style for one confidence level.
func ConfidenceStyle(level model.ConfidenceLevel) lipgloss.Style {
	switch level {
	case model.ConfidenceHigh:
		return SuccessStyle
	case model.ConfidenceMedium:
		return WarningStyle
	case model.ConfidenceLow:
		return SubtleStyle
	default:
		return ErrorStyle
	}
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// FormatError formats an error message.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}

// FormatSuccess formats a success message.
func FormatSuccess(message string) string {
	return SuccessStyle.Render("✓ " + message)
}
