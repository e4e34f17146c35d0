// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Shared color palette, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is teal - titles, headers, and primary emphasis.
	ColorPrimary = lipgloss.Color("#2DD4BF")

	// ColorMuted is gray - secondary text and de-emphasized content.
	ColorMuted = lipgloss.Color("#71717A")

	// ColorSuccess is green - installed artifacts and positive outcomes.
	ColorSuccess = lipgloss.Color("#22C55E")

	// ColorError is red - failures and batch-fatal conditions.
	ColorError = lipgloss.Color("#DC2626")

	// ColorWarning is amber - skipped artifacts and caution states.
	ColorWarning = lipgloss.Color("#D97706")

	// ColorHighlight is blue - commands, coordinates, and paths.
	ColorHighlight = lipgloss.Color("#60A5FA")

	// ColorVerbose is light gray - verbose output and supplementary detail.
	ColorVerbose = lipgloss.Color("#A1A1AA")
)

// Reusable lipgloss styles built from the palette. Call sites may extend
// them with margins or padding.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and skip notices.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names, coordinates, and paths.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for verbose output and supplementary information.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)
)
