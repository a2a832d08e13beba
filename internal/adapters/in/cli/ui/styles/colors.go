// Package styles provides the lipgloss theme used by corral's CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")

	Amber  = lipgloss.Color("#f59e0b")
	Green  = lipgloss.Color("#00cc6a")
	Cyan   = lipgloss.Color("#00a0cc")
	Red    = lipgloss.Color("#ff4444")
	Yellow = lipgloss.Color("#fbbf24")

	// Semantic colors
	ColorPrimary = Amber
	ColorSuccess = Green
	ColorWarning = Yellow
	ColorError   = Red
	ColorInfo    = Cyan

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
	ColorBg        = lipgloss.Color("#000000")
)
