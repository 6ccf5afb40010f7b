// Package components provides reusable board components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/config/colors"
	"github.com/plankboard/plank/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// LaneStyle defines the appearance of board lanes
	LaneStyle lipgloss.Style

	// CardStyle defines the appearance of individual projects as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (lane headers, app header)
	TitleStyle lipgloss.Style

	// HeaderStyle defines the board header line
	HeaderStyle lipgloss.Style

	// FormBoxStyle defines the base style for the project form (green border)
	FormBoxStyle lipgloss.Style

	// WarningBoxStyle defines the blocking validation warning (red border)
	WarningBoxStyle lipgloss.Style

	// DetailBoxStyle defines the project detail overlay
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help screen
	HelpBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// EmptyLaneStyle defines the placeholder shown in lanes with no cards
	EmptyLaneStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	LaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.LaneBorder)).
		Padding(0, 1).
		Width(laneWidth)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(0, 1).
		Width(cardWidth)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Title)).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		Padding(0, 1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	WarningBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg)).
		Padding(1, 3).
		Bold(true)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.LaneBorder)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Align(lipgloss.Center)

	EmptyLaneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true).
		Padding(1, 0)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Padding(0, 1)
}
