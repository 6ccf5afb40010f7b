package theme

import "github.com/plankboard/plank/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	LaneBorder     string
	SelectedBorder string
	SelectedBg     string
	CardBg         string
	Title          string
	WarningFg      string
	WarningBg      string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Delete = scheme.Delete
	LaneBorder = scheme.LaneBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	CardBg = scheme.CardBackground
	Title = scheme.Title
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
