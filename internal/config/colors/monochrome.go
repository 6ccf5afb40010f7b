package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Semantic
		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		// UI elements
		LaneBorder:     "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Warnings
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
