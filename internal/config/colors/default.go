package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Delete: "#FF0000",

		// UI elements
		LaneBorder:     "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Warnings
		WarningFg: "#FFD700",
		WarningBg: "#875F00",

		// Status bar
		StatusBarBg:   "#874BFD",
		StatusBarText: "#D0D0D0",
	}
}
