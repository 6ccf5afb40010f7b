package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation form
	Delete string `yaml:"delete"` // Red - validation warnings

	// UI element colors
	LaneBorder     string `yaml:"lane_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Warning banner colors (foreground/background pair)
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If a preset name is set, that preset is the base; custom values win.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.LaneBorder == "" {
		c.LaneBorder = preset.LaneBorder
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.CardBackground == "" {
		c.CardBackground = preset.CardBackground
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.WarningFg == "" {
		c.WarningFg = preset.WarningFg
	}
	if c.WarningBg == "" {
		c.WarningBg = preset.WarningBg
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
}

// MergeFrom overrides this scheme with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.LaneBorder != "" {
		c.LaneBorder = other.LaneBorder
	}
	if other.CardBorder != "" {
		c.CardBorder = other.CardBorder
	}
	if other.CardBackground != "" {
		c.CardBackground = other.CardBackground
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.WarningFg != "" {
		c.WarningFg = other.WarningFg
	}
	if other.WarningBg != "" {
		c.WarningBg = other.WarningBg
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
}
