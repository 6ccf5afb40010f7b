package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	AddProject    string `yaml:"add_project"`
	ViewProject   string `yaml:"view_project"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Navigation
	PrevLane string `yaml:"prev_lane"`
	NextLane string `yaml:"next_lane"`
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddProject:    "a",
		ViewProject:   " ",
		MoveCardLeft:  "H",
		MoveCardRight: "L",

		PrevLane: "h",
		NextLane: "l",
		PrevCard: "k",
		NextCard: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddProject == "" {
		k.AddProject = defaults.AddProject
	}
	if k.ViewProject == "" {
		k.ViewProject = defaults.ViewProject
	}
	if k.MoveCardLeft == "" {
		k.MoveCardLeft = defaults.MoveCardLeft
	}
	if k.MoveCardRight == "" {
		k.MoveCardRight = defaults.MoveCardRight
	}
	if k.PrevLane == "" {
		k.PrevLane = defaults.PrevLane
	}
	if k.NextLane == "" {
		k.NextLane = defaults.NextLane
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
