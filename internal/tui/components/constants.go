package components

const (
	// laneWidth is the fixed outer width of a lane
	laneWidth = 36

	// cardWidth is the fixed outer width of a card inside a lane
	cardWidth = 32

	// CardHeight is the fixed height of a rendered card, borders included
	CardHeight = 5

	// cardTitleMaxLength is where card titles get truncated
	cardTitleMaxLength = 26

	// cardDescriptionMaxLength is where the one-line description preview
	// gets truncated
	cardDescriptionMaxLength = 26
)
