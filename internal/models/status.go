package models

// Status identifies which lane a project lives in
type Status int

const (
	StatusActive Status = iota
	StatusFinished
)

// Statuses returns all statuses in board order, left to right.
// Each status corresponds to exactly one lane.
func Statuses() []Status {
	return []Status{StatusActive, StatusFinished}
}

// String returns the lowercase identifier used in logs
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// LaneTitle returns the header text for the lane holding this status
func (s Status) LaneTitle() string {
	switch s {
	case StatusActive:
		return "Active Projects"
	case StatusFinished:
		return "Finished Projects"
	default:
		return "Unknown"
	}
}
