package models

import "time"

// Project represents a single card on the board
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}
