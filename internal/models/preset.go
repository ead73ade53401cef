package models

import (
	"time"
)

// Preset is a named reusable participant list for quickly starting a
// session with a known group
type Preset struct {
	// Name is the unique label of the preset
	Name string

	// PlayerIDs contains the participants in seating order
	PlayerIDs []string

	// CreatedAt is when the preset was saved
	CreatedAt time.Time
}
