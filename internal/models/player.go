package models

import (
	"time"
)

// Player represents a person that can take part in game sessions
type Player struct {
	// ID is the stable unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// CreatedAt is when the player was first registered
	CreatedAt time.Time
}
