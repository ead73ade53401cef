package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fkoehler/spielstand/internal/repositories/player Repository

import (
	"context"

	"github.com/fkoehler/spielstand/internal/models"
)

// Repository defines the interface for player registry persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers retrieves all registered players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
