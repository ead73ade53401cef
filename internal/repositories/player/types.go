package player

import "github.com/fkoehler/spielstand/internal/models"

type SavePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type ListPlayersInput struct {
}

type ListPlayersOutput struct {
	Players []*models.Player
}
