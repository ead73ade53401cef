package preset

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fkoehler/spielstand/internal/repositories/preset Repository

import (
	"context"

	"github.com/fkoehler/spielstand/internal/models"
)

// Repository defines the interface for participant preset persistence
type Repository interface {
	// SavePreset persists a named participant list
	SavePreset(ctx context.Context, input *SavePresetInput) error

	// GetPreset retrieves a preset by name
	GetPreset(ctx context.Context, input *GetPresetInput) (*models.Preset, error)

	// ListPresets retrieves all saved presets
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// DeletePreset removes a preset
	DeletePreset(ctx context.Context, input *DeletePresetInput) error
}
