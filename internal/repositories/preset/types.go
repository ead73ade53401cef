package preset

import "github.com/fkoehler/spielstand/internal/models"

type SavePresetInput struct {
	Preset *models.Preset
}

type GetPresetInput struct {
	Name string
}

type ListPresetsInput struct {
}

type ListPresetsOutput struct {
	Presets []*models.Preset
}

type DeletePresetInput struct {
	Name string
}
