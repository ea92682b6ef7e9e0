package dtos

import (
	"missensecolor/models"
	"missensecolor/models/constants"
)

type PaletteDTO struct {
	Name     constants.Palette `json:"name"`
	Colormap string            `json:"colormap"`
}

type PalettesResponseDTO struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Default string       `json:"default"`
	Results []PaletteDTO `json:"results"`
}

type PaletteKeyResponseDTO struct {
	Status  int                `json:"status"`
	Message string             `json:"message"`
	Palette constants.Palette  `json:"palette"`
	Command string             `json:"command"`
	Stops   []models.ColorStop `json:"stops"`
}
