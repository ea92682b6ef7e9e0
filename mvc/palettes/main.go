package palettes

import (
	"missensecolor/contexts"
	"missensecolor/models/constants/palette"
	"missensecolor/models/dtos"
	colorsService "missensecolor/services/colors"
	"net/http"

	"github.com/labstack/echo"
)

func GetPalettes(c echo.Context) error {
	results := make([]dtos.PaletteDTO, 0, len(palette.Names))
	for _, name := range palette.Names {
		results = append(results, dtos.PaletteDTO{
			Name:     name,
			Colormap: palette.ColormapNames[name],
		})
	}

	return c.JSON(http.StatusOK, dtos.PalettesResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Default: string(palette.Default),
		Results: results,
	})
}

func GetPaletteKey(c echo.Context) error {
	p := c.(*contexts.MissenseContext).Palette

	stops, err := colorsService.Legend(p)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	command, err := colorsService.KeyCommand(p)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dtos.PaletteKeyResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Palette: p,
		Command: command,
		Stops:   stops,
	})
}
