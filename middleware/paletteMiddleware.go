package middleware

import (
	"missensecolor/contexts"
	"missensecolor/models/constants/palette"
	"net/http"

	"github.com/labstack/echo"
)

/*
Echo middleware to prepare the context for an optionally provided `palette` HTTP query parameter
*/
func CalibrateOptionalPaletteAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		mc := c.(*contexts.MissenseContext)

		paletteQP := c.QueryParam("palette")
		if len(paletteQP) == 0 {
			mc.Palette = palette.Default
			return next(mc)
		}

		if !palette.IsKnownPalette(paletteQP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown 'palette'! Check /palettes for the available ones")
		}

		mc.Palette = palette.CastToPalette(paletteQP)
		return next(mc)
	}
}

/*
Echo middleware to ensure a valid `:palette` path parameter was provided
*/
func MandatePalettePathParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		mc := c.(*contexts.MissenseContext)

		paletteParam := c.Param("palette")
		if !palette.IsKnownPalette(paletteParam) {
			return echo.NewHTTPError(http.StatusNotFound, "Unknown palette!")
		}

		mc.Palette = palette.CastToPalette(paletteParam)
		return next(mc)
	}
}
