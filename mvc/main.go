package mvc

import (
	"missensecolor/contexts"
	"missensecolor/models/constants"
	scriptsService "missensecolor/services/scripts"

	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*scriptsService.ScriptService, string, constants.Palette) {
	mc := c.(*contexts.MissenseContext)
	return mc.ScriptService, mc.Accession, mc.Palette
}
