package contexts

import (
	"missensecolor/models"
	"missensecolor/models/constants"
	scriptsService "missensecolor/services/scripts"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the configuration, the script service and
	//  values calibrated by middleware
	MissenseContext struct {
		echo.Context
		Config        *models.Config
		ScriptService *scriptsService.ScriptService

		Palette   constants.Palette
		Accession string
	}
)
