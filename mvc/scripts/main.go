package scripts

import (
	"fmt"
	"missensecolor/models"
	"missensecolor/mvc"
	"net/http"

	"github.com/labstack/echo"
)

const RunIdHeader = "X-Run-Id"

func GetStructureScript(c echo.Context) error {
	scriptService, pdbId, palette := mvc.RetrieveCommonElements(c)

	run, err := scriptService.StructureScript(c.Request().Context(), pdbId, palette)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondWithScript(c, run)
}

func GetModelScript(c echo.Context) error {
	scriptService, uniprotId, palette := mvc.RetrieveCommonElements(c)

	run, err := scriptService.ModelScript(c.Request().Context(), uniprotId, palette)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respondWithScript(c, run)
}

func respondWithScript(c echo.Context, run *models.ScriptRun) error {
	c.Response().Header().Set(RunIdHeader, run.Id.String())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_missense_coloring_chimerax.cxc", run.Accession)))
	return c.String(http.StatusOK, run.Script.String())
}
