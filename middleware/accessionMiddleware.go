package middleware

import (
	"fmt"
	"missensecolor/contexts"
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `pdb` HTTP query parameter was provided
*/
func MandatePdbIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return mandateAccession("pdb", next)
}

/*
Echo middleware to ensure a `uniprot` HTTP query parameter was provided
*/
func MandateUniprotIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return mandateAccession("uniprot", next)
}

func mandateAccession(queryParam string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		mc := c.(*contexts.MissenseContext)

		accession := strings.TrimSpace(c.QueryParam(queryParam))
		if len(accession) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Missing '%s' query parameter!", queryParam))
		}

		mc.Accession = accession
		return next(mc)
	}
}
