package main

import (
	"io"
	"missensecolor/contexts"
	mcm "missensecolor/middleware"
	"missensecolor/models"
	serviceInfo "missensecolor/models/constants/service-info"
	palettesMvc "missensecolor/mvc/palettes"
	scriptsMvc "missensecolor/mvc/scripts"
	serviceInfoMvc "missensecolor/mvc/service-info"
	annotationsService "missensecolor/services/annotations"
	mappingsService "missensecolor/services/mappings"
	scriptsService "missensecolor/services/scripts"
	"missensecolor/utils"
	"net/http"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func newServeCommand(cfg *models.Config, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the colouring scripts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.NewLogger(cfg.Debug, stderr)

			logger.Infof("Using : PDBe mappings %s ; AlphaFold predictions %s ; HTTP timeout %s",
				cfg.Pdbe.MappingsUrl, cfg.AlphaFold.PredictionUrl, cfg.Http.Timeout)
			logger.Infof("Running on Port : %s", cfg.Api.Port)

			return newServer(cfg, logger).Start(":" + cfg.Api.Port)
		},
	}
}

func newServer(cfg *models.Config, logger *log.Logger) *echo.Echo {
	// Instantiate Server
	e := echo.New()
	e.HideBanner = true
	e.Logger = logger

	// Service Singletons
	client := utils.NewHttpClient(cfg)
	ss := scriptsService.NewScriptService(
		mappingsService.NewMappingService(cfg, client, logger),
		annotationsService.NewAnnotationService(cfg, client, logger),
		logger)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{echo.GET},
		ExposeHeaders: []string{scriptsMvc.RunIdHeader},
	}))

	// -- Override handlers with "custom" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mc := &contexts.MissenseContext{
				Context:       c,
				Config:        cfg,
				ScriptService: ss,
			}
			return h(mc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Palettes
	e.GET("/palettes", palettesMvc.GetPalettes)
	e.GET("/palettes/:palette/key", palettesMvc.GetPaletteKey,
		// middleware
		mcm.MandatePalettePathParameter)

	// -- Scripts
	e.GET("/scripts/structure", scriptsMvc.GetStructureScript,
		// middleware
		mcm.MandatePdbIdAttribute,
		mcm.CalibrateOptionalPaletteAttribute)
	e.GET("/scripts/model", scriptsMvc.GetModelScript,
		// middleware
		mcm.MandateUniprotIdAttribute,
		mcm.CalibrateOptionalPaletteAttribute)

	return e
}
