package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/darasa/core"
)

func setupMiddlewares(app *echo.Echo, conf *core.Config) {
	app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	app.Use(middleware.CORS())
}
