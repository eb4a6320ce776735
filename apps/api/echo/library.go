package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/library"
)

type libraryApi struct {
	svc *library.Service
}

func registerLibraryAPI(g *echo.Group, svc *library.Service) {
	api := libraryApi{svc: svc}

	g.POST("/buy", api.buy) // the request body is ignored
	g.GET("/library", api.query)
}

func (api *libraryApi) buy(ctx echo.Context) error {
	items, err := api.svc.Buy(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "buying")
	}
	return ctx.JSON(http.StatusOK, LibraryResponse{Success: true, Library: items})
}

func (api *libraryApi) query(ctx echo.Context) error {
	items, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying library")
	}
	return ctx.JSON(http.StatusOK, items)
}

type LibraryResponse struct {
	Success bool     `json:"success"`
	Library []string `json:"library"`
}
