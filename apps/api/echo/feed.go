package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/feed"
)

type feedApi struct {
	svc      *feed.Service
	validate *validator.Validate
}

func registerFeedAPI(g *echo.Group, svc *feed.Service, validate *validator.Validate) {
	api := feedApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/feed", api.create)
	g.GET("/feed", api.query)
}

func (api *feedApi) create(ctx echo.Context) error {
	var data feed.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	posts, err := api.svc.Post(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "posting to feed")
	}
	return ctx.JSON(http.StatusOK, FeedResponse{Success: true, ClassFeed: posts})
}

func (api *feedApi) query(ctx echo.Context) error {
	posts, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying feed")
	}
	return ctx.JSON(http.StatusOK, posts)
}

type FeedResponse struct {
	Success   bool        `json:"success"`
	ClassFeed []feed.Post `json:"classFeed"`
}
