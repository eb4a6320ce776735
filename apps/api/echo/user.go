package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

type userApi struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerUserAPI(g *echo.Group, svc *user.Service, validate *validator.Validate) {
	api := userApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/signup", api.signup)
	g.POST("/login", api.login)
}

// Handlers

func (api *userApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Signup(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "signing up")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (api *userApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}

	usr, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidLogin {
			return core.NewValidationError(user.ErrInvalidLogin)
		}
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Success: true, User: usr})
}

type (
	SuccessResponse struct {
		Success bool `json:"success"`
	}

	LoginResponse struct {
		Success bool      `json:"success"`
		User    user.User `json:"user"`
	}
)
