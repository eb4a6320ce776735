package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/upload"
)

const uploadField = "file"

type uploadApi struct {
	svc *upload.Service
}

func registerUploadAPI(g *echo.Group, svc *upload.Service) {
	api := uploadApi{svc: svc}

	g.POST("/upload", api.upload)
}

func (api *uploadApi) upload(ctx echo.Context) error {
	fh, err := ctx.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return core.NewValidationError(upload.ErrMissingFile, core.FieldError{Field: uploadField, Error: upload.ErrMissingFile.Error()})
		}
		return errors.Wrap(err, "reading form file")
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening form file")
	}
	defer func() { _ = src.Close() }()

	f, err := api.svc.Upload(ctx.Request().Context(), fh.Filename, src)
	if err != nil {
		return errors.Wrap(err, "uploading")
	}
	return ctx.JSON(http.StatusOK, UploadResponse{Success: true, Filename: f.Filename})
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}
