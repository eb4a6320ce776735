package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrMissingFile = errors.New("missing file")

	nowFunc = time.Now // mockable
)

type (
	File struct {
		Filename string `json:"filename"`
	}

	Service struct {
		store  core.FileStore
		events core.EventPublisher
		logger core.Logger
	}
)

func NewService(store core.FileStore, events core.EventPublisher, logger core.Logger) *Service {
	return &Service{store: store, events: events, logger: logger}
}

// Upload stores the content of r under a name generated from originalName.
func (svc *Service) Upload(ctx context.Context, originalName string, r io.Reader) (File, error) {
	if r == nil {
		return File{}, core.NewValidationError(ErrMissingFile)
	}
	name, err := svc.store.Save(ctx, GenerateName(originalName, nowFunc()), r)
	if err != nil {
		return File{}, errors.Wrap(err, "saving file")
	}
	f := File{Filename: name}
	core.Notify(svc.events, svc.logger, core.SubjectFileUploaded, f)
	return f, nil
}

// GenerateName returns "<unix millis>-<base name of original>".
// Directory parts of the original name are dropped.
func GenerateName(original string, t time.Time) string {
	base := path.Base(strings.ReplaceAll(original, `\`, "/"))
	switch base {
	case ".", "..", "/":
		base = "file"
	}
	return fmt.Sprintf("%d-%s", t.UnixMilli(), base)
}
