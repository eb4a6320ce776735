package dig_container

import (
	"context"
	"log"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classwork"
	"github.com/trezcool/darasa/core/feed"
	"github.com/trezcool/darasa/core/library"
	"github.com/trezcool/darasa/core/upload"
	"github.com/trezcool/darasa/core/user"
	eventsvc "github.com/trezcool/darasa/services/events"
	logsvc "github.com/trezcool/darasa/services/logger"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	filestore "github.com/trezcool/darasa/storage/files"
)

type ServerParams struct {
	dig.In

	Conf         *core.Config
	Logger       core.Logger
	UserSvc      *user.Service
	ClassworkSvc *classwork.Service
	FeedSvc      *feed.Service
	LibrarySvc   *library.Service
	UploadSvc    *upload.Service
	Validate     *validator.Validate
	Translator   ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	return logsvc.NewLogger(conf, "API")
}

func newEventPublisher(conf *core.Config, logger core.Logger) (core.EventPublisher, error) {
	if conf.NATS.URL == "" {
		return eventsvc.NewLogPublisher(logger), nil
	}
	return eventsvc.NewNATSPublisher(conf.NATS.URL, logger)
}

func newFileStore(conf *core.Config) (core.FileStore, error) {
	if conf.Upload.Backend == core.UploadBackendB2 {
		return filestore.NewB2Store(context.Background(), conf.B2)
	}
	return filestore.NewLocalStore(conf.Upload.Dir)
}

func newScorer() classwork.Scorer {
	return classwork.NewRandomScorer()
}

func newServer(p ServerParams) echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:         p.Conf,
		Logger:       p.Logger,
		UserSvc:      p.UserSvc,
		ClassworkSvc: p.ClassworkSvc,
		FeedSvc:      p.FeedSvc,
		LibrarySvc:   p.LibrarySvc,
		UploadSvc:    p.UploadSvc,
		Validate:     p.Validate,
		Translator:   p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newEventPublisher))
	must(c.Provide(newFileStore))
	must(c.Provide(inmemdb.Open))
	must(c.Provide(inmemdb.NewUserRepository))
	must(c.Provide(inmemdb.NewClassworkRepository))
	must(c.Provide(inmemdb.NewFeedRepository))
	must(c.Provide(inmemdb.NewLibraryRepository))
	must(c.Provide(newScorer))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(core.NewValidator))
	must(c.Provide(user.NewService))
	must(c.Provide(classwork.NewService))
	must(c.Provide(feed.NewService))
	must(c.Provide(library.NewService))
	must(c.Provide(upload.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
