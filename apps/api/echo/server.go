package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classwork"
	"github.com/trezcool/darasa/core/feed"
	"github.com/trezcool/darasa/core/library"
	"github.com/trezcool/darasa/core/upload"
	"github.com/trezcool/darasa/core/user"
	appfs "github.com/trezcool/darasa/fs"
)

type (
	ServerDeps struct {
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

	Server interface {
		http.Handler
		Start()
		Shutdown(ctx context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	setupMiddlewares(s.app, conf)

	api := s.app.Group("/api")
	registerUserAPI(api, s.deps.UserSvc, s.deps.Validate)
	registerClassworkAPI(api, s.deps.ClassworkSvc, s.deps.Validate)
	registerFeedAPI(api, s.deps.FeedSvc, s.deps.Validate)
	registerLibraryAPI(api, s.deps.LibrarySvc)
	registerUploadAPI(api, s.deps.UploadSvc)

	// single-page app: every other GET gets the same document
	s.app.GET("/", s.home)
	s.app.GET("/*", s.home)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Address()); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	if index := s.deps.Conf.WebIndex; index != "" {
		return ctx.File(index)
	}
	return echo.StaticFileHandler(appfs.IndexPath, appfs.FS)(ctx)
}
