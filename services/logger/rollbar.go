package logsvc

import (
	"context"
	"log/slog"
	"os"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

// RollbarLogger reports to Rollbar (when enabled) and always writes to its slog.Logger.
type RollbarLogger struct {
	std *slog.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *slog.Logger, conf *core.Config) *RollbarLogger {
	host, _ := os.Hostname()
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

// NewLogger returns the application logger: colored console output in debug mode, JSON otherwise.
// Rollbar reporting is only enabled outside debug mode and when a token is configured.
func NewLogger(conf *core.Config, name string) *RollbarLogger {
	var handler slog.Handler
	if conf.Debug {
		handler = NewConsoleHandler(os.Stdout, slog.LevelDebug)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := NewRollbarLogger(slog.New(handler).With(slog.String("logger", name)), conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, user.User
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var usrSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		// set acting User
		if usr, ok := arg.(user.User); ok {
			if !usrSet { // only set one User
				rollbar.SetPerson(usr.ID, usr.Name, "")
				usrSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !usrSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l RollbarLogger) print(level slog.Level, msg string, args []interface{}) {
	attrs := make([]slog.Attr, 0, len(args))
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			attrs = append(attrs, slog.String("error", a.Error()))
		case user.User:
			attrs = append(attrs, slog.String("user", a.ID))
		case map[string]interface{}:
			for k, v := range a {
				attrs = append(attrs, slog.Any(k, v))
			}
		default:
			attrs = append(attrs, slog.Any("arg", a))
		}
	}
	l.std.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(slog.LevelDebug, msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(slog.LevelInfo, msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(slog.LevelWarn, msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(slog.LevelError, msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(slog.LevelError, msg, args)
	rollbar.Wait()
	os.Exit(1)
}
