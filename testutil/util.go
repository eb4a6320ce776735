package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// NewLogger returns a core.Logger discarding everything.
func NewLogger() core.Logger {
	return nopLogger{}
}

// FixedScorer always gives the same score.
type FixedScorer int

func (s FixedScorer) Score() int {
	return int(s)
}

// NewConfig returns a TEST Config storing uploads in a temporary directory.
func NewConfig(t *testing.T) *core.Config {
	return &core.Config{
		Env:      "TEST",
		TestMode: true,
		Build:    "test",
		Server:   core.ServerConfig{Port: 0, DisableReqLogs: true},
		Upload:   core.UploadConfig{Dir: t.TempDir(), Backend: core.UploadBackendLocal},
	}
}

func CreateUser(t *testing.T, repo user.Repository, id, name, pwd, role string) user.User {
	usr := user.User{ID: id, Name: name, Role: role}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}
