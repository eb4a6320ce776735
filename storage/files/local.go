package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var errInvalidName = errors.New("invalid file name")

// maxNameAttempts bounds the "-N" suffixes tried when a name is taken.
const maxNameAttempts = 100

// LocalStore saves files flat in a directory on disk. Files are kept indefinitely
// and never overwritten.
type LocalStore struct {
	dir string
}

var _ core.FileStore = (*LocalStore)(nil)

// NewLocalStore creates dir if it is missing.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating upload dir %s", dir)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) {
		return "", errors.Wrap(errInvalidName, name)
	}

	f, name, err := s.create(name)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errors.Wrap(err, "writing file")
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrap(err, "closing file")
	}
	return name, nil
}

// create opens a new file named name, or "<base>-N<ext>" if name is taken.
func (s *LocalStore) create(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; i <= maxNameAttempts; i++ {
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", errors.Wrap(err, "creating file")
		}
		candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
	return nil, "", errors.Errorf("creating file: %s: too many files with this name", name)
}
