package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/library"
)

type libraryRepository struct {
	db *listTable[string]
}

func NewLibraryRepository(db *DB) library.Repository {
	return &libraryRepository{db: db.library}
}

func (repo *libraryRepository) AddItem(_ context.Context, label func(n int) string) ([]string, error) {
	return repo.db.appendFunc(label), nil
}

func (repo *libraryRepository) QueryAllItems(_ context.Context) ([]string, error) {
	return repo.db.all(), nil
}
