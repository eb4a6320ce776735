package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/feed"
)

type feedRepository struct {
	db *listTable[feed.Post]
}

func NewFeedRepository(db *DB) feed.Repository {
	return &feedRepository{db: db.post}
}

func (repo *feedRepository) CreatePost(_ context.Context, p feed.Post) ([]feed.Post, error) {
	return repo.db.append(p), nil
}

func (repo *feedRepository) QueryAllPosts(_ context.Context) ([]feed.Post, error) {
	return repo.db.all(), nil
}
