package feed

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

type Post struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type NewPost struct {
	User string `json:"user" validate:"required"`
	Text string `json:"text" validate:"required"`
}

func (np *NewPost) Validate(validate *validator.Validate) error {
	return validate.Struct(np)
}

type (
	Repository interface {
		// CreatePost appends p and returns the whole feed right after the append.
		CreatePost(ctx context.Context, p Post) ([]Post, error)
		QueryAllPosts(ctx context.Context) ([]Post, error)
	}

	Service struct {
		repo   Repository
		events core.EventPublisher
		logger core.Logger
	}
)

var nowFunc = time.Now // mockable

func NewService(repo Repository, events core.EventPublisher, logger core.Logger) *Service {
	return &Service{repo: repo, events: events, logger: logger}
}

func (svc *Service) Post(ctx context.Context, np NewPost) ([]Post, error) {
	p := Post{
		ID:        uuid.NewString(),
		User:      np.User,
		Text:      np.Text,
		CreatedAt: nowFunc().UTC(),
	}
	posts, err := svc.repo.CreatePost(ctx, p)
	if err != nil {
		return nil, errors.Wrap(err, "creating post")
	}
	core.Notify(svc.events, svc.logger, core.SubjectFeedPosted, p)
	return posts, nil
}

func (svc *Service) List(ctx context.Context) ([]Post, error) {
	return svc.repo.QueryAllPosts(ctx)
}
