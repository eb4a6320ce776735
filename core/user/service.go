package user

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound     = errors.New("user not found")
	ErrUserExists   = errors.New("user exists")
	ErrInvalidLogin = errors.New("invalid login")
)

type (
	Repository interface {
		// CreateUser stores usr unless a User with the same ID exists, in which case it returns ErrUserExists.
		// The check and the write are a single atomic operation.
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
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

// Signup registers a new User. nu must have been validated.
func (svc *Service) Signup(ctx context.Context, nu NewUser) (User, error) {
	usr := User{
		ID:        nu.ID,
		Name:      nu.Name,
		Role:      nu.Role,
		CreatedAt: nowFunc().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		if errors.Cause(err) == ErrUserExists {
			return User{}, core.NewValidationError(ErrUserExists, core.FieldError{Field: "id", Error: ErrUserExists.Error()})
		}
		return User{}, errors.Wrap(err, "creating user")
	}

	core.Notify(svc.events, svc.logger, core.SubjectUserSignedUp, usr)
	return usr, nil
}

// Login returns the User matching all of creds, or ErrInvalidLogin.
func (svc *Service) Login(ctx context.Context, creds Credentials) (User, error) {
	usr, err := svc.repo.GetUserByID(ctx, creds.ID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidLogin
		}
		return User{}, errors.Wrap(err, "finding user by ID")
	}
	if usr.Role != creds.Role {
		return User{}, ErrInvalidLogin
	}
	if err = usr.CheckPassword(creds.Password); err != nil {
		return User{}, ErrInvalidLogin
	}
	return usr, nil
}
