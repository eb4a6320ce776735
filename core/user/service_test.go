package user_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
	eventsvc "github.com/trezcool/darasa/services/events"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	"github.com/trezcool/darasa/testutil"
)

func setup(t *testing.T) (*user.Service, user.Repository, *eventsvc.LogPublisher) {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	repo := inmemdb.NewUserRepository(db)
	events := eventsvc.NewLogPublisher(nil)
	return user.NewService(repo, events, testutil.NewLogger()), repo, events
}

func TestService_Signup(t *testing.T) {
	svc, repo, events := setup(t)
	ctx := context.Background()

	usr, err := svc.Signup(ctx, user.NewUser{ID: "t1", Name: "Tina", Password: "pwd", Role: user.RoleTeacher})
	require.NoError(t, err)
	assert.Equal(t, "t1", usr.ID)
	assert.NotEqual(t, []byte("pwd"), usr.PasswordHash)
	assert.NoError(t, usr.CheckPassword("pwd"))
	assert.False(t, usr.CreatedAt.IsZero())

	stored, err := repo.GetUserByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, usr, stored)

	_, err = svc.Signup(ctx, user.NewUser{ID: "t1", Name: "Other", Password: "x", Role: user.RoleParent})
	var verr *core.ValidationError
	require.True(t, errors.As(err, &verr), "want a ValidationError, got %v", err)
	assert.True(t, errors.Is(err, user.ErrUserExists))
	assert.Equal(t, []core.FieldError{{Field: "id", Error: "user exists"}}, verr.Fields)

	stored, err = repo.GetUserByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Tina", stored.Name, "existing user must be left untouched")

	published := events.Published()
	require.Len(t, published, 1)
	assert.Equal(t, core.SubjectUserSignedUp, published[0].Subject)
}

func TestService_Signup_verbatim(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, user.NewUser{ID: "s1", Name: "Sam", Password: "pwd", Role: user.RoleStudent})
	require.NoError(t, err)
	padded, err := svc.Signup(ctx, user.NewUser{ID: " s1 ", Name: " Sid ", Password: "pwd", Role: "Student"})
	require.NoError(t, err, "a padded id is a different id")
	assert.Equal(t, user.User{ID: " s1 ", Name: " Sid ", Role: "Student"}, user.User{ID: padded.ID, Name: padded.Name, Role: padded.Role})

	stored, err := repo.GetUserByID(ctx, " s1 ")
	require.NoError(t, err)
	assert.Equal(t, padded, stored)

	usr, err := svc.Login(ctx, user.Credentials{ID: " s1 ", Password: "pwd", Role: "Student"})
	require.NoError(t, err)
	assert.Equal(t, " Sid ", usr.Name)
}

func TestService_Signup_concurrent(t *testing.T) {
	svc, _, _ := setup(t)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Signup(context.Background(), user.NewUser{ID: "dup", Name: fmt.Sprintf("user %d", i), Password: "pwd", Role: user.RoleStudent})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, user.ErrUserExists):
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestService_Login(t *testing.T) {
	svc, repo, _ := setup(t)
	sam := testutil.CreateUser(t, repo, "s1", "Sam", "secret", user.RoleStudent)

	tests := []struct {
		name    string
		creds   user.Credentials
		wantErr error
	}{
		{name: "unknown id", creds: user.Credentials{ID: "s2", Password: "secret", Role: user.RoleStudent}, wantErr: user.ErrInvalidLogin},
		{name: "wrong password", creds: user.Credentials{ID: "s1", Password: "secret ", Role: user.RoleStudent}, wantErr: user.ErrInvalidLogin},
		{name: "wrong role", creds: user.Credentials{ID: "s1", Password: "secret", Role: user.RoleParent}, wantErr: user.ErrInvalidLogin},
		{name: "empty", wantErr: user.ErrInvalidLogin},
		{name: "success", creds: user.Credentials{ID: "s1", Password: "secret", Role: user.RoleStudent}},
		{name: "padded id", creds: user.Credentials{ID: " s1 ", Password: "secret", Role: user.RoleStudent}, wantErr: user.ErrInvalidLogin},
		{name: "padded role", creds: user.Credentials{ID: "s1", Password: "secret", Role: " student"}, wantErr: user.ErrInvalidLogin},
		{name: "role case differs", creds: user.Credentials{ID: "s1", Password: "secret", Role: "Student"}, wantErr: user.ErrInvalidLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sam, usr)
		})
	}
}
