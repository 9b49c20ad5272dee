package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkful-app/forkful/internal/apitest"
	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/localstore"
)

func newAuthService(t *testing.T) (*AuthService, *apitest.Server) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL(), localstore.NewMemoryStore(), testLogger())
	return NewAuthService(client), srv
}

func TestLoginMatchesCredentials(t *testing.T) {
	svc, srv := newAuthService(t)
	srv.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1",
		Favorites: []string{"3"}})
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid credentials", "a@b.com", "secret1", false},
		{"email match is case-insensitive", "A@B.com", "secret1", false},
		{"wrong password", "a@b.com", "nope", true},
		{"unknown email", "x@y.com", "secret1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr {
				require.True(t, errors.Is(err, domain.ErrBadCredentials))
				return
			}
			require.NoError(t, err)
			require.Equal(t, "a@b.com", sess.Email)
			require.Equal(t, []string{"3"}, sess.Favorites)
			require.NotEmpty(t, sess.Token)
		})
	}
}

func TestLoginTokensAreUnique(t *testing.T) {
	svc, srv := newAuthService(t)
	srv.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})
	ctx := context.Background()

	first, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, srv := newAuthService(t)
	srv.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})

	_, err := svc.Register(context.Background(), "Clone", "a@b.com", "other")
	require.True(t, errors.Is(err, domain.ErrEmailTaken))
}

func TestRegisterCreatesRecordWithEmptyFavorites(t *testing.T) {
	svc, srv := newAuthService(t)

	sess, err := svc.Register(context.Background(), "Bob", "bob@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, sess.UserID)

	created, ok := srv.User(sess.UserID)
	require.True(t, ok)
	require.Equal(t, "bob@example.com", created.Email)
	require.NotNil(t, created.Favorites)
	require.Empty(t, created.Favorites)
}
