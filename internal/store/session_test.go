package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkful-app/forkful/internal/api"
	"github.com/forkful-app/forkful/internal/apitest"
	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/localstore"
	"github.com/forkful-app/forkful/internal/logger"
	"github.com/forkful-app/forkful/internal/store"
)

func TestCheckAuthWithNothingPersisted(t *testing.T) {
	f, ctx := newFixture(t)

	require.NoError(t, f.store.Dispatch(ctx, store.CheckAuth{}))

	st := f.store.State()
	require.False(t, st.Session.IsAuthenticated)
	require.Nil(t, st.Session.User)
	require.Empty(t, st.Session.Error, "no persisted session is not an error")
}

func TestCheckAuthRestoresPersistedSession(t *testing.T) {
	f, ctx := newFixture(t)
	require.NoError(t, f.creds.SaveToken("mock-abc"))
	require.NoError(t, f.creds.SaveUser(&domain.Session{
		UserID: "7", Name: "Resto", Email: "r@example.com",
	}))

	require.NoError(t, f.store.Dispatch(ctx, store.CheckAuth{}))

	st := f.store.State()
	require.True(t, st.Session.IsAuthenticated)
	require.NotNil(t, st.Session.User)
	require.Equal(t, "7", st.Session.User.UserID)
	require.Equal(t, "mock-abc", st.Session.User.Token)
}

func TestCheckAuthWithTokenButNoUserClearsBoth(t *testing.T) {
	f, ctx := newFixture(t)
	require.NoError(t, f.creds.SaveToken("mock-orphan"))

	require.NoError(t, f.store.Dispatch(ctx, store.CheckAuth{}))

	st := f.store.State()
	require.False(t, st.Session.IsAuthenticated)
	require.Empty(t, st.Session.Error)
	_, err := f.creds.LoadToken()
	require.True(t, errors.Is(err, domain.ErrNotFound), "orphan token should be cleared")
}

func TestCheckAuthCorruptPersistedUserClearsAndFails(t *testing.T) {
	srv := apitest.New()
	t.Cleanup(srv.Close)

	// A file store whose persisted profile no longer parses: the id
	// is a number where a string is expected.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"),
		[]byte(`{"token":"mock-x","user":{"id":123}}`), 0o600))

	log := logger.New(logger.LevelOff, nil)
	creds := localstore.NewFileStore(dir, log)
	client := api.NewClient(srv.URL(), creds, log)
	st := store.New(client, api.NewAuthService(client), creds, log)

	require.NoError(t, st.Dispatch(context.Background(), store.CheckAuth{}))

	state := st.State()
	require.False(t, state.Session.IsAuthenticated)
	require.Nil(t, state.Session.User)
	require.Equal(t, domain.StatusFailed, state.Session.Status)
	require.NotEmpty(t, state.Session.Error)

	// Both keys are cleared, token included.
	_, err := creds.LoadToken()
	require.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = creds.LoadUser()
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLoginSuccess(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})

	require.NoError(t, f.store.Dispatch(ctx, store.Login{Email: "a@b.com", Password: "secret1"}))

	st := f.store.State()
	require.True(t, st.Session.IsAuthenticated)
	require.Equal(t, domain.StatusSucceeded, st.Session.Status)
	require.NotNil(t, st.Session.User)
	require.Equal(t, "a@b.com", st.Session.User.Email)
	require.NotEmpty(t, st.Session.User.Token)

	// Token and profile are persisted for the next run.
	token, err := f.creds.LoadToken()
	require.NoError(t, err)
	require.Equal(t, st.Session.User.Token, token)
	saved, err := f.creds.LoadUser()
	require.NoError(t, err)
	require.Equal(t, "a@b.com", saved.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})

	require.NoError(t, f.store.Dispatch(ctx, store.Login{Email: "a@b.com", Password: "wrong"}))

	st := f.store.State()
	require.False(t, st.Session.IsAuthenticated)
	require.Equal(t, domain.StatusFailed, st.Session.Status)
	require.Equal(t, "Invalid email or password", st.Session.Error)
}

func TestRegisterCreatesUserAndSignsIn(t *testing.T) {
	f, ctx := newFixture(t)

	require.NoError(t, f.store.Dispatch(ctx, store.Register{
		Name: "Bob", Email: "bob@example.com", Password: "hunter2",
	}))

	st := f.store.State()
	require.True(t, st.Session.IsAuthenticated)
	require.Equal(t, "bob@example.com", st.Session.User.Email)

	created, ok := f.server.User(st.Session.User.UserID)
	require.True(t, ok)
	require.Equal(t, "Bob", created.Name)
	require.Empty(t, created.Favorites)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})

	require.NoError(t, f.store.Dispatch(ctx, store.Register{
		Name: "Imposter", Email: "a@b.com", Password: "other",
	}))

	st := f.store.State()
	require.False(t, st.Session.IsAuthenticated)
	require.Equal(t, domain.StatusFailed, st.Session.Status)
	require.Equal(t, "Email already registered", st.Session.Error)
}

func TestLogoutAlwaysClears(t *testing.T) {
	f, ctx := newFixture(t)
	f.login(t, "a@b.com")

	require.NoError(t, f.store.Dispatch(ctx, store.Logout{}))

	st := f.store.State()
	require.False(t, st.Session.IsAuthenticated)
	require.Nil(t, st.Session.User)
	_, err := f.creds.LoadToken()
	require.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = f.creds.LoadUser()
	require.True(t, errors.Is(err, domain.ErrNotFound))

	// Logging out while already logged out also succeeds.
	require.NoError(t, f.store.Dispatch(ctx, store.Logout{}))
	require.False(t, f.store.State().Session.IsAuthenticated)
}
