package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/store"
)

func TestDispatchRejectsUnknownCommand(t *testing.T) {
	f, ctx := newFixture(t)
	require.Error(t, f.store.Dispatch(ctx, nil))
}

func TestListenersSeeEveryApply(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedRecipe(domain.Recipe{Title: "Toast", CookingTime: 3,
		Ingredients: []string{"Bread"}, Instructions: []string{"Toast it"}})

	var statuses []domain.RequestStatus
	f.store.Subscribe(func(st store.State) {
		statuses = append(statuses, st.Recipes.Status)
	})

	require.NoError(t, f.store.Dispatch(ctx, store.LoadRecipes{}))

	// One notification for loading, one for the result.
	require.Equal(t, []domain.RequestStatus{domain.StatusLoading, domain.StatusSucceeded}, statuses)
}

func TestInvalidTokenClearsPersistedSession(t *testing.T) {
	f, ctx := newFixture(t)
	f.login(t, "a@b.com")

	// The service now rejects the token. The gateway clears the
	// persisted session; the slice records a plain failure.
	f.server.RejectAuth(true)
	require.NoError(t, f.store.Dispatch(ctx, store.LoadRecipes{}))

	st := f.store.State()
	require.Equal(t, domain.StatusFailed, st.Recipes.Status)
	_, err := f.creds.LoadToken()
	require.Error(t, err)
	_, err = f.creds.LoadUser()
	require.Error(t, err)
}

func TestSnapshotsDoNotAliasLiveState(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedRecipe(domain.Recipe{Title: "Toast", CookingTime: 3,
		Ingredients: []string{"Bread"}, Instructions: []string{"Toast it"}})
	require.NoError(t, f.store.Dispatch(ctx, store.LoadRecipes{}))

	snap := f.store.State()
	snap.Recipes.Recipes[0].Title = "Mutated"

	require.Equal(t, "Toast", f.store.State().Recipes.Recipes[0].Title)
}

func TestSnapshotSessionFavoritesDoNotAlias(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{
		Name: "Alice", Email: "a@b.com", Password: "secret1",
		Favorites: []string{"7"},
	})
	require.NoError(t, f.store.Dispatch(ctx, store.Login{Email: "a@b.com", Password: "secret1"}))

	snap := f.store.State()
	require.NotNil(t, snap.Session.User)
	require.Equal(t, []string{"7"}, snap.Session.User.Favorites)

	snap.Session.User.Favorites[0] = "mutated"

	require.Equal(t, []string{"7"}, f.store.State().Session.User.Favorites)
}
