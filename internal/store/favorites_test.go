package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/store"
)

func TestAddFavoriteIsIdempotent(t *testing.T) {
	f, ctx := newFixture(t)
	user := f.server.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})
	require.Equal(t, "1", user.ID)

	// Adding the same favorite twice in sequence yields a single entry.
	require.NoError(t, f.store.Dispatch(ctx, store.AddFavorite{UserID: "1", RecipeID: "42"}))
	require.NoError(t, f.store.Dispatch(ctx, store.AddFavorite{UserID: "1", RecipeID: "42"}))

	st := f.store.State()
	require.Equal(t, domain.StatusSucceeded, st.Favorites.Status)
	require.Equal(t, []string{"42"}, st.Favorites.IDs)

	remote, ok := f.server.User("1")
	require.True(t, ok)
	require.Equal(t, []string{"42"}, remote.Favorites)
}

func TestRemoveFavoriteAbsentIsNoOp(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{
		Name: "Alice", Email: "a@b.com", Password: "secret1",
		Favorites: []string{"7"},
	})

	require.NoError(t, f.store.Dispatch(ctx, store.RemoveFavorite{UserID: "1", RecipeID: "42"}))

	st := f.store.State()
	require.Equal(t, domain.StatusSucceeded, st.Favorites.Status)
	require.Equal(t, []string{"7"}, st.Favorites.IDs)
}

func TestRemoveFavoritePresent(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{
		Name: "Alice", Email: "a@b.com", Password: "secret1",
		Favorites: []string{"7", "42"},
	})

	require.NoError(t, f.store.Dispatch(ctx, store.RemoveFavorite{UserID: "1", RecipeID: "7"}))

	st := f.store.State()
	require.Equal(t, []string{"42"}, st.Favorites.IDs)

	remote, _ := f.server.User("1")
	require.Equal(t, []string{"42"}, remote.Favorites)
}

func TestLoadFavoritesMissingFieldIsEmptySet(t *testing.T) {
	f, ctx := newFixture(t)
	f.server.SeedUser(domain.User{Name: "Alice", Email: "a@b.com", Password: "secret1"})

	require.NoError(t, f.store.Dispatch(ctx, store.LoadFavorites{UserID: "1"}))

	st := f.store.State()
	require.Equal(t, domain.StatusSucceeded, st.Favorites.Status)
	require.NotNil(t, st.Favorites.IDs)
	require.Empty(t, st.Favorites.IDs)
}

func TestLoadFavoritesUnknownUserFails(t *testing.T) {
	f, ctx := newFixture(t)

	require.NoError(t, f.store.Dispatch(ctx, store.LoadFavorites{UserID: "404"}))

	st := f.store.State()
	require.Equal(t, domain.StatusFailed, st.Favorites.Status)
	require.NotEmpty(t, st.Favorites.Error)
}
