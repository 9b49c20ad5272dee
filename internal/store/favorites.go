package store

import (
	"context"
	"slices"

	"github.com/forkful-app/forkful/internal/domain"
)

// User-facing failure messages for the favorites slice.
const (
	msgLoadFavorites   = "Could not load favorites"
	msgUpdateFavorites = "Could not update favorites"
)

// Favorites are not a first-class remote resource: they live inside
// the user record under /auth, so every mutation is a read-modify-write
// of the whole record. The remote service offers no conditional update,
// which means two concurrent mutations for the same user can race and
// one can silently overwrite the other. That lost-update window is a
// known property of the design and is deliberately left in place.

// loadFavorites fetches the user record and takes its favorites field.
// A missing field is an empty set.
func (s *Store) loadFavorites(ctx context.Context, cmd LoadFavorites) {
	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusLoading
		st.Favorites.Error = ""
	})

	user, err := s.gateway.GetUser(ctx, cmd.UserID)
	if err != nil {
		s.log.Warn("loading favorites for %s: %v", cmd.UserID, err)
		s.apply(func(st *State) {
			st.Favorites.Status = domain.StatusFailed
			st.Favorites.Error = msgLoadFavorites
		})
		return
	}

	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusSucceeded
		st.Favorites.IDs = favorites
	})
}

// addFavorite unions the recipe id into the user's favorites.
// Idempotent: an id already present skips the write and keeps the set
// as-is.
func (s *Store) addFavorite(ctx context.Context, cmd AddFavorite) {
	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusLoading
		st.Favorites.Error = ""
	})

	user, err := s.gateway.GetUser(ctx, cmd.UserID)
	if err != nil {
		s.log.Warn("adding favorite %s for %s: %v", cmd.RecipeID, cmd.UserID, err)
		s.favoritesFailed()
		return
	}

	if slices.Contains(user.Favorites, cmd.RecipeID) {
		s.apply(func(st *State) {
			st.Favorites.Status = domain.StatusSucceeded
			st.Favorites.IDs = user.Favorites
		})
		return
	}

	user.Favorites = append(append([]string(nil), user.Favorites...), cmd.RecipeID)
	updated, err := s.gateway.UpdateUser(ctx, user)
	if err != nil {
		s.log.Warn("persisting favorites for %s: %v", cmd.UserID, err)
		s.favoritesFailed()
		return
	}

	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusSucceeded
		st.Favorites.IDs = updated.Favorites
	})
	s.log.Debug("favorite %s added for user %s", cmd.RecipeID, cmd.UserID)
}

// removeFavorite filters the recipe id out of the user's favorites and
// writes the record back, whether or not the id was present.
func (s *Store) removeFavorite(ctx context.Context, cmd RemoveFavorite) {
	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusLoading
		st.Favorites.Error = ""
	})

	user, err := s.gateway.GetUser(ctx, cmd.UserID)
	if err != nil {
		s.log.Warn("removing favorite %s for %s: %v", cmd.RecipeID, cmd.UserID, err)
		s.favoritesFailed()
		return
	}

	kept := make([]string, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if id != cmd.RecipeID {
			kept = append(kept, id)
		}
	}
	user.Favorites = kept

	updated, err := s.gateway.UpdateUser(ctx, user)
	if err != nil {
		s.log.Warn("persisting favorites for %s: %v", cmd.UserID, err)
		s.favoritesFailed()
		return
	}

	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusSucceeded
		st.Favorites.IDs = updated.Favorites
	})
	s.log.Debug("favorite %s removed for user %s", cmd.RecipeID, cmd.UserID)
}

func (s *Store) favoritesFailed() {
	s.apply(func(st *State) {
		st.Favorites.Status = domain.StatusFailed
		st.Favorites.Error = msgUpdateFavorites
	})
}
