package store

import (
	"context"
	"errors"

	"github.com/forkful-app/forkful/internal/domain"
)

// User-facing failure messages for the recipe slice.
const (
	msgLoadRecipes   = "Could not load recipes"
	msgRecipeMissing = "Recipe not found"
	msgLoadRecipe    = "Could not load recipe"
	msgSaveRecipe    = "Could not save recipe"
	msgDeleteRecipe  = "Could not delete recipe"
)

// loadRecipes replaces the whole collection with the server's
// response. Refetch-and-replace is the only synchronization strategy;
// there is no merging or caching.
func (s *Store) loadRecipes(ctx context.Context, cmd LoadRecipes) {
	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusLoading
		st.Recipes.Error = ""
	})

	recipes, err := s.gateway.ListRecipes(ctx, cmd.Search)
	if err != nil {
		s.log.Warn("listing recipes: %v", err)
		s.apply(func(st *State) {
			st.Recipes.Status = domain.StatusFailed
			st.Recipes.Error = msgLoadRecipes
		})
		return
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusSucceeded
		st.Recipes.Recipes = recipes
	})
	s.log.Debug("loaded %d recipes (search=%q)", len(recipes), cmd.Search)
}

// loadRecipe replaces the current recipe. On failure the current
// recipe is left as it was, which for a fresh navigation means unset.
// Ownership is not checked here; the view layer redirects away from
// recipes the session does not own.
func (s *Store) loadRecipe(ctx context.Context, cmd LoadRecipe) {
	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusLoading
		st.Recipes.Error = ""
	})

	recipe, err := s.gateway.GetRecipe(ctx, cmd.ID)
	if err != nil {
		msg := msgLoadRecipe
		if errors.Is(err, domain.ErrNotFound) {
			msg = msgRecipeMissing
		}
		s.log.Warn("fetching recipe %s: %v", cmd.ID, err)
		s.apply(func(st *State) {
			st.Recipes.Status = domain.StatusFailed
			st.Recipes.Error = msg
		})
		return
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusSucceeded
		st.Recipes.Current = recipe
	})
}

// saveRecipe creates a recipe, stamping the owner from the active
// session, and appends the server's copy to the collection.
func (s *Store) saveRecipe(ctx context.Context, cmd SaveRecipe) {
	input := cmd.Input
	if sess := s.State().Session.User; sess != nil {
		input.UserID = sess.UserID
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusLoading
		st.Recipes.Error = ""
	})

	created, err := s.gateway.CreateRecipe(ctx, input)
	if err != nil {
		s.log.Warn("creating recipe: %v", err)
		s.apply(func(st *State) {
			st.Recipes.Status = domain.StatusFailed
			st.Recipes.Error = msgSaveRecipe
		})
		return
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusSucceeded
		st.Recipes.Recipes = append(st.Recipes.Recipes, *created)
		st.Recipes.Current = created
	})
	s.log.Info("created recipe %s", created.ID)
}

// updateRecipe sends the full payload and replaces the matching entry
// in the collection. An id with no local match leaves the collection
// unchanged; the remote write still happened.
func (s *Store) updateRecipe(ctx context.Context, cmd UpdateRecipe) {
	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusLoading
		st.Recipes.Error = ""
	})

	updated, err := s.gateway.UpdateRecipe(ctx, cmd.ID, cmd.Input)
	if err != nil {
		s.log.Warn("updating recipe %s: %v", cmd.ID, err)
		s.apply(func(st *State) {
			st.Recipes.Status = domain.StatusFailed
			st.Recipes.Error = msgSaveRecipe
		})
		return
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusSucceeded
		for i := range st.Recipes.Recipes {
			if st.Recipes.Recipes[i].ID == updated.ID {
				st.Recipes.Recipes[i] = *updated
				break
			}
		}
		if st.Recipes.Current != nil && st.Recipes.Current.ID == updated.ID {
			st.Recipes.Current = updated
		}
	})
	s.log.Info("updated recipe %s", updated.ID)
}

// deleteRecipe removes the recipe remotely, then drops it from the
// collection.
func (s *Store) deleteRecipe(ctx context.Context, cmd DeleteRecipe) {
	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusLoading
		st.Recipes.Error = ""
	})

	if err := s.gateway.DeleteRecipe(ctx, cmd.ID); err != nil {
		s.log.Warn("deleting recipe %s: %v", cmd.ID, err)
		s.apply(func(st *State) {
			st.Recipes.Status = domain.StatusFailed
			st.Recipes.Error = msgDeleteRecipe
		})
		return
	}

	s.apply(func(st *State) {
		st.Recipes.Status = domain.StatusSucceeded
		kept := st.Recipes.Recipes[:0]
		for _, r := range st.Recipes.Recipes {
			if r.ID != cmd.ID {
				kept = append(kept, r)
			}
		}
		st.Recipes.Recipes = kept
		if st.Recipes.Current != nil && st.Recipes.Current.ID == cmd.ID {
			st.Recipes.Current = nil
		}
	})
	s.log.Info("deleted recipe %s", cmd.ID)
}
