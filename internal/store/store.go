// Package store implements the application state container: one
// process-wide state object split into session, recipe, and favorites
// slices, each mutated only through dispatched commands. Slices talk
// to the remote service through the gateway and record outcomes in
// their own status/error fields; they never propagate failures past
// their boundary.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/logger"
)

// SessionState is the session slice: current user identity and
// authentication status.
type SessionState struct {
	User            *domain.Session
	IsAuthenticated bool
	Status          domain.RequestStatus
	Error           string
}

// RecipeState is the recipe slice: the server-ordered collection, the
// recipe currently being viewed, and the shared status/error pair for
// all recipe operations.
type RecipeState struct {
	Recipes []domain.Recipe
	Current *domain.Recipe
	Status  domain.RequestStatus
	Error   string
}

// FavoriteState is the favorites slice: the favorite recipe ids of the
// active user.
type FavoriteState struct {
	IDs    []string
	Status domain.RequestStatus
	Error  string
}

// State is the whole application state. Views read it, compute any
// cross-slice joins themselves (favorite recipes are the collection
// intersected with the favorite ids), and re-render on change.
type State struct {
	Session   SessionState
	Recipes   RecipeState
	Favorites FavoriteState
}

// Listener is notified with a snapshot after every state change.
type Listener func(State)

// Store owns the state and routes commands to the slice that handles
// them. All mutation is serialized: no two state changes interleave,
// though a multi-step operation (fetch then update) can still race
// another operation between its steps.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []Listener

	gateway domain.Gateway
	auth    domain.Authenticator
	creds   domain.CredentialStore
	log     *logger.Logger
}

// New creates a store with all slices idle.
func New(gateway domain.Gateway, auth domain.Authenticator, creds domain.CredentialStore, log *logger.Logger) *Store {
	return &Store{
		gateway: gateway,
		auth:    auth,
		creds:   creds,
		log:     log,
	}
}

// Dispatch routes a command to its slice and runs the operation to
// completion, network steps included. Operational failures are
// recorded in the slice's status and error fields, not returned; the
// only dispatch error is a command no slice handles. Callers wanting
// asynchrony run Dispatch on their own goroutine, which is how the
// view layer uses it.
func (s *Store) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case CheckAuth:
		s.checkAuth()
	case Login:
		s.login(ctx, c)
	case Register:
		s.register(ctx, c)
	case Logout:
		s.logout()
	case LoadRecipes:
		s.loadRecipes(ctx, c)
	case LoadRecipe:
		s.loadRecipe(ctx, c)
	case SaveRecipe:
		s.saveRecipe(ctx, c)
	case UpdateRecipe:
		s.updateRecipe(ctx, c)
	case DeleteRecipe:
		s.deleteRecipe(ctx, c)
	case ClearCurrentRecipe:
		s.apply(func(st *State) { st.Recipes.Current = nil })
	case LoadFavorites:
		s.loadFavorites(ctx, c)
	case AddFavorite:
		s.addFavorite(ctx, c)
	case RemoveFavorite:
		s.removeFavorite(ctx, c)
	default:
		return fmt.Errorf("store: unhandled command %T", cmd)
	}
	return nil
}

// Subscribe registers a listener called after every state change. Not
// safe to call concurrently with Dispatch; register listeners during
// wiring.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// State returns a snapshot safe to read while operations run.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.state)
}

// apply mutates the state under the lock and notifies listeners with a
// snapshot afterwards. Listeners run outside the lock so they can call
// State or Dispatch.
func (s *Store) apply(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snap := snapshot(s.state)
	s.mu.Unlock()

	for _, fn := range s.listeners {
		fn(snap)
	}
}

// snapshot copies the slices so readers never alias live state.
func snapshot(st State) State {
	out := st
	out.Recipes.Recipes = append([]domain.Recipe(nil), st.Recipes.Recipes...)
	out.Favorites.IDs = append([]string(nil), st.Favorites.IDs...)
	if st.Recipes.Current != nil {
		current := *st.Recipes.Current
		out.Recipes.Current = &current
	}
	if st.Session.User != nil {
		user := *st.Session.User
		user.Favorites = append([]string(nil), st.Session.User.Favorites...)
		out.Session.User = &user
	}
	return out
}
