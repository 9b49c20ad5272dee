package store

import "github.com/forkful-app/forkful/internal/domain"

// Command is an intent issued by the view layer. The command set is
// closed: each slice handles its own variants with an exhaustive
// switch and Dispatch rejects anything else.
type Command interface {
	isCommand()
}

// ── Session slice ────────────────────────────────────────────────

// CheckAuth restores a persisted session on startup, if one exists.
type CheckAuth struct{}

// Login authenticates with email and password.
type Login struct {
	Email    string
	Password string
}

// Register creates a new account and signs it in.
type Register struct {
	Name     string
	Email    string
	Password string
}

// Logout clears the session, locally and unconditionally.
type Logout struct{}

// ── Recipe slice ─────────────────────────────────────────────────

// LoadRecipes replaces the collection with the server's response. An
// empty Search requests the unfiltered set.
type LoadRecipes struct {
	Search string
}

// LoadRecipe replaces the current recipe.
type LoadRecipe struct {
	ID string
}

// SaveRecipe creates a new recipe, stamping the owner from the active
// session.
type SaveRecipe struct {
	Input domain.RecipeInput
}

// UpdateRecipe sends the full recipe payload for an existing id.
type UpdateRecipe struct {
	ID    string
	Input domain.RecipeInput
}

// DeleteRecipe removes a recipe remotely and from the collection.
type DeleteRecipe struct {
	ID string
}

// ClearCurrentRecipe unsets the current recipe without a network call.
type ClearCurrentRecipe struct{}

// ── Favorites slice ──────────────────────────────────────────────

// LoadFavorites fetches the favorites set for a user.
type LoadFavorites struct {
	UserID string
}

// AddFavorite adds a recipe id to a user's favorites. Idempotent.
type AddFavorite struct {
	UserID   string
	RecipeID string
}

// RemoveFavorite removes a recipe id from a user's favorites.
type RemoveFavorite struct {
	UserID   string
	RecipeID string
}

func (CheckAuth) isCommand()          {}
func (Login) isCommand()              {}
func (Register) isCommand()           {}
func (Logout) isCommand()             {}
func (LoadRecipes) isCommand()        {}
func (LoadRecipe) isCommand()         {}
func (SaveRecipe) isCommand()         {}
func (UpdateRecipe) isCommand()       {}
func (DeleteRecipe) isCommand()       {}
func (ClearCurrentRecipe) isCommand() {}
func (LoadFavorites) isCommand()      {}
func (AddFavorite) isCommand()        {}
func (RemoveFavorite) isCommand()     {}
