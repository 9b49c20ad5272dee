package domain

import "context"

// Gateway is the sole component performing network I/O on behalf of the
// state slices. The production implementation wraps the hosted CRUD
// service; tests use an in-process fake.
type Gateway interface {
	// ListRecipes returns the server-ordered collection. A non-empty
	// search term requests a filtered set; an empty term requests
	// everything.
	ListRecipes(ctx context.Context, search string) ([]Recipe, error)
	GetRecipe(ctx context.Context, id string) (*Recipe, error)
	CreateRecipe(ctx context.Context, input RecipeInput) (*Recipe, error)
	UpdateRecipe(ctx context.Context, id string, input RecipeInput) (*Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	GetUser(ctx context.Context, id string) (*User, error)
	// UpdateUser persists the whole user record, favorites included.
	UpdateUser(ctx context.Context, user *User) (*User, error)
}

// Authenticator exchanges credentials for a session. The mock-API
// implementation matches credentials client-side against the /auth
// collection; a real backend would verify them server-side.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password string) (*Session, error)
}

// CredentialStore persists the session token and user profile between
// runs under fixed well-known keys. Implementations can be file-based
// or in-memory. Absent values are reported as ErrNotFound, not as
// failures.
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveUser(s *Session) error
	LoadUser() (*Session, error)
	Clear() error
}
