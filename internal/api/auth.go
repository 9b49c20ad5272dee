package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/forkful-app/forkful/internal/domain"
)

// Compile-time interface check.
var _ domain.Authenticator = (*AuthService)(nil)

// AuthService implements login and registration against the /auth
// collection. The mock service has no real authentication: credentials
// are matched client-side and the returned token is an opaque
// placeholder the server never validates.
type AuthService struct {
	client *Client
}

// NewAuthService creates an authenticator over the given gateway client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login matches the credentials against the user records and returns a
// fresh session. Unknown email or wrong password both yield
// domain.ErrBadCredentials.
func (a *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			a.client.log.Info("user %s logged in", u.ID)
			return sessionFor(u), nil
		}
	}
	return nil, domain.ErrBadCredentials
}

// Register creates a new user record with an empty favorites list and
// returns a session for it. Fails with domain.ErrEmailTaken if the
// email is already registered.
func (a *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, domain.ErrEmailTaken
		}
	}

	created, err := a.client.CreateUser(ctx, &domain.User{
		Name:      name,
		Email:     email,
		Password:  password,
		Favorites: []string{},
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	a.client.log.Info("registered user %s", created.ID)
	return sessionFor(*created), nil
}

// sessionFor builds a session for a matched user record. The token is
// a placeholder; see AuthService.
func sessionFor(u domain.User) *domain.Session {
	return &domain.Session{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: append([]string(nil), u.Favorites...),
		Token:     "mock-" + uuid.NewString(),
	}
}
