package api

import (
	"context"
	"net/http"

	"github.com/forkful-app/forkful/internal/domain"
)

// ListUsers returns every user record. The mock service has no
// credential check endpoint, so login matches against this list
// client-side.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/auth", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a user record by id.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new user record.
func (c *Client) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "/auth", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser persists the whole user record. Favorites live inside
// this record, so every favorites mutation goes through here.
func (c *Client) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, "/auth/"+user.ID, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
