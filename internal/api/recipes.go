package api

import (
	"context"
	"net/http"

	"github.com/forkful-app/forkful/internal/domain"
)

// ListRecipes returns the server-ordered recipe collection, optionally
// filtered by a search term.
func (c *Client) ListRecipes(ctx context.Context, search string) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes"+query(search), nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/"+id, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe posts a new recipe and returns it with the server
// assigned id.
func (c *Client) CreateRecipe(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe sends the full recipe payload for an existing id.
func (c *Client) UpdateRecipe(ctx context.Context, id string, input domain.RecipeInput) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodPut, "/recipes/"+id, input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe remotely.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+id, nil, nil)
}
