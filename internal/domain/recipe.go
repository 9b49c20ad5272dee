// Package domain defines the core types and interfaces for the recipe
// sharing client. All other packages depend on domain; domain depends
// on nothing.
package domain

// Recipe is a shared recipe as stored by the remote service. IDs are
// assigned server-side on creation.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	CookingTime  int      `json:"cookingTime"` // minutes
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Image        string   `json:"image,omitempty"`
	UserID       string   `json:"userId"`
	Rating       float64  `json:"rating,omitempty"` // 0-5, 0 when unrated
}

// RecipeInput is a recipe payload ready to send to the remote service.
// It has passed form validation; the owner id is stamped from the
// active session at dispatch time.
type RecipeInput struct {
	Title        string   `json:"title"`
	CookingTime  int      `json:"cookingTime"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Image        string   `json:"image,omitempty"`
	UserID       string   `json:"userId"`
}
