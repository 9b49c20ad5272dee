// Package validate checks recipe form input before it is dispatched.
// Validation lives at the form boundary: the state slices trust their
// inputs and never re-validate.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/forkful-app/forkful/internal/domain"
)

// Cooking time bounds in minutes.
const (
	MinCookingTime = 1
	MaxCookingTime = 1000
)

// MinTitleLen is the minimum recipe title length after trimming.
const MinTitleLen = 3

// imagePattern accepts http(s) URLs ending in a common image extension.
var imagePattern = regexp.MustCompile(`(?i)^https?://\S+\.(png|jpe?g|gif|webp)$`)

// Draft is raw form input, all fields as typed by the user.
// Ingredients and instructions are newline-separated.
type Draft struct {
	Title        string
	CookingTime  string
	Ingredients  string
	Instructions string
	Image        string
}

// FieldError is a validation failure tied to a single form field.
type FieldError struct {
	Field   string
	Message string
}

// Error returns the field and its message.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Recipe validates a draft and converts it into a payload ready to
// dispatch. On failure it returns every field error at once so the
// form can surface all of them.
func Recipe(d Draft) (domain.RecipeInput, []FieldError) {
	var errs []FieldError

	title := strings.TrimSpace(d.Title)
	if len(title) < MinTitleLen {
		errs = append(errs, FieldError{"title", fmt.Sprintf("must be at least %d characters", MinTitleLen)})
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(d.CookingTime))
	if err != nil {
		errs = append(errs, FieldError{"cookingTime", "must be a whole number of minutes"})
	} else if minutes < MinCookingTime || minutes > MaxCookingTime {
		errs = append(errs, FieldError{"cookingTime", fmt.Sprintf("must be between %d and %d minutes", MinCookingTime, MaxCookingTime)})
	}

	image := strings.TrimSpace(d.Image)
	if image != "" && !imagePattern.MatchString(image) {
		errs = append(errs, FieldError{"image", "must be an http(s) URL ending in .png, .jpg, .jpeg, .gif, or .webp"})
	}

	ingredients := lines(d.Ingredients)
	if len(ingredients) == 0 {
		errs = append(errs, FieldError{"ingredients", "at least one ingredient is required"})
	}

	instructions := lines(d.Instructions)
	if len(instructions) == 0 {
		errs = append(errs, FieldError{"instructions", "at least one instruction is required"})
	}

	if errs != nil {
		return domain.RecipeInput{}, errs
	}

	return domain.RecipeInput{
		Title:        title,
		CookingTime:  minutes,
		Ingredients:  ingredients,
		Instructions: instructions,
		Image:        image,
	}, nil
}

// lines splits newline-separated input, dropping blank lines.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
