package validate

import (
	"testing"
)

func validDraft() Draft {
	return Draft{
		Title:        "Tomato Soup",
		CookingTime:  "20",
		Ingredients:  "Tomatoes\nWater",
		Instructions: "Chop\nBoil",
	}
}

func TestRecipeValid(t *testing.T) {
	input, errs := Recipe(validDraft())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if input.Title != "Tomato Soup" {
		t.Fatalf("expected title preserved, got %q", input.Title)
	}
	if input.CookingTime != 20 {
		t.Fatalf("expected cooking time 20, got %d", input.CookingTime)
	}
	if len(input.Ingredients) != 2 || len(input.Instructions) != 2 {
		t.Fatalf("expected 2 ingredients and 2 instructions, got %d/%d",
			len(input.Ingredients), len(input.Instructions))
	}
}

func TestRecipeFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"short title", func(d *Draft) { d.Title = "ab" }, "title"},
		{"whitespace title", func(d *Draft) { d.Title = "  a  " }, "title"},
		{"non-numeric time", func(d *Draft) { d.CookingTime = "soon" }, "cookingTime"},
		{"zero time", func(d *Draft) { d.CookingTime = "0" }, "cookingTime"},
		{"excessive time", func(d *Draft) { d.CookingTime = "1001" }, "cookingTime"},
		{"bad image extension", func(d *Draft) { d.Image = "https://x.test/pic.bmp" }, "image"},
		{"image without scheme", func(d *Draft) { d.Image = "pic.png" }, "image"},
		{"empty ingredients", func(d *Draft) { d.Ingredients = "" }, "ingredients"},
		{"blank ingredient lines", func(d *Draft) { d.Ingredients = "\n  \n\t\n" }, "ingredients"},
		{"empty instructions", func(d *Draft) { d.Instructions = "" }, "instructions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			_, errs := Recipe(d)
			if errs == nil {
				t.Fatal("expected validation errors, got none")
			}
			for _, fe := range errs {
				if fe.Field == tt.wantField {
					return
				}
			}
			t.Fatalf("expected an error on field %q, got %v", tt.wantField, errs)
		})
	}
}

func TestRecipeBoundaryTimes(t *testing.T) {
	for _, minutes := range []string{"1", "1000"} {
		d := validDraft()
		d.CookingTime = minutes
		if _, errs := Recipe(d); errs != nil {
			t.Fatalf("cooking time %s should be valid, got %v", minutes, errs)
		}
	}
}

func TestRecipeImageVariants(t *testing.T) {
	valid := []string{
		"",
		"https://cdn.test/soup.png",
		"http://cdn.test/soup.JPG",
		"https://cdn.test/a/b/soup.jpeg",
		"https://cdn.test/soup.webp",
	}
	for _, url := range valid {
		d := validDraft()
		d.Image = url
		if _, errs := Recipe(d); errs != nil {
			t.Fatalf("image %q should be valid, got %v", url, errs)
		}
	}
}

func TestRecipeReportsAllErrorsAtOnce(t *testing.T) {
	_, errs := Recipe(Draft{})
	if len(errs) < 4 {
		t.Fatalf("expected errors for every missing field, got %v", errs)
	}
}

func TestRecipeTrimsLines(t *testing.T) {
	d := validDraft()
	d.Ingredients = "  Tomatoes  \n\n  Water\n"

	input, errs := Recipe(d)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if input.Ingredients[0] != "Tomatoes" || input.Ingredients[1] != "Water" {
		t.Fatalf("expected trimmed lines, got %v", input.Ingredients)
	}
}
