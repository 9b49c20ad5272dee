package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/store"
	"github.com/forkful-app/forkful/internal/validate"
)

// visibleRecipes returns the rows for the current list page: the whole
// collection on home, the collection intersected with the favorite ids
// on the favorites page. The join is computed here, in the view layer;
// the slices never reference each other's state.
func (a *App) visibleRecipes() []domain.Recipe {
	if a.route != routeFavorites {
		return a.state.Recipes.Recipes
	}

	favs := make(map[string]bool, len(a.state.Favorites.IDs))
	for _, id := range a.state.Favorites.IDs {
		favs[id] = true
	}
	var out []domain.Recipe
	for _, r := range a.state.Recipes.Recipes {
		if favs[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func (a *App) selectedRecipe() *domain.Recipe {
	recipes := a.visibleRecipes()
	if a.selected < 0 || a.selected >= len(recipes) {
		return nil
	}
	return &recipes[a.selected]
}

// ── Home ─────────────────────────────────────────────────────────

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			a.search.Blur()
			return a, nil
		case tea.KeyEnter:
			a.search.Blur()
			return a, a.dispatch(store.LoadRecipes{Search: a.search.Value()})
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/":
		a.search.Focus()
		return a, textinput.Blink
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.visibleRecipes())-1 {
			a.selected++
		}
	case "enter":
		if r := a.selectedRecipe(); r != nil {
			a.route = routeDetail
			return a, a.dispatch(store.LoadRecipe{ID: r.ID})
		}
	case "n":
		// Creating requires a session; the redirect happens here, at
		// the view layer.
		if !a.state.Session.IsAuthenticated {
			a.route = routeLogin
			a.setupAuthInputs(false)
			return a, textinput.Blink
		}
		a.setupEditor(nil)
		a.route = routeEditor
		return a, textinput.Blink
	case "f":
		if !a.state.Session.IsAuthenticated {
			a.route = routeLogin
			a.setupAuthInputs(false)
			return a, textinput.Blink
		}
		a.route = routeFavorites
		a.selected = 0
		return a, a.dispatch(store.LoadFavorites{UserID: a.state.Session.User.UserID})
	case "l":
		if a.state.Session.IsAuthenticated {
			return a, a.dispatch(store.Logout{})
		}
		a.route = routeLogin
		a.setupAuthInputs(false)
		return a, textinput.Blink
	case "R":
		return a, a.dispatch(store.LoadRecipes{Search: a.search.Value()})
	}
	return a, nil
}

// ── Detail ───────────────────────────────────────────────────────

func (a *App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := a.state.Recipes.Current
	sess := a.state.Session.User
	owns := cur != nil && sess != nil && cur.UserID == sess.UserID

	switch msg.String() {
	case "esc", "b", "q":
		a.route = routeHome
		return a, a.dispatch(store.ClearCurrentRecipe{})
	case "e":
		if owns {
			a.setupEditor(cur)
			a.route = routeEditor
			return a, textinput.Blink
		}
	case "d":
		if owns {
			a.route = routeHome
			return a, a.dispatch(store.DeleteRecipe{ID: cur.ID})
		}
	case "s", " ":
		if cur == nil || sess == nil {
			a.route = routeLogin
			a.setupAuthInputs(false)
			return a, textinput.Blink
		}
		if a.isFavorite(cur.ID) {
			return a, a.dispatch(store.RemoveFavorite{UserID: sess.UserID, RecipeID: cur.ID})
		}
		return a, a.dispatch(store.AddFavorite{UserID: sess.UserID, RecipeID: cur.ID})
	}
	return a, nil
}

func (a *App) isFavorite(recipeID string) bool {
	for _, id := range a.state.Favorites.IDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// ── Login / Register ─────────────────────────────────────────────

// setupAuthInputs builds the credential form. Registration adds the
// name field in front.
func (a *App) setupAuthInputs(register bool) {
	labels := []string{"email", "password"}
	if register {
		labels = []string{"name", "email", "password"}
	}

	a.authInputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = label + "> "
		in.PromptStyle = promptStyle
		in.CharLimit = 120
		in.Width = 40
		if label == "password" {
			in.EchoMode = textinput.EchoPassword
		}
		a.authInputs[i] = in
	}
	a.authFocus = 0
	a.authInputs[0].Focus()
}

func (a *App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.route = routeHome
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		a.moveAuthFocus(1)
		return a, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		a.moveAuthFocus(-1)
		return a, textinput.Blink
	case tea.KeyEnter:
		if a.authFocus < len(a.authInputs)-1 {
			a.moveAuthFocus(1)
			return a, textinput.Blink
		}
		return a.submitAuth()
	}

	if msg.Type == tea.KeyCtrlR {
		// Toggle between login and registration.
		if a.route == routeLogin {
			a.route = routeRegister
			a.setupAuthInputs(true)
		} else {
			a.route = routeLogin
			a.setupAuthInputs(false)
		}
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	a.authInputs[a.authFocus], cmd = a.authInputs[a.authFocus].Update(msg)
	return a, cmd
}

func (a *App) moveAuthFocus(delta int) {
	a.authInputs[a.authFocus].Blur()
	a.authFocus = (a.authFocus + delta + len(a.authInputs)) % len(a.authInputs)
	a.authInputs[a.authFocus].Focus()
}

func (a *App) submitAuth() (tea.Model, tea.Cmd) {
	values := make([]string, len(a.authInputs))
	for i := range a.authInputs {
		values[i] = strings.TrimSpace(a.authInputs[i].Value())
	}

	a.route = routeHome
	if len(values) == 3 {
		return a, a.dispatch(store.Register{Name: values[0], Email: values[1], Password: values[2]})
	}
	return a, a.dispatch(store.Login{Email: values[0], Password: values[1]})
}

// ── Editor ───────────────────────────────────────────────────────

// setupEditor builds the recipe form, prefilled when editing.
func (a *App) setupEditor(r *domain.Recipe) {
	a.formErrors = nil
	a.editingID = ""

	labels := [editorFieldCount]string{"title", "minutes", "image url"}
	a.fields = make([]textinput.Model, editorFieldCount)
	for i := range a.fields {
		in := textinput.New()
		in.Prompt = labels[i] + "> "
		in.PromptStyle = promptStyle
		in.CharLimit = 200
		in.Width = 50
		a.fields[i] = in
	}

	a.ingredients = textarea.New()
	a.ingredients.Placeholder = "one ingredient per line"
	a.ingredients.SetHeight(5)
	a.instructions = textarea.New()
	a.instructions.Placeholder = "one step per line"
	a.instructions.SetHeight(5)

	if r != nil {
		a.editingID = r.ID
		a.fields[fieldTitle].SetValue(r.Title)
		a.fields[fieldTime].SetValue(strconv.Itoa(r.CookingTime))
		a.fields[fieldImage].SetValue(r.Image)
		a.ingredients.SetValue(strings.Join(r.Ingredients, "\n"))
		a.instructions.SetValue(strings.Join(r.Instructions, "\n"))
	}

	a.editorFocus = 0
	a.fields[0].Focus()
}

func (a *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const focusCount = editorFieldCount + 2 // fields plus the two textareas

	switch msg.Type {
	case tea.KeyEsc:
		if a.editingID != "" {
			a.route = routeDetail
		} else {
			a.route = routeHome
		}
		return a, nil
	case tea.KeyTab:
		a.moveEditorFocus((a.editorFocus + 1) % focusCount)
		return a, textinput.Blink
	case tea.KeyShiftTab:
		a.moveEditorFocus((a.editorFocus + focusCount - 1) % focusCount)
		return a, textinput.Blink
	case tea.KeyCtrlS:
		return a.submitEditor()
	}

	var cmd tea.Cmd
	switch {
	case a.editorFocus < editorFieldCount:
		a.fields[a.editorFocus], cmd = a.fields[a.editorFocus].Update(msg)
	case a.editorFocus == editorFieldCount:
		a.ingredients, cmd = a.ingredients.Update(msg)
	default:
		a.instructions, cmd = a.instructions.Update(msg)
	}
	return a, cmd
}

func (a *App) moveEditorFocus(next int) {
	for i := range a.fields {
		a.fields[i].Blur()
	}
	a.ingredients.Blur()
	a.instructions.Blur()

	a.editorFocus = next
	switch {
	case next < editorFieldCount:
		a.fields[next].Focus()
	case next == editorFieldCount:
		a.ingredients.Focus()
	default:
		a.instructions.Focus()
	}
}

// submitEditor validates at the form boundary and dispatches. Invalid
// drafts never reach a slice.
func (a *App) submitEditor() (tea.Model, tea.Cmd) {
	input, errs := validate.Recipe(validate.Draft{
		Title:        a.fields[fieldTitle].Value(),
		CookingTime:  a.fields[fieldTime].Value(),
		Image:        a.fields[fieldImage].Value(),
		Ingredients:  a.ingredients.Value(),
		Instructions: a.instructions.Value(),
	})
	if errs != nil {
		a.formErrors = errs
		return a, nil
	}

	a.formErrors = nil
	if a.editingID != "" {
		if sess := a.state.Session.User; sess != nil {
			input.UserID = sess.UserID
		}
		id := a.editingID
		a.route = routeDetail
		return a, a.dispatch(store.UpdateRecipe{ID: id, Input: input})
	}

	a.route = routeHome
	return a, a.dispatch(store.SaveRecipe{Input: input})
}

// ── Favorites ────────────────────────────────────────────────────

func (a *App) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q", "f":
		a.route = routeHome
		a.selected = 0
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.visibleRecipes())-1 {
			a.selected++
		}
	case "enter":
		if r := a.selectedRecipe(); r != nil {
			a.route = routeDetail
			return a, a.dispatch(store.LoadRecipe{ID: r.ID})
		}
	case "s", " ":
		if r := a.selectedRecipe(); r != nil && a.state.Session.User != nil {
			return a, a.dispatch(store.RemoveFavorite{
				UserID:   a.state.Session.User.UserID,
				RecipeID: r.ID,
			})
		}
	}
	return a, nil
}
