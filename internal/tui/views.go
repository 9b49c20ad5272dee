package tui

import (
	"fmt"
	"strings"

	"github.com/forkful-app/forkful/internal/domain"
)

// View renders the current page plus the shared status bar.
func (a *App) View() string {
	var body string
	switch a.route {
	case routeHome:
		body = a.viewList("Forkful — recipes", "enter view · / search · n new · f favorites · l login/logout · q quit")
	case routeFavorites:
		body = a.viewList("Favorites", "enter view · s unfavorite · esc back")
	case routeDetail:
		body = a.viewDetail()
	case routeLogin:
		body = a.viewAuth("Sign in", "enter submit · ctrl+r register instead · esc back")
	case routeRegister:
		body = a.viewAuth("Create account", "enter submit · ctrl+r sign in instead · esc back")
	case routeEditor:
		body = a.viewEditor()
	}
	return body + "\n" + a.statusBar()
}

func (a *App) viewList(title, help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(a.search.View() + "\n\n")

	recipes := a.visibleRecipes()
	if len(recipes) == 0 {
		b.WriteString(secondaryStyle.Render("  no recipes") + "\n")
	}
	for i, r := range recipes {
		line := fmt.Sprintf("%s  %dm", r.Title, r.CookingTime)
		if a.isFavorite(r.ID) {
			line += " " + favoriteStyle.Render("♥")
		}
		if i == a.selected {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(primaryStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + secondaryStyle.Render(help) + "\n")
	return b.String()
}

func (a *App) viewDetail() string {
	cur := a.state.Recipes.Current
	if cur == nil {
		return secondaryStyle.Render("loading...") + "\n"
	}

	sess := a.state.Session.User
	owns := sess != nil && cur.UserID == sess.UserID

	var b strings.Builder
	b.WriteString(titleStyle.Render(cur.Title) + "\n")
	meta := fmt.Sprintf("%d minutes", cur.CookingTime)
	if cur.Rating > 0 {
		meta += fmt.Sprintf(" · rated %.1f/5", cur.Rating)
	}
	if a.isFavorite(cur.ID) {
		meta += " · " + favoriteStyle.Render("favorite")
	}
	b.WriteString(secondaryStyle.Render(meta) + "\n\n")

	b.WriteString(headerStyle.Render("Ingredients") + "\n")
	for _, ing := range cur.Ingredients {
		b.WriteString(primaryStyle.Render("  - "+ing) + "\n")
	}
	b.WriteString("\n" + headerStyle.Render("Instructions") + "\n")
	for i, step := range cur.Instructions {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)) + "\n")
	}

	help := "s favorite · esc back"
	if owns {
		help = "e edit · d delete · " + help
	}
	b.WriteString("\n" + secondaryStyle.Render(help) + "\n")
	return b.String()
}

func (a *App) viewAuth(title, help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range a.authInputs {
		b.WriteString(a.authInputs[i].View() + "\n")
	}
	b.WriteString("\n" + secondaryStyle.Render(help) + "\n")
	return b.String()
}

func (a *App) viewEditor() string {
	title := "New recipe"
	if a.editingID != "" {
		title = "Edit recipe"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range a.fields {
		b.WriteString(a.fields[i].View() + "\n")
	}
	b.WriteString("\n" + headerStyle.Render("Ingredients") + "\n")
	b.WriteString(a.ingredients.View() + "\n")
	b.WriteString(headerStyle.Render("Instructions") + "\n")
	b.WriteString(a.instructions.View() + "\n")

	for _, fe := range a.formErrors {
		b.WriteString(errorStyle.Render("  "+fe.Error()) + "\n")
	}

	b.WriteString("\n" + secondaryStyle.Render("tab next field · ctrl+s save · esc cancel") + "\n")
	return b.String()
}

// statusBar summarizes the session and whichever slice is busy or
// failing.
func (a *App) statusBar() string {
	var parts []string

	if sess := a.state.Session.User; a.state.Session.IsAuthenticated && sess != nil {
		parts = append(parts, sess.Name)
	} else {
		parts = append(parts, "not signed in")
	}

	for _, slice := range []struct {
		name   string
		status domain.RequestStatus
		errMsg string
	}{
		{"session", a.state.Session.Status, a.state.Session.Error},
		{"recipes", a.state.Recipes.Status, a.state.Recipes.Error},
		{"favorites", a.state.Favorites.Status, a.state.Favorites.Error},
	} {
		switch slice.status {
		case domain.StatusLoading:
			parts = append(parts, slice.name+": loading")
		case domain.StatusFailed:
			parts = append(parts, errorStyle.Render(slice.name+": "+slice.errMsg))
		}
	}

	return statusStyle.Render(strings.Join(parts, "  ·  "))
}
