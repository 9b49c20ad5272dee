// Package tui is the terminal view layer. Pages render from store
// snapshots and issue commands through Dispatch; all redirect and
// ownership behavior lives here, not in the state slices.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkful-app/forkful/internal/logger"
	"github.com/forkful-app/forkful/internal/store"
	"github.com/forkful-app/forkful/internal/validate"
)

// route identifies the page being shown.
type route int

const (
	routeHome route = iota
	routeDetail
	routeLogin
	routeRegister
	routeEditor
	routeFavorites
)

// Messages.
type (
	// stateMsg carries a fresh store snapshot into the event loop.
	stateMsg store.State
	// forceLoginMsg is sent when the gateway reports the token invalid.
	forceLoginMsg struct{}
)

// App is the Bubble Tea model for the whole application.
type App struct {
	store *store.Store
	log   *logger.Logger

	program *tea.Program
	state   store.State
	route   route
	width   int
	height  int

	// Home page.
	search   textinput.Model
	selected int

	// Auth pages. Inputs are name, email, password; login skips name.
	authInputs []textinput.Model
	authFocus  int

	// Editor page.
	editingID    string
	fields       []textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	editorFocus  int
	formErrors   []validate.FieldError
}

// Editor field indexes.
const (
	fieldTitle = iota
	fieldTime
	fieldImage
	editorFieldCount
)

// NewApp creates the view layer over a store.
func NewApp(st *store.Store, log *logger.Logger) *App {
	search := textinput.New()
	search.Prompt = "search> "
	search.PromptStyle = promptStyle
	search.CharLimit = 100
	search.Width = 40

	a := &App{
		store:  st,
		log:    log,
		search: search,
	}
	return a
}

// Run starts the event loop and blocks until quit. The store's state
// changes are forwarded into the loop; for the stale-response reasons
// documented in the store, the latest snapshot always wins.
func (a *App) Run(ctx context.Context) error {
	a.program = tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))

	a.store.Subscribe(func(st store.State) {
		a.program.Send(stateMsg(st))
	})

	_, err := a.program.Run()
	return err
}

// ForceLogin routes the user to the login page from outside the event
// loop. The gateway's unauthorized hook calls this after clearing the
// persisted session.
func (a *App) ForceLogin() {
	if a.program != nil {
		a.program.Send(forceLoginMsg{})
	}
}

// Init dispatches the startup work: restore a persisted session and
// load the collection.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.dispatch(store.CheckAuth{}),
		a.dispatch(store.LoadRecipes{}),
	)
}

// dispatch runs a store command on its own goroutine. Outcomes come
// back through the subscription as stateMsg values.
func (a *App) dispatch(cmd store.Command) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.Dispatch(context.Background(), cmd); err != nil {
			a.log.Error("dispatch: %v", err)
		}
		return nil
	}
}

// Update handles one message.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case stateMsg:
		a.state = store.State(msg)
		a.clampSelection()
		// Ownership is enforced here: editing somebody else's recipe
		// bounces back to the detail page's origin.
		if a.route == routeEditor && a.editingID != "" {
			cur := a.state.Recipes.Current
			sess := a.state.Session.User
			if cur != nil && cur.ID == a.editingID && (sess == nil || cur.UserID != sess.UserID) {
				a.route = routeHome
			}
		}
		return a, nil

	case forceLoginMsg:
		a.route = routeLogin
		a.setupAuthInputs(false)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateFocused(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.route {
	case routeHome:
		return a.updateHome(msg)
	case routeDetail:
		return a.updateDetail(msg)
	case routeLogin, routeRegister:
		return a.updateAuth(msg)
	case routeEditor:
		return a.updateEditor(msg)
	case routeFavorites:
		return a.updateFavorites(msg)
	}
	return a, nil
}

// updateFocused feeds non-key messages (cursor blinks and the like)
// to whichever inputs are live on the current page.
func (a *App) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch a.route {
	case routeHome:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		cmds = append(cmds, cmd)
	case routeLogin, routeRegister:
		for i := range a.authInputs {
			var cmd tea.Cmd
			a.authInputs[i], cmd = a.authInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	case routeEditor:
		for i := range a.fields {
			var cmd tea.Cmd
			a.fields[i], cmd = a.fields[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.ingredients, cmd = a.ingredients.Update(msg)
		cmds = append(cmds, cmd)
		a.instructions, cmd = a.instructions.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) clampSelection() {
	if n := len(a.visibleRecipes()); a.selected >= n {
		a.selected = max(0, n-1)
	}
}
