// Package tui provides the terminal user interface for the todo service.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbrandt/todoview/internal/api"
	"github.com/tbrandt/todoview/internal/config"
	"github.com/tbrandt/todoview/internal/todos"
	"github.com/tbrandt/todoview/internal/tui/components"
	"github.com/tbrandt/todoview/internal/tui/styles"
)

// Pane represents which pane is currently focused.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client *api.Client
	config *config.Config

	// Todo state
	cache     *todos.Cache
	selection todos.Selection

	// Submission binding: submitting holds the form's single submission
	// slot, so a second mutating submission cannot start while one is
	// outstanding. The slot is released on acknowledgement or failure.
	// Each dispatch also takes a fresh generation; an acknowledgement
	// carrying a stale generation is dropped.
	submitGen  int
	submitting bool

	// UI state
	focusedPane Pane
	todoCursor  int
	loading     bool
	err         error
	statusMsg   string
	width       int
	height      int

	// Components
	spinner spinner.Model
	sidebar *components.SidebarModel

	// Form state (nil when the modal is closed)
	form *TodoForm
}

// NewApp creates a new App instance.
func NewApp(client *api.Client, cfg *config.Config) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	sidebar := components.NewSidebar()
	sidebar.Focus(true)

	return &App{
		client:      client,
		config:      cfg,
		cache:       todos.NewCache(),
		selection:   todos.NewSelection(),
		focusedPane: PaneSidebar,
		spinner:     s,
		sidebar:     sidebar,
		loading:     true,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadTodos(),
	)
}

// loadTodos performs the single startup fetch of the full collection.
func (a *App) loadTodos() tea.Cmd {
	return func() tea.Msg {
		fetched, err := a.client.FetchAll()
		if err != nil {
			return errMsg{err}
		}
		return todosLoadedMsg{todos: fetched}
	}
}

// visibleTodos resolves the active section's items in presentation order:
// incomplete first, completed last.
func (a *App) visibleTodos() []api.Todo {
	return todos.ReorderByCompletion(a.selection.Items(a.cache.Snapshot()))
}

// refreshSidebar recomputes section items and counts after any mutation
// and re-highlights the active section. The list cursor is left alone:
// callers clamp it only when the mutation touched the active section.
func (a *App) refreshSidebar() {
	a.sidebar.SetItems(components.BuildItems(a.cache.Snapshot()))
	a.sidebar.SetActive(a.selection.Title, a.selection.CompletedScope)
}

// clampCursor keeps the list cursor within the active section.
func (a *App) clampCursor() {
	n := len(a.visibleTodos())
	if a.todoCursor >= n {
		a.todoCursor = n - 1
	}
	if a.todoCursor < 0 {
		a.todoCursor = 0
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
type todosLoadedMsg struct{ todos []api.Todo }
type todoCreatedMsg struct {
	gen  int
	todo *api.Todo
}
type todoUpdatedMsg struct {
	gen  int
	todo *api.Todo
}
type todoToggledMsg struct{ todo *api.Todo }
type todoDeletedMsg struct{ id int }
type submitFailedMsg struct {
	gen int
	err error
}
type mutationFailedMsg struct{ err error }
