package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbrandt/todoview/internal/todos"
	"github.com/tbrandt/todoview/internal/tui/components"
)

// sidebarWidth is the rendered width of the section pane.
const sidebarWidth = 28

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sidebar.SetSize(sidebarWidth, msg.Height)
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case errMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil

	case todosLoadedMsg:
		a.loading = false
		a.cache.LoadAll(msg.todos)
		a.refreshSidebar()
		return a, nil

	case todoCreatedMsg:
		if !a.submitBound(msg.gen) {
			return a, nil
		}
		a.submitting = false
		a.cache.Insert(*msg.todo)
		a.form = nil
		// A new item always lands in the All Todos view.
		a.selection.Select(todos.SectionAll, false)
		a.todoCursor = 0
		a.refreshSidebar()
		a.statusMsg = "Todo added"
		return a, nil

	case todoUpdatedMsg:
		if !a.submitBound(msg.gen) {
			return a, nil
		}
		a.submitting = false
		previous, had := a.cache.FindByID(msg.todo.ID)
		a.cache.Replace(*msg.todo)
		a.form = nil
		a.refreshSidebar()
		if had {
			updated, _ := a.cache.FindByID(msg.todo.ID)
			if a.selection.AffectedBy(updated, &previous) {
				a.clampCursor()
			}
		}
		a.statusMsg = "Todo updated"
		return a, nil

	case todoToggledMsg:
		return a, a.handleToggled(msg)

	case todoDeletedMsg:
		removed, had := a.cache.FindByID(msg.id)
		a.cache.Remove(msg.id)
		a.refreshSidebar()
		if had && a.selection.AffectedBy(removed, nil) {
			a.clampCursor()
		}
		a.statusMsg = "Todo deleted"
		return a, nil

	case submitFailedMsg:
		if !a.submitBound(msg.gen) {
			return a, nil
		}
		a.submitting = false
		// Cache and views stay as they were; the form stays open so the
		// user can correct and resubmit.
		a.statusMsg = fmt.Sprintf("Save failed: %v", msg.err)
		return a, notifyCmd("todoview", a.statusMsg)

	case mutationFailedMsg:
		a.statusMsg = fmt.Sprintf("Request failed: %v", msg.err)
		return a, notifyCmd("todoview", a.statusMsg)

	case components.SectionSelectedMsg:
		a.selection.Select(msg.Title, msg.CompletedScope)
		a.sidebar.SetActive(msg.Title, msg.CompletedScope)
		a.todoCursor = 0
		a.setPane(PaneList)
		return a, nil
	}

	return a, nil
}

// handleToggled applies an acknowledged completion toggle. The patch only
// carried the completed flag, so the replacement is built from the cached
// item: date fields carry forward and the due-date key cannot degrade to
// "No Due Date" on a completion-only update.
func (a *App) handleToggled(msg todoToggledMsg) tea.Cmd {
	previous, ok := a.cache.FindByID(msg.todo.ID)
	if !ok {
		// Raced by a delete between request and acknowledgement.
		return nil
	}

	updated := previous
	updated.Completed = msg.todo.Completed
	a.cache.Replace(updated)
	a.refreshSidebar()

	if a.selection.AffectedBy(updated, &previous) {
		a.clampCursor()
	}
	return nil
}

// handleKeyMsg routes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if a.form != nil {
		return a.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit

	case "tab":
		if a.focusedPane == PaneSidebar {
			a.setPane(PaneList)
		} else {
			a.setPane(PaneSidebar)
		}
		return nil

	case "a", "n":
		a.statusMsg = ""
		a.form = NewTodoForm()
		return nil
	}

	if a.focusedPane == PaneSidebar {
		return a.sidebar.Update(msg)
	}
	return a.handleListKey(msg)
}

// handleFormKey handles keys while the edit modal is open.
func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.form = nil
		return nil

	case "enter":
		if a.form.HasTodoID() {
			return a.submitUpdate()
		}
		return a.submitCreate()

	case "ctrl+k":
		return a.markCompleteFromForm()
	}

	return a.form.Update(msg)
}

// handleListKey handles keys while the todo list pane is focused.
func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	visible := a.visibleTodos()

	switch msg.String() {
	case "j", "down":
		if a.todoCursor < len(visible)-1 {
			a.todoCursor++
		}
	case "k", "up":
		if a.todoCursor > 0 {
			a.todoCursor--
		}
	case "g":
		a.todoCursor = 0
	case "G":
		if len(visible) > 0 {
			a.todoCursor = len(visible) - 1
		}

	case "e", "enter":
		if a.todoCursor < len(visible) {
			a.statusMsg = ""
			a.form = NewEditTodoForm(visible[a.todoCursor])
		}

	case "x", " ":
		if a.todoCursor < len(visible) {
			return a.submitToggle(visible[a.todoCursor].ID)
		}

	case "d":
		if a.todoCursor < len(visible) {
			return a.submitDelete(visible[a.todoCursor].ID)
		}

	case "y":
		if a.todoCursor < len(visible) {
			if err := clipboard.WriteAll(visible[a.todoCursor].Title); err != nil {
				a.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			} else {
				a.statusMsg = "Title copied"
			}
		}
	}

	return nil
}

// setPane moves focus between the sidebar and the list.
func (a *App) setPane(pane Pane) {
	a.focusedPane = pane
	a.sidebar.Focus(pane == PaneSidebar)
}
