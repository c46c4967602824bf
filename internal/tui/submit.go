package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

// notifyCmd emits a desktop notification without blocking the UI loop.
func notifyCmd(title, body string) tea.Cmd {
	return func() tea.Msg {
		beeep.Notify(title, body, "")
		return nil
	}
}

// bindSubmit claims the form's submission slot and a fresh generation.
// The slot stays held until the acknowledgement or failure comes back.
func (a *App) bindSubmit() int {
	a.submitting = true
	a.submitGen++
	return a.submitGen
}

// submitBound reports whether an acknowledgement belongs to the most
// recently bound submission. Stale acknowledgements are dropped.
func (a *App) submitBound(gen int) bool {
	return gen == a.submitGen
}

// submitCreate validates the form and, if it passes, sends the create to
// the service. The cache is only touched once the acknowledgement arrives.
func (a *App) submitCreate() tea.Cmd {
	if a.submitting {
		return nil
	}
	if err := a.form.Validate(); err != nil {
		a.statusMsg = err.Error()
		return notifyCmd("todoview", err.Error())
	}

	req := a.form.ToRequest()
	gen := a.bindSubmit()
	client := a.client

	return func() tea.Msg {
		todo, err := client.Create(req)
		if err != nil {
			return submitFailedMsg{gen: gen, err: err}
		}
		return todoCreatedMsg{gen: gen, todo: todo}
	}
}

// submitUpdate sends the edited fields of an acknowledged todo.
func (a *App) submitUpdate() tea.Cmd {
	if a.submitting {
		return nil
	}
	if err := a.form.Validate(); err != nil {
		a.statusMsg = err.Error()
		return notifyCmd("todoview", err.Error())
	}

	id := a.form.TodoID
	req := a.form.ToRequest()
	gen := a.bindSubmit()
	client := a.client

	return func() tea.Msg {
		todo, err := client.Update(id, req)
		if err != nil {
			return submitFailedMsg{gen: gen, err: err}
		}
		return todoUpdatedMsg{gen: gen, todo: todo}
	}
}

// submitToggle flips completion on a todo via a targeted patch carrying
// only the completed flag.
func (a *App) submitToggle(id int) tea.Cmd {
	previous, ok := a.cache.FindByID(id)
	if !ok {
		// Raced by a delete; nothing to toggle.
		return nil
	}

	completed := !previous.Completed
	client := a.client

	return func() tea.Msg {
		todo, err := client.SetCompleted(id, completed)
		if err != nil {
			return mutationFailedMsg{err}
		}
		return todoToggledMsg{todo: todo}
	}
}

// submitDelete asks the service to delete a todo. The cached item and its
// rendered row go away only on acknowledgement.
func (a *App) submitDelete(id int) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		if err := client.DeleteTodo(id); err != nil {
			return mutationFailedMsg{err}
		}
		return todoDeletedMsg{id: id}
	}
}

// markCompleteFromForm handles the modal's Mark Complete action.
func (a *App) markCompleteFromForm() tea.Cmd {
	if a.submitting {
		return nil
	}
	if !a.form.HasTodoID() {
		a.statusMsg = "Cannot mark as complete as item has not been created yet!"
		return notifyCmd("todoview", a.statusMsg)
	}

	cached, ok := a.cache.FindByID(a.form.TodoID)
	if ok && cached.Completed {
		// Already complete, just close the modal.
		a.form = nil
		return nil
	}

	id := a.form.TodoID
	a.form = nil
	return a.submitToggle(id)
}
