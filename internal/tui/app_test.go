package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbrandt/todoview/internal/api"
	"github.com/tbrandt/todoview/internal/config"
	"github.com/tbrandt/todoview/internal/todos"
)

// newTestApp builds an App whose client points at an unreachable address.
// Tests drive the model by delivering messages directly; no command that
// would hit the network is ever executed.
func newTestApp(t *testing.T, initial []api.Todo) *App {
	t.Helper()
	a := NewApp(api.NewClient("http://127.0.0.1:1"), config.DefaultConfig())
	a.loading = false
	a.cache.LoadAll(initial)
	a.refreshSidebar()
	return a
}

func TestSubmitCreateRejectsShortTitleLocally(t *testing.T) {
	a := newTestApp(t, nil)
	a.form = NewTodoForm()
	a.form.Title.SetValue("ab")

	genBefore := a.submitGen
	a.submitCreate()

	// No submission was bound, so no network call was dispatched.
	if a.submitGen != genBefore {
		t.Error("validation failure must not bind a submission")
	}
	if a.cache.Count() != 0 {
		t.Errorf("cache mutated on rejected input: %d items", a.cache.Count())
	}
	if a.statusMsg == "" {
		t.Error("expected a validation notice")
	}
	if a.form == nil {
		t.Error("form must stay open for correction")
	}
}

func TestSubmitCreateBindsGeneration(t *testing.T) {
	a := newTestApp(t, nil)
	a.form = NewTodoForm()
	a.form.Title.SetValue("Buy milk")

	cmd := a.submitCreate()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	if a.submitGen != 1 {
		t.Errorf("expected generation 1, got %d", a.submitGen)
	}
	if !a.submitting {
		t.Error("dispatch should hold the submission slot")
	}
}

func TestRapidResubmissionDispatchesOnce(t *testing.T) {
	// Hammering Enter on the form: only the first press reaches the
	// service, so the cache and the service cannot diverge.
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(api.Todo{ID: requests, Title: "Buy milk"})
	}))
	defer srv.Close()

	a := NewApp(api.NewClient(srv.URL), config.DefaultConfig())
	a.loading = false
	a.form = NewTodoForm()
	a.form.Title.SetValue("Buy milk")

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	first := a.handleFormKey(enter)
	if first == nil {
		t.Fatal("expected a dispatch command")
	}
	if second := a.handleFormKey(enter); second != nil {
		t.Fatal("second submission started while the first was outstanding")
	}

	a.Update(first())

	if requests != 1 {
		t.Fatalf("expected exactly one request, got %d", requests)
	}
	if a.cache.Count() != 1 {
		t.Fatalf("expected 1 cached item, got %d", a.cache.Count())
	}
	if a.submitting {
		t.Error("acknowledgement should release the submission slot")
	}
}

func TestMarkCompleteBlockedWhileSubmitting(t *testing.T) {
	a := newTestApp(t, []api.Todo{{ID: 4, Title: "Edited"}})
	a.form = NewEditTodoForm(mustFind(t, a.cache, 4))

	if cmd := a.submitUpdate(); cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	if cmd := a.markCompleteFromForm(); cmd != nil {
		t.Error("mark-complete started while a submission was outstanding")
	}
	if a.form == nil {
		t.Error("form must stay open while the submission is in flight")
	}
}

func TestFailureReleasesSubmissionSlot(t *testing.T) {
	a := newTestApp(t, nil)
	a.form = NewTodoForm()
	a.form.Title.SetValue("Buy milk")

	a.submitCreate()
	a.Update(submitFailedMsg{gen: a.submitGen, err: errFake})

	if a.submitting {
		t.Error("failure should release the submission slot")
	}
	if a.form == nil {
		t.Error("form must stay open for correction")
	}

	// The corrected resubmission dispatches again.
	if cmd := a.submitCreate(); cmd == nil {
		t.Error("expected the resubmission to dispatch")
	}
}

func TestStaleFailureIsDropped(t *testing.T) {
	a := newTestApp(t, nil)
	a.form = NewTodoForm()
	a.form.Title.SetValue("Buy milk")

	a.submitCreate() // binds generation 1

	// A failure from a binding that no longer exists.
	a.Update(submitFailedMsg{gen: 0, err: errFake})
	if a.statusMsg != "" {
		t.Errorf("stale failure surfaced: %q", a.statusMsg)
	}
	if !a.submitting {
		t.Error("the live submission must keep its slot")
	}
}

var errFake = &api.APIError{StatusCode: 500, Message: "boom"}

func TestCreateAcknowledgementRefreshesViews(t *testing.T) {
	a := newTestApp(t, nil)
	a.selection.Select("5/24", false)
	a.form = NewTodoForm()
	a.form.Title.SetValue("Buy milk")

	a.submitCreate()
	a.Update(todoCreatedMsg{gen: a.submitGen, todo: &api.Todo{
		ID: 3, Title: "Buy milk", Month: "1", Year: "2025",
	}})

	if a.form != nil {
		t.Error("form should close on acknowledgement")
	}
	if a.selection.Title != todos.SectionAll {
		t.Errorf("selection should snap to All Todos, got %q", a.selection.Title)
	}

	stored, ok := a.cache.FindByID(3)
	if !ok {
		t.Fatal("created todo missing from cache")
	}
	if stored.DueDate != "1/25" {
		t.Errorf("due date not computed on insert: %q", stored.DueDate)
	}

	items := a.sidebar.Items()
	if len(items) == 0 || items[0].Title != todos.SectionAll || items[0].Count != 1 {
		t.Errorf("sidebar not refreshed: %+v", items)
	}
}

func TestUpdateAcknowledgementReplacesInCache(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second", Month: "5", Year: "2024"},
	})
	a.form = NewEditTodoForm(mustFind(t, a.cache, 2))
	a.form.Title.SetValue("Second edited")
	a.form.Month.SetValue("6")

	a.submitUpdate()
	a.Update(todoUpdatedMsg{gen: a.submitGen, todo: &api.Todo{
		ID: 2, Title: "Second edited", Month: "6", Year: "2024",
	}})

	stored := mustFind(t, a.cache, 2)
	if stored.Title != "Second edited" || stored.DueDate != "6/24" {
		t.Errorf("cache not updated: %+v", stored)
	}
	if a.cache.Count() != 2 {
		t.Errorf("expected 2 items, got %d", a.cache.Count())
	}
	if a.form != nil {
		t.Error("form should close on acknowledgement")
	}
}

func TestToggleCarriesDateFieldsForward(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 2, Title: "May todo", Month: "5", Year: "2024"},
	})

	// A completion-only patch: the acknowledgement carries no date
	// fields, yet the cached dates must survive.
	a.Update(todoToggledMsg{todo: &api.Todo{ID: 2, Completed: true}})

	stored := mustFind(t, a.cache, 2)
	if !stored.Completed {
		t.Error("completion flag not applied")
	}
	if stored.Month != "5" || stored.Year != "2024" {
		t.Errorf("date fields lost: month %q year %q", stored.Month, stored.Year)
	}
	if stored.DueDate != "5/24" {
		t.Errorf("due date degraded to %q", stored.DueDate)
	}
}

func TestToggleAfterDeleteIsNoop(t *testing.T) {
	a := newTestApp(t, nil)

	// Acknowledgement for an item a delete already removed.
	a.Update(todoToggledMsg{todo: &api.Todo{ID: 9, Completed: true}})

	if a.cache.Count() != 0 {
		t.Errorf("cache grew on orphaned toggle: %d items", a.cache.Count())
	}
}

func TestToggleWhileAllTodosSelected(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1},
		{ID: 2, Month: "5", Year: "2024"},
	})

	completedSection := todos.Selection{Title: todos.SectionCompleted}
	before := completedSection.Count(a.cache.Snapshot())

	a.Update(todoToggledMsg{todo: &api.Todo{ID: 2, Completed: true}})

	after := completedSection.Count(a.cache.Snapshot())
	if after != before+1 {
		t.Errorf("completed count: expected %d, got %d", before+1, after)
	}

	visible := a.visibleTodos()
	if len(visible) != 2 {
		t.Fatalf("All Todos should keep both items, got %d", len(visible))
	}
	if visible[len(visible)-1].ID != 2 {
		t.Errorf("completed item should render last, got id %d", visible[len(visible)-1].ID)
	}
}

func TestUpdateOutsideSectionLeavesCursorAlone(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1, Title: "May one", Month: "5", Year: "2024"},
		{ID: 2, Title: "May two", Month: "5", Year: "2024"},
		{ID: 3, Title: "June one", Month: "6", Year: "2024"},
	})
	a.selection.Select("5/24", false)
	a.todoCursor = 1

	a.form = NewEditTodoForm(mustFind(t, a.cache, 3))
	a.form.Month.SetValue("7")

	a.submitUpdate()
	a.Update(todoUpdatedMsg{gen: a.submitGen, todo: &api.Todo{
		ID: 3, Title: "June one", Month: "7", Year: "2024",
	}})

	// The mutation never touched the active section, so the cursor
	// stays where the user left it.
	if a.todoCursor != 1 {
		t.Errorf("cursor moved to %d for an unrelated mutation", a.todoCursor)
	}
}

func TestUpdateLeavingSectionClampsCursor(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1, Title: "May one", Month: "5", Year: "2024"},
		{ID: 2, Title: "May two", Month: "5", Year: "2024"},
	})
	a.selection.Select("5/24", false)
	a.todoCursor = 1

	a.form = NewEditTodoForm(mustFind(t, a.cache, 2))
	a.form.Month.SetValue("6")

	a.submitUpdate()
	a.Update(todoUpdatedMsg{gen: a.submitGen, todo: &api.Todo{
		ID: 2, Title: "May two", Month: "6", Year: "2024",
	}})

	if got := len(a.visibleTodos()); got != 1 {
		t.Fatalf("expected 1 item left in the section, got %d", got)
	}
	if a.todoCursor != 0 {
		t.Errorf("cursor not clamped after the row left the section: %d", a.todoCursor)
	}
}

func TestDeleteOutsideSectionLeavesCursorAlone(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1, Title: "May one", Month: "5", Year: "2024"},
		{ID: 2, Title: "May two", Month: "5", Year: "2024"},
		{ID: 3, Title: "June one", Month: "6", Year: "2024"},
	})
	a.selection.Select("5/24", false)
	a.todoCursor = 1

	a.Update(todoDeletedMsg{id: 3})

	if a.todoCursor != 1 {
		t.Errorf("cursor moved to %d for a delete in another section", a.todoCursor)
	}
}

func TestDeleteAcknowledgementRemovesRow(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	})
	a.todoCursor = 1

	a.Update(todoDeletedMsg{id: 2})

	if a.cache.Count() != 1 {
		t.Fatalf("expected 1 item, got %d", a.cache.Count())
	}
	if a.todoCursor != 0 {
		t.Errorf("cursor not clamped: %d", a.todoCursor)
	}
}

func TestMarkCompleteFromFormWithoutID(t *testing.T) {
	a := newTestApp(t, nil)
	a.form = NewTodoForm()

	a.markCompleteFromForm()

	if a.form == nil {
		t.Error("form should stay open")
	}
	if a.statusMsg == "" {
		t.Error("expected a notice about the unsaved item")
	}
}

func TestMarkCompleteFromFormAlreadyComplete(t *testing.T) {
	a := newTestApp(t, []api.Todo{
		{ID: 5, Title: "Done already", Completed: true},
	})
	a.form = NewEditTodoForm(mustFind(t, a.cache, 5))

	cmd := a.markCompleteFromForm()

	if cmd != nil {
		t.Error("no network call for an already-complete item")
	}
	if a.form != nil {
		t.Error("modal should simply close")
	}
}

func mustFind(t *testing.T, c *todos.Cache, id int) api.Todo {
	t.Helper()
	todo, ok := c.FindByID(id)
	if !ok {
		t.Fatalf("todo %d not in cache", id)
	}
	return todo
}
