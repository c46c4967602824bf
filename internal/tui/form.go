package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbrandt/todoview/internal/api"
)

// Placeholder values a date field carries when the user left it unset.
// They normalize to empty strings before anything goes over the wire.
const (
	PlaceholderDay   = "Day"
	PlaceholderMonth = "Month"
	PlaceholderYear  = "Year"
)

// minTitleLength is the shortest title the form accepts.
const minTitleLength = 3

// ValidationError reports locally rejected form input. No network call is
// made for input that fails validation.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Form field indices for focus management.
const (
	formFieldTitle = iota
	formFieldDay
	formFieldMonth
	formFieldYear
	formFieldCount
)

// TodoForm is the state of the add/edit modal. TodoID is zero until the
// form edits an already-acknowledged todo; a fresh create form never has
// an id, so "edit an unsaved item" cannot be expressed.
type TodoForm struct {
	Title textinput.Model
	Day   textinput.Model
	Month textinput.Model
	Year  textinput.Model

	FocusIndex int
	TodoID     int
}

// NewTodoForm creates an empty form for a new todo.
func NewTodoForm() *TodoForm {
	title := textinput.New()
	title.Placeholder = "Item name"
	title.CharLimit = 100
	title.Width = 40
	title.Focus()

	day := textinput.New()
	day.Placeholder = PlaceholderDay
	day.CharLimit = 2
	day.Width = 6

	month := textinput.New()
	month.Placeholder = PlaceholderMonth
	month.CharLimit = 2
	month.Width = 6

	year := textinput.New()
	year.Placeholder = PlaceholderYear
	year.CharLimit = 4
	year.Width = 6

	return &TodoForm{
		Title: title,
		Day:   day,
		Month: month,
		Year:  year,
	}
}

// NewEditTodoForm creates a form prefilled from a cached todo.
func NewEditTodoForm(t api.Todo) *TodoForm {
	f := NewTodoForm()
	f.TodoID = t.ID
	f.Title.SetValue(t.Title)
	f.Day.SetValue(t.Day)
	f.Month.SetValue(t.Month)
	f.Year.SetValue(t.Year)
	return f
}

// HasTodoID reports whether the form is editing an acknowledged todo.
func (f *TodoForm) HasTodoID() bool {
	return f.TodoID != 0
}

// Update routes input to the focused field and handles focus cycling.
func (f *TodoForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.FocusIndex + 1) % formFieldCount)
			return nil
		case "shift+tab", "up":
			f.setFocus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case formFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case formFieldDay:
		f.Day, cmd = f.Day.Update(msg)
	case formFieldMonth:
		f.Month, cmd = f.Month.Update(msg)
	case formFieldYear:
		f.Year, cmd = f.Year.Update(msg)
	}
	return cmd
}

// setFocus moves focus to the field at index.
func (f *TodoForm) setFocus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Day.Blur()
	f.Month.Blur()
	f.Year.Blur()

	switch index {
	case formFieldTitle:
		f.Title.Focus()
	case formFieldDay:
		f.Day.Focus()
	case formFieldMonth:
		f.Month.Focus()
	case formFieldYear:
		f.Year.Focus()
	}
}

// Validate checks the form locally, before any network call.
func (f *TodoForm) Validate() error {
	if utf8.RuneCountInString(f.Title.Value()) < minTitleLength {
		return &ValidationError{
			Reason: "You must enter a title at least 3 characters long.",
		}
	}
	return nil
}

// normalizeDate maps a placeholder date value to the empty string.
func normalizeDate(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == placeholder {
		return ""
	}
	return value
}

// ToRequest serializes the form for the service, normalizing unset date
// fields to empty strings.
func (f *TodoForm) ToRequest() api.TodoRequest {
	return api.TodoRequest{
		Title: f.Title.Value(),
		Day:   normalizeDate(f.Day.Value(), PlaceholderDay),
		Month: normalizeDate(f.Month.Value(), PlaceholderMonth),
		Year:  normalizeDate(f.Year.Value(), PlaceholderYear),
	}
}
