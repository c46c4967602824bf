package todos

import "github.com/tbrandt/todoview/internal/api"

// Reserved section titles. Anything else is a due-date key.
const (
	SectionAll       = "All Todos"
	SectionCompleted = "Completed"
)

// Selection tracks which section is currently active: All Todos, Completed,
// or a due-date bucket, the latter optionally restricted to completed items.
// It is explicit state, not something re-derived from the rendered screen.
type Selection struct {
	Title          string
	CompletedScope bool
}

// NewSelection returns the initial selection, All Todos.
func NewSelection() Selection {
	return Selection{Title: SectionAll}
}

// Select switches to the given section. Any section is reachable from any
// other, so there is nothing to guard.
func (s *Selection) Select(title string, completedScope bool) {
	s.Title = title
	s.CompletedScope = completedScope
}

// Items resolves which todos belong to the active section.
func (s Selection) Items(snapshot []api.Todo) []api.Todo {
	switch s.Title {
	case SectionAll:
		return snapshot
	case SectionCompleted:
		return Completed(snapshot)
	default:
		if s.CompletedScope {
			return CompletedDueOn(snapshot, s.Title)
		}
		return DueOn(snapshot, s.Title)
	}
}

// Count returns how many todos the active section holds, for the
// section-header count.
func (s Selection) Count(snapshot []api.Todo) int {
	return len(s.Items(snapshot))
}

// AffectedBy reports whether a mutation touching the given todo requires
// the active section's list or count to be re-rendered. updated is the
// item's post-mutation state, or its last known state for a delete.
// previous is the pre-mutation state, nil for a create or delete.
func (s Selection) AffectedBy(updated api.Todo, previous *api.Todo) bool {
	if s.contains(updated) {
		return true
	}
	return previous != nil && s.contains(*previous)
}

// contains reports whether a todo belongs to the active section.
func (s Selection) contains(t api.Todo) bool {
	switch s.Title {
	case SectionAll:
		return true
	case SectionCompleted:
		return t.Completed
	default:
		if t.DueDate != s.Title {
			return false
		}
		return !s.CompletedScope || t.Completed
	}
}
