package todos

import (
	"testing"

	"github.com/tbrandt/todoview/internal/api"
)

func testSnapshot() []api.Todo {
	return withDueDates([]api.Todo{
		{ID: 1, Title: "No date"},
		{ID: 2, Title: "May", Month: "5", Year: "2024"},
		{ID: 3, Title: "May done", Month: "5", Year: "2024", Completed: true},
		{ID: 4, Title: "Done"},
	})
}

func TestSelectionInitialState(t *testing.T) {
	s := NewSelection()
	if s.Title != SectionAll || s.CompletedScope {
		t.Errorf("unexpected initial selection: %+v", s)
	}
}

func TestSelectionItems(t *testing.T) {
	snapshot := testSnapshot()
	snapshot[3].Completed = true

	tests := []struct {
		name           string
		title          string
		completedScope bool
		wantIDs        []int
	}{
		{
			name:    "all todos",
			title:   SectionAll,
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "completed",
			title:   SectionCompleted,
			wantIDs: []int{3, 4},
		},
		{
			name:    "date bucket",
			title:   "5/24",
			wantIDs: []int{2, 3},
		},
		{
			name:           "date bucket completed scope",
			title:          "5/24",
			completedScope: true,
			wantIDs:        []int{3},
		},
		{
			name:    "empty date bucket",
			title:   "9/99",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.Select(tt.title, tt.completedScope)

			items := s.Items(snapshot)
			if len(items) != len(tt.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tt.wantIDs), len(items))
			}
			for i, want := range tt.wantIDs {
				if items[i].ID != want {
					t.Errorf("item %d: expected id %d, got %d", i, want, items[i].ID)
				}
			}
			if s.Count(snapshot) != len(tt.wantIDs) {
				t.Errorf("count %d disagrees with items %d", s.Count(snapshot), len(tt.wantIDs))
			}
		})
	}
}

func TestSelectionItemsIdempotent(t *testing.T) {
	snapshot := testSnapshot()
	s := NewSelection()
	s.Select("5/24", false)

	first := s.Items(snapshot)
	second := s.Items(snapshot)

	if len(first) != len(second) {
		t.Fatalf("resolutions differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("resolution differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSelectionCompletionToggleCounts(t *testing.T) {
	// Toggling completion on a todo while All Todos is active: the All
	// list keeps both items and the Completed count grows by one.
	snapshot := withDueDates([]api.Todo{
		{ID: 1},
		{ID: 2, Month: "5", Year: "2024"},
	})

	all := NewSelection()
	completed := Selection{Title: SectionCompleted}

	beforeCount := completed.Count(snapshot)

	snapshot[1].Completed = true

	if got := completed.Count(snapshot); got != beforeCount+1 {
		t.Errorf("completed count: expected %d, got %d", beforeCount+1, got)
	}
	if got := all.Count(snapshot); got != 2 {
		t.Errorf("all todos count: expected 2, got %d", got)
	}

	reordered := ReorderByCompletion(all.Items(snapshot))
	if reordered[len(reordered)-1].ID != 2 {
		t.Errorf("expected completed todo last, got id %d", reordered[len(reordered)-1].ID)
	}
}

func TestSelectionAffectedBy(t *testing.T) {
	mayDone := api.Todo{ID: 3, Month: "5", Year: "2024", DueDate: "5/24", Completed: true}
	may := api.Todo{ID: 2, Month: "5", Year: "2024", DueDate: "5/24"}
	junePrev := api.Todo{ID: 5, Month: "6", Year: "2024", DueDate: "6/24"}

	tests := []struct {
		name      string
		selection Selection
		updated   api.Todo
		previous  *api.Todo
		want      bool
	}{
		{
			name:      "all todos always affected",
			selection: Selection{Title: SectionAll},
			updated:   may,
			want:      true,
		},
		{
			name:      "completed affected by newly completed item",
			selection: Selection{Title: SectionCompleted},
			updated:   mayDone,
			previous:  &may,
			want:      true,
		},
		{
			name:      "completed affected by un-completion",
			selection: Selection{Title: SectionCompleted},
			updated:   may,
			previous:  &mayDone,
			want:      true,
		},
		{
			name:      "completed unaffected by incomplete create",
			selection: Selection{Title: SectionCompleted},
			updated:   may,
			want:      false,
		},
		{
			name:      "date bucket affected by member",
			selection: Selection{Title: "5/24"},
			updated:   may,
			want:      true,
		},
		{
			name:      "date bucket affected by item moving out",
			selection: Selection{Title: "6/24"},
			updated:   may,
			previous:  &junePrev,
			want:      true,
		},
		{
			name:      "unrelated date bucket unaffected",
			selection: Selection{Title: "1/30"},
			updated:   may,
			previous:  &may,
			want:      false,
		},
		{
			name:      "completed-scope bucket needs completion",
			selection: Selection{Title: "5/24", CompletedScope: true},
			updated:   may,
			want:      false,
		},
		{
			name:      "completed-scope bucket affected by completed member",
			selection: Selection{Title: "5/24", CompletedScope: true},
			updated:   mayDone,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.selection.AffectedBy(tt.updated, tt.previous)
			if got != tt.want {
				t.Errorf("AffectedBy = %v, want %v", got, tt.want)
			}
		})
	}
}
