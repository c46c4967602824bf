package todos

import (
	"sort"
	"strconv"

	"github.com/tbrandt/todoview/internal/api"
)

// Group is one due-date bucket of todos. GroupByDueDate returns groups in
// chronological order, so a slice keeps the iteration order a map would lose.
type Group struct {
	Key   string
	Todos []api.Todo
}

// dateNum converts a numeric date string for comparison. Empty strings
// convert to 0, which sorts the "No Due Date" bucket first.
func dateNum(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// SortByDueChronology returns the todos stably sorted by numeric year,
// ties broken by numeric month. The input is not mutated.
func SortByDueChronology(items []api.Todo) []api.Todo {
	sorted := make([]api.Todo, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dateNum(sorted[i].Year) != dateNum(sorted[j].Year) {
			return dateNum(sorted[i].Year) < dateNum(sorted[j].Year)
		}
		return dateNum(sorted[i].Month) < dateNum(sorted[j].Month)
	})
	return sorted
}

// GroupByDueDate buckets todos by due-date key, with buckets ordered by
// the first occurrence of each key in chronological order.
func GroupByDueDate(items []api.Todo) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, t := range SortByDueChronology(items) {
		i, ok := index[t.DueDate]
		if !ok {
			i = len(groups)
			index[t.DueDate] = i
			groups = append(groups, Group{Key: t.DueDate})
		}
		groups[i].Todos = append(groups[i].Todos, t)
	}

	return groups
}

// Partition splits todos into completed and incomplete slices,
// preserving relative order within each.
func Partition(items []api.Todo) (completed, incomplete []api.Todo) {
	for _, t := range items {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return completed, incomplete
}

// Completed returns only the completed todos.
func Completed(items []api.Todo) []api.Todo {
	completed, _ := Partition(items)
	return completed
}

// ReorderByCompletion returns the todos with all incomplete items first,
// then all completed items, preserving relative order within each part.
// This is a presentation order only; the cache order is untouched.
func ReorderByCompletion(items []api.Todo) []api.Todo {
	completed, incomplete := Partition(items)
	return append(incomplete, completed...)
}

// DueOn returns the todos whose due-date key matches key.
func DueOn(items []api.Todo, key string) []api.Todo {
	var matched []api.Todo
	for _, t := range items {
		if t.DueDate == key {
			matched = append(matched, t)
		}
	}
	return matched
}

// CompletedDueOn returns the completed todos whose due-date key matches key.
func CompletedDueOn(items []api.Todo, key string) []api.Todo {
	return DueOn(Completed(items), key)
}
