// Package todos holds the client-side todo state: the in-memory cache of
// items synchronized with the remote service, the derived views computed
// from it (grouping, partitioning, ordering), and the section selection.
package todos

// NoDueDate is the display key for todos without a complete month/year.
const NoDueDate = "No Due Date"

// DueDate computes the display due-date key for a month/year pair.
// It is total: any combination of inputs yields a key, never an error.
// A missing month or year means the todo has no due date.
func DueDate(month, year string) string {
	if month == "" || year == "" {
		return NoDueDate
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return month + "/" + year
}
