// Package api provides a client for the todo service JSON API.
package api

// Todo represents a single todo item as stored by the service.
//
// Day, Month and Year are either empty or numeric strings, matching the
// values the service accepts from the edit form. DueDate is a display key
// derived from Month/Year; the cache layer recomputes it on every mutation
// and never trusts the wire value.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Day       string `json:"day"`
	Month     string `json:"month"`
	Year      string `json:"year"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"due_date,omitempty"`
}

// TodoRequest is the request body for creating or updating a todo.
type TodoRequest struct {
	Title string `json:"title"`
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// CompletedRequest is the request body for a completion-only update.
// Only the completed flag is sent; the service leaves other fields alone.
type CompletedRequest struct {
	Completed bool `json:"completed"`
}
