package todos

import "github.com/tbrandt/todoview/internal/api"

// Cache owns the authoritative in-memory list of todos. It is populated
// once at startup from a full fetch and mutated only after the service
// acknowledges a create, update or delete; no other code touches the list.
//
// Lookups are linear scans by id. The collection is a single user's todo
// list, small enough that an id index would buy nothing.
type Cache struct {
	todos []api.Todo
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// LoadAll replaces the entire collection with the fetched todos,
// recomputing each item's due-date key.
func (c *Cache) LoadAll(todos []api.Todo) {
	c.todos = make([]api.Todo, len(todos))
	copy(c.todos, todos)
	for i := range c.todos {
		c.todos[i].DueDate = DueDate(c.todos[i].Month, c.todos[i].Year)
	}
}

// Insert appends a newly acknowledged todo and returns the stored item.
// The id comes from the service, so the caller guarantees it is not
// already present.
func (c *Cache) Insert(todo api.Todo) api.Todo {
	todo.DueDate = DueDate(todo.Month, todo.Year)
	c.todos = append(c.todos, todo)
	return todo
}

// FindByID returns the stored todo with the given id.
func (c *Cache) FindByID(id int) (api.Todo, bool) {
	for _, t := range c.todos {
		if t.ID == id {
			return t, true
		}
	}
	return api.Todo{}, false
}

// Replace substitutes the stored todo with the same id, preserving its
// position in the collection. Silently a no-op if the id is absent — an
// update can race a delete and must not blow up.
func (c *Cache) Replace(todo api.Todo) {
	todo.DueDate = DueDate(todo.Month, todo.Year)
	for i := range c.todos {
		if c.todos[i].ID == todo.ID {
			c.todos[i] = todo
			return
		}
	}
}

// Remove deletes the stored todo with the given id; no-op if absent.
func (c *Cache) Remove(id int) {
	for i := range c.todos {
		if c.todos[i].ID == id {
			c.todos = append(c.todos[:i], c.todos[i+1:]...)
			return
		}
	}
}

// Count returns the number of stored todos.
func (c *Cache) Count() int {
	return len(c.todos)
}

// Snapshot returns a copy of the collection for view computation.
// Callers may reorder or filter the copy freely.
func (c *Cache) Snapshot() []api.Todo {
	snapshot := make([]api.Todo, len(c.todos))
	copy(snapshot, c.todos)
	return snapshot
}
