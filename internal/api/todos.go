package api

import "fmt"

// FetchAll returns every todo stored by the service.
func (c *Client) FetchAll() ([]Todo, error) {
	var todos []Todo
	if err := c.Get("/api/todos", &todos); err != nil {
		return nil, fmt.Errorf("failed to fetch todos: %w", err)
	}
	return todos, nil
}

// Create creates a new todo. The service assigns the id.
func (c *Client) Create(req TodoRequest) (*Todo, error) {
	var todo Todo
	if err := c.Post("/api/todos", req, &todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

// Update replaces the stored fields of an existing todo and returns the
// updated item as the service sees it.
func (c *Client) Update(id int, req TodoRequest) (*Todo, error) {
	var todo Todo
	if err := c.Put(fmt.Sprintf("/api/todos/%d", id), req, &todo); err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return &todo, nil
}

// SetCompleted updates only the completion flag of an existing todo.
func (c *Client) SetCompleted(id int, completed bool) (*Todo, error) {
	var todo Todo
	req := CompletedRequest{Completed: completed}
	if err := c.Put(fmt.Sprintf("/api/todos/%d", id), req, &todo); err != nil {
		return nil, fmt.Errorf("failed to set completion on todo %d: %w", id, err)
	}
	return &todo, nil
}

// DeleteTodo deletes a todo.
func (c *Client) DeleteTodo(id int) error {
	if err := c.Delete(fmt.Sprintf("/api/todos/%d", id)); err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}
