// Package api provides a client for the todo GraphQL API.
package api

// SortOrder is the creation-time ordering passed to the todos query.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Toggle returns the opposite sort order.
func (s SortOrder) Toggle() SortOrder {
	if s == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// Valid reports whether s is one of the two supported orders.
func (s SortOrder) Valid() bool {
	return s == SortAsc || s == SortDesc
}

// Todo represents a task record.
type Todo struct {
	ID          string `json:"todo_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// DeletedTodo is what deletetodo returns; the server does not echo the id.
type DeletedTodo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// CreateTodoInput is the CreateTodoDto input object.
type CreateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTodoInput is the UpdateTodoDto input object.
type UpdateTodoInput struct {
	ID          string `json:"todo_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
