package api

import (
	"context"
	"fmt"
	"strings"
)

const todoFields = `
      todo_id
      title
      description
      completed
      created_at`

var (
	todosQuery = operation{
		name: "Todos",
		query: `query Todos($sort: String!) {
    todos(sort: $sort) {` + todoFields + `
    }
  }`,
	}

	createTodoMutation = operation{
		name: "CreateTodo",
		query: `mutation CreateTodo($input: CreateTodoDto!) {
    createTodo(input: $input) {` + todoFields + `
    }
  }`,
	}

	updateTodoMutation = operation{
		name: "UpdateTodo",
		query: `mutation UpdateTodo($input: UpdateTodoDto!) {
    updateTodo(input: $input) {` + todoFields + `
    }
  }`,
	}

	deleteTodoMutation = operation{
		name: "Deletetodo",
		query: `mutation Deletetodo($id: String!) {
    deletetodo(id: $id) {
      title
      description
      completed
      created_at
    }
  }`,
	}
)

// GetTodos returns all todos ordered by creation time.
func (c *Client) GetTodos(ctx context.Context, sort SortOrder) ([]Todo, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("invalid sort order %q", sort)
	}

	var data struct {
		Todos []Todo `json:"todos"`
	}
	if err := c.do(ctx, todosQuery, map[string]interface{}{"sort": string(sort)}, &data); err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	if data.Todos == nil {
		data.Todos = []Todo{}
	}
	return data.Todos, nil
}

// CreateTodo creates a new todo.
func (c *Client) CreateTodo(ctx context.Context, input CreateTodoInput) (*Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	var data struct {
		CreateTodo *Todo `json:"createTodo"`
	}
	if err := c.do(ctx, createTodoMutation, map[string]interface{}{"input": input}, &data); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	if data.CreateTodo == nil {
		return nil, fmt.Errorf("failed to create todo: empty result")
	}
	return data.CreateTodo, nil
}

// UpdateTodo replaces the title, description and completion flag of a todo.
func (c *Client) UpdateTodo(ctx context.Context, input UpdateTodoInput) (*Todo, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("todo id is required")
	}

	var data struct {
		UpdateTodo *Todo `json:"updateTodo"`
	}
	if err := c.do(ctx, updateTodoMutation, map[string]interface{}{"input": input}, &data); err != nil {
		return nil, fmt.Errorf("failed to update todo %s: %w", input.ID, err)
	}
	if data.UpdateTodo == nil {
		return nil, fmt.Errorf("failed to update todo %s: empty result", input.ID)
	}
	return data.UpdateTodo, nil
}

// DeleteTodo deletes a todo and returns the removed record's fields.
func (c *Client) DeleteTodo(ctx context.Context, id string) (*DeletedTodo, error) {
	if id == "" {
		return nil, fmt.Errorf("todo id is required")
	}

	var data struct {
		DeleteTodo *DeletedTodo `json:"deletetodo"`
	}
	if err := c.do(ctx, deleteTodoMutation, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	if data.DeleteTodo == nil {
		return nil, fmt.Errorf("failed to delete todo %s: empty result", id)
	}
	return data.DeleteTodo, nil
}
