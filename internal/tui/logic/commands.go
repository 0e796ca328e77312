package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
)

// refreshTodos marks the list as loading and queries it for the current sort.
func (h *Handler) refreshTodos() tea.Cmd {
	h.Loading = true
	return h.fetchTodosCmd(h.Sort)
}

func (h *Handler) fetchTodosCmd(sort api.SortOrder) tea.Cmd {
	client, ctx := h.Client, h.ctx
	return func() tea.Msg {
		todos, err := client.GetTodos(ctx, sort)
		if err != nil {
			return todosFailedMsg{sort: sort, err: err}
		}
		return todosLoadedMsg{sort: sort, todos: todos}
	}
}

// createTodoCmd and updateTodoCmd stamp their result with the form
// generation that was current when the draft was submitted.
func (h *Handler) createTodoCmd(draft api.CreateTodoInput) tea.Cmd {
	client, ctx, gen := h.Client, h.ctx, h.TodoForm.Generation
	return func() tea.Msg {
		todo, err := client.CreateTodo(ctx, draft)
		if err != nil {
			return mutationFailedMsg{op: mutationCreate, err: err}
		}
		return todoCreatedMsg{todo: todo, gen: gen}
	}
}

func (h *Handler) updateTodoCmd(input api.UpdateTodoInput, kind updateKind) tea.Cmd {
	client, ctx, gen := h.Client, h.ctx, h.TodoForm.Generation
	return func() tea.Msg {
		todo, err := client.UpdateTodo(ctx, input)
		if err != nil {
			return mutationFailedMsg{op: mutationUpdate, err: err}
		}
		return todoUpdatedMsg{todo: todo, kind: kind, gen: gen}
	}
}

func (h *Handler) deleteTodoCmd(id string) tea.Cmd {
	client, ctx := h.Client, h.ctx
	return func() tea.Msg {
		deleted, err := client.DeleteTodo(ctx, id)
		if err != nil {
			return mutationFailedMsg{op: mutationDelete, err: err}
		}
		return todoDeletedMsg{id: id, deleted: deleted}
	}
}

func (h *Handler) copyCmd(text string) tea.Cmd {
	write := h.copy
	return func() tea.Msg {
		if err := write(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}

// submitTodo sends the draft as a create, or as an update while editing.
// Fields go out exactly as typed. Only a create is checked for a blank
// title; an edit leaves that to the server.
func (h *Handler) submitTodo() tea.Cmd {
	draft := h.TodoForm.Draft()

	if h.Editing != nil {
		h.StatusMsg = "Saving..."
		return h.updateTodoCmd(api.UpdateTodoInput{
			ID:          h.Editing.ID,
			Title:       draft.Title,
			Description: draft.Description,
			Completed:   draft.Completed,
		}, updateEdit)
	}

	if !h.TodoForm.IsValid() {
		return h.raiseAlert(emptyTitleAlert)
	}

	h.StatusMsg = "Adding..."
	return h.createTodoCmd(api.CreateTodoInput{
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   draft.Completed,
	})
}

// markComplete moves the task to the done list right away and then
// tells the server. The local move is never rolled back.
func (h *Handler) markComplete(t api.Todo) tea.Cmd {
	if h.IsCompletedLocally(t.ID) {
		h.StatusMsg = "Already done"
		return nil
	}

	h.Completed = append(h.Completed, t)
	h.ClampCursor()

	return h.updateTodoCmd(api.UpdateTodoInput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   true,
	}, updateComplete)
}

func (h *Handler) deleteTodo(id string) tea.Cmd {
	if id == "" {
		h.Logger.Error("Error deleting todo: ID is required")
		return nil
	}
	h.StatusMsg = "Deleting..."
	return h.deleteTodoCmd(id)
}

// toggleSort flips the sort order. A list cached for the new order shows
// immediately while the query runs again.
func (h *Handler) toggleSort() tea.Cmd {
	h.Sort = h.Sort.Toggle()
	h.TaskCursor = 0
	h.QueryErr = nil
	return h.refreshTodos()
}
