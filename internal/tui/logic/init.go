package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.refreshTodos(),
	)
}

// Message types
type statusMsg struct{ msg string }

type todosLoadedMsg struct {
	sort  api.SortOrder
	todos []api.Todo
}

type todosFailedMsg struct {
	sort api.SortOrder
	err  error
}

// gen is the TodoForm generation at submit time.
type todoCreatedMsg struct {
	todo *api.Todo
	gen  int
}

type todoUpdatedMsg struct {
	todo *api.Todo
	kind updateKind
	gen  int
}

type todoDeletedMsg struct {
	id      string
	deleted *api.DeletedTodo
}

type mutationFailedMsg struct {
	op  mutation
	err error
}

// updateKind separates field edits from the mark-complete shortcut.
type updateKind int

const (
	updateEdit updateKind = iota
	updateComplete
)

type mutation int

const (
	mutationCreate mutation = iota
	mutationUpdate
	mutationDelete
)

// logMessage is the log line written when the mutation fails.
func (m mutation) logMessage() string {
	switch m {
	case mutationCreate:
		return "Error adding todo"
	case mutationUpdate:
		return "Error updating todo"
	default:
		return "Error deleting todo"
	}
}
