package logic

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Handler owns every state transition of the program.
type Handler struct {
	*state.State
	ctx     context.Context
	alerter Alerter
	copy    func(string) error
}

// NewHandler wraps s. ctx bounds every API call the handler issues.
func NewHandler(ctx context.Context, s *state.State) *Handler {
	if s.Logger == nil {
		s.Logger = logging.Discard()
	}
	return &Handler{
		State:   s,
		ctx:     ctx,
		alerter: desktopAlerter{},
		copy:    clipboard.WriteAll,
	}
}

// SetAlerter replaces the desktop alert backend.
func (h *Handler) SetAlerter(a Alerter) {
	h.alerter = a
}

// SetClipboard replaces the clipboard writer.
func (h *Handler) SetClipboard(write func(string) error) {
	h.copy = write
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case todosLoadedMsg:
		h.handleTodosLoaded(msg)
		return nil

	case todosFailedMsg:
		h.logError("Error fetching todos", msg.err, "sort", msg.sort)
		if msg.sort == h.Sort {
			h.Loading = false
			h.QueryErr = msg.err
			h.ClampCursor()
		}
		return nil

	case todoCreatedMsg:
		h.StatusMsg = "Task added"
		// A draft loaded or cleared since the submit is newer; leave it.
		if msg.gen == h.TodoForm.Generation {
			h.TodoForm.Reset()
		}
		return h.refreshTodos()

	case todoUpdatedMsg:
		return h.handleTodoUpdated(msg)

	case todoDeletedMsg:
		h.handleTodoDeleted(msg.id)
		return nil

	case mutationFailedMsg:
		h.logError(msg.op.logMessage(), msg.err)
		h.StatusMsg = "Error: " + msg.err.Error()
		return nil
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	formWidth := msg.Width - 20
	if formWidth < 20 {
		formWidth = 20
	}
	h.TodoForm.SetWidth(formWidth)

	tableHeight := msg.Height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}
	h.UserTable.SetHeight(tableHeight)
	return nil
}

// handleTodosLoaded stores a list response under its own sort key. Only a
// response for the current order settles the loading and error state.
func (h *Handler) handleTodosLoaded(msg todosLoadedMsg) {
	h.Cache.WriteTodos(msg.sort, msg.todos)

	if msg.sort == h.Sort {
		h.Loading = false
		h.QueryErr = nil
	}

	if h.Config.UI.ReconcileCompleted {
		for _, t := range msg.todos {
			if t.Completed && !h.IsCompletedLocally(t.ID) {
				h.Completed = append(h.Completed, t)
			}
		}
	}

	h.ClampCursor()
}

func (h *Handler) handleTodoUpdated(msg todoUpdatedMsg) tea.Cmd {
	if msg.kind == updateComplete {
		h.StatusMsg = "Task completed"
		return h.refreshTodos()
	}

	h.StatusMsg = "Task updated"
	if msg.gen == h.TodoForm.Generation {
		h.Editing = nil
		h.TodoForm.Reset()
		h.Focus = state.FocusList
		h.TodoForm.Blur()
	}
	return h.refreshTodos()
}

// handleTodoDeleted drops the task from every cached list and from the
// done list without waiting for a refetch.
func (h *Handler) handleTodoDeleted(id string) {
	h.Cache.RemoveTodo(id)
	h.Completed, _ = cache.RemoveByID(h.Completed, id)

	if h.Editing != nil && h.Editing.ID == id {
		h.Editing = nil
		h.TodoForm.Reset()
	}

	h.ClampCursor()
	h.StatusMsg = "Task deleted"
}
