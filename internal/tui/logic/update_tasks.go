package logic

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// handleKeyMsg routes a key press to whatever currently owns the keyboard.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Alerts block until dismissed.
	if h.Alert != "" {
		h.Alert = ""
		return nil
	}

	if h.ShowHelp {
		if key.Matches(msg, h.Keymap.Help, h.Keymap.Back, h.Keymap.Quit) {
			h.ShowHelp = false
		}
		return nil
	}

	if h.UserForm != nil {
		return h.handleUserFormKey(msg)
	}

	if h.CurrentTab == state.TabTodos && h.Focus == state.FocusForm {
		return h.handleTodoFormKey(msg)
	}

	switch {
	case key.Matches(msg, h.Keymap.Quit):
		return tea.Quit
	case key.Matches(msg, h.Keymap.Help):
		h.ShowHelp = true
		return nil
	case key.Matches(msg, h.Keymap.NextTab):
		h.switchTab()
		return nil
	}

	if h.CurrentTab == state.TabUsers {
		return h.handleUserListKey(msg)
	}
	return h.handleTodoListKey(msg)
}

func (h *Handler) switchTab() {
	if h.CurrentTab == state.TabTodos {
		h.CurrentTab = state.TabUsers
		h.UserTable.Focus()
		return
	}
	h.CurrentTab = state.TabTodos
	h.UserTable.Blur()
}

func (h *Handler) handleTodoListKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	switch {
	case key.Matches(msg, km.Up):
		if h.TaskCursor > 0 {
			h.TaskCursor--
		}
	case key.Matches(msg, km.Down):
		h.TaskCursor++
		h.ClampCursor()

	case key.Matches(msg, km.AddTodo):
		h.Focus = state.FocusForm
		h.TodoForm.Focus(state.TodoFieldTitle)

	case key.Matches(msg, km.EditTodo):
		return h.startEdit()

	case key.Matches(msg, km.CompleteTodo):
		t := h.SelectedTodo()
		if t == nil {
			return nil
		}
		return h.markComplete(*t)

	case key.Matches(msg, km.DeleteTodo):
		t := h.SelectedTodo()
		if t == nil {
			return nil
		}
		return h.deleteTodo(t.ID)

	case key.Matches(msg, km.ToggleSort):
		return h.toggleSort()

	case key.Matches(msg, km.Refresh):
		h.StatusMsg = "Refreshing..."
		return h.refreshTodos()

	case key.Matches(msg, km.CopyTodo):
		t := h.SelectedTodo()
		if t == nil {
			return nil
		}
		return h.copyCmd(t.Title)
	}

	return nil
}

// startEdit loads the selected task into the form and switches submit to update.
func (h *Handler) startEdit() tea.Cmd {
	t := h.SelectedTodo()
	if t == nil {
		return nil
	}
	h.Editing = t
	h.TodoForm.Load(*t)
	h.TodoForm.Focus(state.TodoFieldTitle)
	h.Focus = state.FocusForm
	return nil
}
