package logic

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// handleTodoFormKey handles keys while the todo form has focus.
// esc leaves the form; when editing it also abandons the edit.
func (h *Handler) handleTodoFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.Keymap.Back):
		h.Focus = state.FocusList
		h.TodoForm.Blur()
		if h.Editing != nil {
			h.Editing = nil
			h.TodoForm.Reset()
			h.TodoForm.Blur()
			h.StatusMsg = "Edit cancelled"
		}
		return nil

	case key.Matches(msg, h.Keymap.Submit):
		return h.submitTodo()
	}

	return h.TodoForm.Update(msg)
}

func (h *Handler) handleUserListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.Keymap.EditUser):
		h.openUserEditor(h.UserTable.Cursor())
		return nil

	case key.Matches(msg, h.Keymap.DeleteUser):
		// Bound for parity with the edit action; deleting users is not supported.
		h.Logger.Debug("User delete ignored", "index", h.UserTable.Cursor())
		return nil
	}

	var cmd tea.Cmd
	h.UserTable, cmd = h.UserTable.Update(msg)
	return cmd
}

// openUserEditor opens the modal for the roster entry at index.
func (h *Handler) openUserEditor(index int) {
	if index < 0 || index >= len(h.Roster) {
		return
	}
	h.UserForm = state.NewUserForm(index, h.Roster[index])
}

func (h *Handler) handleUserFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.Keymap.Back):
		h.closeUserEditor()
		return nil

	case key.Matches(msg, h.Keymap.Submit):
		if h.UserForm.FocusIndex == state.UserFieldCancel {
			h.closeUserEditor()
			return nil
		}
		h.saveUser()
		return nil
	}

	return h.UserForm.Update(msg)
}

// saveUser closes the modal. The roster is never modified.
func (h *Handler) saveUser() {
	d := h.UserForm.Draft()
	h.Logger.Debug("User form submitted", "index", h.UserForm.Index, "username", d.Username)
	h.UserForm = nil
}

func (h *Handler) closeUserEditor() {
	h.UserForm = nil
}
