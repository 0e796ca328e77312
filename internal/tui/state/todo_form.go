package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
)

// FormField constants for focus management
const (
	TodoFieldTitle = iota
	TodoFieldDescription
	TodoFieldCompleted
)

const todoFieldCount = 3

// TodoDraft is the unsaved title/description/completion triple.
type TodoDraft struct {
	Title       string
	Description string
	Completed   bool
}

// TodoForm holds the draft input shared by the create and edit actions.
type TodoForm struct {
	Title       textinput.Model
	Description textinput.Model
	Completed   bool
	FocusIndex  int

	// Generation changes whenever the draft is replaced wholesale.
	Generation int
}

// NewTodoForm creates an empty form with the title field focused.
func NewTodoForm() *TodoForm {
	title := textinput.New()
	title.Placeholder = "Add a new task"
	title.CharLimit = 500
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000
	desc.Width = 50

	f := &TodoForm{
		Title:       title,
		Description: desc,
	}
	f.Focus(TodoFieldTitle)
	return f
}

// Draft returns the current field values.
func (f *TodoForm) Draft() TodoDraft {
	return TodoDraft{
		Title:       f.Title.Value(),
		Description: f.Description.Value(),
		Completed:   f.Completed,
	}
}

// IsValid reports whether the title has non-whitespace content.
func (f *TodoForm) IsValid() bool {
	return strings.TrimSpace(f.Title.Value()) != ""
}

// Load seeds the draft from an existing task for editing.
func (f *TodoForm) Load(t api.Todo) {
	f.Title.SetValue(t.Title)
	f.Description.SetValue(t.Description)
	f.Completed = t.Completed
	f.Generation++
	f.Focus(TodoFieldTitle)
}

// Reset clears the draft.
func (f *TodoForm) Reset() {
	f.Title.Reset()
	f.Description.Reset()
	f.Completed = false
	f.Generation++
	f.Focus(TodoFieldTitle)
}

// Update routes key input to the focused field.
func (f *TodoForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		if f.FocusIndex == TodoFieldCompleted {
			if key.String() == " " || key.String() == "x" {
				f.Completed = !f.Completed
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case TodoFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case TodoFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TodoForm) NextField() {
	f.Focus((f.FocusIndex + 1) % todoFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TodoForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + todoFieldCount) % todoFieldCount)
}

// Focus focuses the field at index and blurs the others.
func (f *TodoForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Description.Blur()

	switch index {
	case TodoFieldTitle:
		f.Title.Focus()
	case TodoFieldDescription:
		f.Description.Focus()
	}
}

// Blur removes focus from every field.
func (f *TodoForm) Blur() {
	f.Title.Blur()
	f.Description.Blur()
}

// SetWidth sets width of inputs
func (f *TodoForm) SetWidth(width int) {
	f.Title.Width = width
	f.Description.Width = width
}
