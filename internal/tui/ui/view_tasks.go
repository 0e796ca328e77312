package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderTodos renders the todo screen: the draft form, the sort toggle and
// the two-section list.
func (r *Renderer) renderTodos(width, height int) string {
	form := r.renderTodoForm(width)
	sortLine := r.renderSortLine()

	listHeight := height - lipgloss.Height(form) - lipgloss.Height(sortLine) - 2 // border
	if listHeight < 3 {
		listHeight = 3
	}

	r.list.SetSize(width-4, listHeight)
	r.syncListData()
	r.list.SetLoading(r.Loading && !r.HasData())
	r.list.SetError(r.QueryErr)
	r.list.SetCursor(r.TaskCursor)

	boxStyle := styles.MainContent
	if r.Focus == state.FocusList {
		r.list.Focus()
		boxStyle = styles.MainContentFocused
	} else {
		r.list.Blur()
	}
	list := boxStyle.Width(width - 2).Render(r.list.View())

	return lipgloss.JoinVertical(lipgloss.Left, form, sortLine, list)
}

// renderTodoForm renders the create/edit form.
func (r *Renderer) renderTodoForm(width int) string {
	f := r.TodoForm
	focused := r.Focus == state.FocusForm

	label := func(name string, field int) string {
		if focused && f.FocusIndex == field {
			return styles.InputLabelFocused.Render(name)
		}
		return styles.InputLabel.Render(name)
	}

	title := "New Task"
	action := "Add Task"
	if r.Editing != nil {
		title = "Edit Task: " + truncateString(r.Editing.Title, width/2)
		action = "Save Changes"
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(title) + "\n")
	b.WriteString(label("Title", state.TodoFieldTitle) + " " + f.Title.View() + "\n")
	b.WriteString(label("Description", state.TodoFieldDescription) + " " + f.Description.View() + "\n")

	checkbox := styles.CheckboxUnchecked
	if f.Completed {
		checkbox = styles.CheckboxChecked
	}
	b.WriteString(label(checkbox+" Completed", state.TodoFieldCompleted) + "\n")

	if focused {
		b.WriteString(styles.ButtonFocused.Render(action) + "  " + styles.HelpDesc.Render("enter: "+strings.ToLower(action)+" • esc: back • tab: next field"))
	} else {
		b.WriteString(styles.HelpDesc.Render("a: new task • e: edit selected"))
	}

	boxStyle := styles.MainContent
	if focused {
		boxStyle = styles.MainContentFocused
	}
	return boxStyle.Width(width - 2).Render(b.String())
}

// renderSortLine renders the sort toggle and a spinner while a query is in flight.
func (r *Renderer) renderSortLine() string {
	arrow := "↑"
	if r.Sort == api.SortDesc {
		arrow = "↓"
	}
	line := " " + styles.SortButton.Render("Sort: "+string(r.Sort)+" "+arrow) + styles.HelpDesc.Render("  (s to toggle)")
	if r.Loading && r.HasData() {
		line += " " + styles.Spinner.Render(r.Spinner.View())
	}
	return line
}

// syncListData pushes the partition into the list component when the cache,
// the sort order, the done list or the to-do visibility changed since the
// last frame.
// Completed only ever grows by append or shrinks by delete, so its length
// is enough to detect a change.
func (r *Renderer) syncListData() {
	version := r.Cache.Version()
	hidden := r.ToDoHidden()
	if version == r.lastDataVersion && r.Sort == r.lastSort &&
		len(r.Completed) == r.lastDoneCount && hidden == r.lastHidden {
		return
	}
	r.list.SetData(r.VisibleToDo(), r.Done())
	r.lastDataVersion = version
	r.lastSort = r.Sort
	r.lastDoneCount = len(r.Completed)
	r.lastHidden = hidden
}
