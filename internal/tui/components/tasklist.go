package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// LineInfo is a display line with an optional row reference.
type LineInfo struct {
	Content string
	Row     int // -1 for headers and spacing
}

// TodoListModel renders the "to do" and "done" sections as one scrollable
// list. The cursor walks the to-do rows first and then the done rows.
type TodoListModel struct {
	todo, done    []api.Todo
	cursor        int
	width, height int
	focused       bool
	viewportReady bool
	viewport      viewport.Model
	loading       bool
	err           error
}

// NewTodoList creates an empty TodoListModel.
func NewTodoList() *TodoListModel {
	return &TodoListModel{}
}

// View implements Component. Loading and errors replace only the to-do
// section; the done section is always drawn.
func (t *TodoListModel) View() string {
	var lines []LineInfo
	switch {
	case t.err != nil:
		lines = append(lines, LineInfo{Content: styles.ErrorText.Render("Error: " + t.err.Error()), Row: -1})
	case t.loading:
		lines = append(lines, LineInfo{Content: "Loading...", Row: -1})
	default:
		lines = append(lines, LineInfo{Content: styles.SectionHeader.Render(fmt.Sprintf("Tasks to do - %d", len(t.todo))), Row: -1})
		for i, todo := range t.todo {
			lines = append(lines, LineInfo{Content: t.renderRow(i, todo, false), Row: i})
		}
		if len(t.todo) == 0 {
			lines = append(lines, LineInfo{Content: styles.HelpDesc.Render("  Nothing to do"), Row: -1})
		}
	}

	lines = append(lines, LineInfo{Content: "", Row: -1})
	lines = append(lines, LineInfo{Content: styles.SectionHeader.Render(fmt.Sprintf("Done - %d", len(t.done))), Row: -1})
	for i, todo := range t.done {
		row := len(t.todo) + i
		lines = append(lines, LineInfo{Content: t.renderRow(row, todo, true), Row: row})
	}

	return t.renderScrollableLines(lines)
}

// SetSize implements Component.
func (t *TodoListModel) SetSize(width, height int) {
	t.width = width
	t.height = height

	if !t.viewportReady {
		t.viewport = viewport.New(width, height)
		t.viewport.Style = lipgloss.NewStyle()
		t.viewportReady = true
	} else {
		t.viewport.Width = width
		t.viewport.Height = height
	}
}

// Focus sets focus on the list.
func (t *TodoListModel) Focus() {
	t.focused = true
}

// Blur removes focus.
func (t *TodoListModel) Blur() {
	t.focused = false
}

// Focused returns focus state.
func (t *TodoListModel) Focused() bool {
	return t.focused
}

// SetData replaces both sections. Pass a nil todo slice while the to-do
// section is hidden so done rows keep their cursor positions.
func (t *TodoListModel) SetData(todo, done []api.Todo) {
	t.todo = todo
	t.done = done
}

// SetLoading shows "Loading..." in place of the to-do section.
func (t *TodoListModel) SetLoading(loading bool) {
	t.loading = loading
}

// SetError shows the error in place of the to-do section.
func (t *TodoListModel) SetError(err error) {
	t.err = err
}

// SetCursor sets the cursor position.
func (t *TodoListModel) SetCursor(pos int) {
	t.cursor = pos
}

// renderRow renders one task line.
func (t *TodoListModel) renderRow(row int, todo api.Todo, done bool) string {
	cursor := "  "
	if row == t.cursor && t.focused {
		cursor = "> "
	}

	checkbox := styles.CheckboxUnchecked
	if done {
		checkbox = styles.CheckboxChecked
	}

	// cursor + checkbox + padding
	avail := t.width - 8
	title := todo.Title
	if avail > 0 {
		title = runewidth.Truncate(title, avail, "…")
	}

	line := fmt.Sprintf("%s%s %s", cursor, checkbox, title)
	used := runewidth.StringWidth(title)
	if todo.Description != "" {
		rest := avail - used - 3
		if rest > 4 {
			desc := runewidth.Truncate(todo.Description, rest, "…")
			line += styles.TaskListDescription.Render("- " + desc)
			used += runewidth.StringWidth(desc) + 3
		}
	}
	if todo.CreatedAt != "" && avail-used-1 >= runewidth.StringWidth(todo.CreatedAt) {
		line += styles.TaskCreatedAt.Render(todo.CreatedAt)
	}

	switch {
	case row == t.cursor && t.focused:
		return styles.TaskSelected.Render(line)
	case done:
		return styles.TaskCompleted.Render(line)
	default:
		return styles.TaskItem.Render(line)
	}
}

// renderScrollableLines joins lines and keeps the cursor row in view. When
// the content overflows, the top and bottom lines are given to scroll
// indicators.
func (t *TodoListModel) renderScrollableLines(lines []LineInfo) string {
	var content strings.Builder
	cursorLine := 0
	for i, line := range lines {
		content.WriteString(line.Content)
		if i < len(lines)-1 {
			content.WriteString("\n")
		}
		if line.Row == t.cursor {
			cursorLine = i
		}
	}

	if !t.viewportReady || t.viewport.Height <= 0 {
		return content.String()
	}

	overflow := len(lines) > t.height && t.height > 2
	if overflow {
		t.viewport.Height = t.height - 2
	} else {
		t.viewport.Height = t.height
	}

	t.viewport.SetContent(content.String())
	t.syncViewportToCursor(cursorLine)
	if !overflow {
		return t.viewport.View()
	}

	var up, down string
	if !t.viewport.AtTop() {
		up = styles.ScrollIndicatorUp.Render("↑ more")
	}
	if !t.viewport.AtBottom() {
		down = styles.ScrollIndicatorDown.Render("↓ more")
	}
	return up + "\n" + t.viewport.View() + "\n" + down
}

// syncViewportToCursor ensures the viewport shows the cursor line.
func (t *TodoListModel) syncViewportToCursor(cursorLine int) {
	vpHeight := t.viewport.Height
	currentTop := t.viewport.YOffset
	currentBottom := currentTop + vpHeight - 1

	if cursorLine < currentTop {
		t.viewport.SetYOffset(cursorLine)
	} else if cursorLine > currentBottom {
		t.viewport.SetYOffset(cursorLine - vpHeight + 1)
	}
}
