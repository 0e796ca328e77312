package components

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hy4ri/todo-tui/internal/api"
)

func TestTodoListSections(t *testing.T) {
	l := NewTodoList()
	l.SetSize(60, 20)
	l.SetData(
		[]api.Todo{{ID: "2", Title: "B"}},
		[]api.Todo{{ID: "1", Title: "A"}},
	)

	out := l.View()
	for _, want := range []string{"Tasks to do - 1", "Done - 1", "B", "A", "[x]"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestTodoListLoadingAndError(t *testing.T) {
	l := NewTodoList()
	l.SetData(nil, []api.Todo{{ID: "1", Title: "A"}})
	l.SetLoading(true)
	out := l.View()
	if !strings.Contains(out, "Loading...") || strings.Contains(out, "Tasks to do") {
		t.Errorf("expected Loading... in place of the to-do section, got %q", out)
	}
	if !strings.Contains(out, "Done - 1") || !strings.Contains(out, "A") {
		t.Errorf("done section should stay visible while loading, got %q", out)
	}

	l.SetError(errors.New("network down"))
	out = l.View()
	if !strings.Contains(out, "Error: network down") {
		t.Errorf("expected inline error, got %q", out)
	}
	if !strings.Contains(out, "Done - 1") {
		t.Errorf("done section should stay visible under an error, got %q", out)
	}
}

func TestTodoListDoneRowsSelectableWhileHidden(t *testing.T) {
	l := NewTodoList()
	l.SetData(nil, []api.Todo{{ID: "1", Title: "A"}})
	l.SetError(errors.New("network down"))
	l.SetCursor(0)
	l.Focus()

	var marked string
	for _, line := range strings.Split(l.View(), "\n") {
		if strings.Contains(line, "> ") {
			marked = line
		}
	}
	if !strings.Contains(marked, "A") {
		t.Errorf("cursor 0 should mark the first done row, got %q", marked)
	}
}

func TestTodoListScrollIndicators(t *testing.T) {
	var todos []api.Todo
	for i := 0; i < 20; i++ {
		todos = append(todos, api.Todo{ID: fmt.Sprint(i), Title: fmt.Sprintf("task %d", i)})
	}
	l := NewTodoList()
	l.SetSize(40, 8)
	l.SetData(todos, nil)

	out := l.View()
	if strings.Contains(out, "↑ more") || !strings.Contains(out, "↓ more") {
		t.Errorf("expected only the down indicator at the top, got:\n%s", out)
	}
	if h := len(strings.Split(out, "\n")); h != 8 {
		t.Errorf("expected 8 lines, got %d", h)
	}

	l.SetCursor(19)
	out = l.View()
	if !strings.Contains(out, "↑ more") || !strings.Contains(out, "task 19") {
		t.Errorf("expected the up indicator with the cursor row in view, got:\n%s", out)
	}
}

func TestTodoListShowsCreatedAt(t *testing.T) {
	l := NewTodoList()
	l.SetSize(80, 10)
	l.SetData([]api.Todo{{ID: "1", Title: "A", CreatedAt: "2024-01-01"}}, nil)
	if !strings.Contains(l.View(), "2024-01-01") {
		t.Error("expected the created timestamp on a wide row")
	}

	l.SetSize(14, 10)
	if strings.Contains(l.View(), "2024-01-01") {
		t.Error("timestamp should be dropped when the row has no room")
	}
}

func TestTodoListCursorMarker(t *testing.T) {
	l := NewTodoList()
	l.SetData([]api.Todo{{ID: "1", Title: "first"}, {ID: "2", Title: "second"}}, nil)
	l.SetCursor(1)

	if strings.Contains(l.View(), "> ") {
		t.Error("unfocused list should not draw a cursor")
	}

	l.Focus()
	var marked string
	for _, line := range strings.Split(l.View(), "\n") {
		if strings.Contains(line, "> ") {
			marked = line
		}
	}
	if !strings.Contains(marked, "second") {
		t.Errorf("cursor should mark the second row, got %q", marked)
	}
}

func TestTodoListTruncatesLongTitles(t *testing.T) {
	l := NewTodoList()
	l.SetSize(20, 10)
	l.SetData([]api.Todo{{ID: "1", Title: strings.Repeat("x", 50)}}, nil)

	if !strings.Contains(l.View(), "…") {
		t.Error("expected long title to be truncated")
	}
}

func TestHelpRendersSections(t *testing.T) {
	h := NewHelp()
	if !strings.Contains(h.View(), "No keybindings registered") {
		t.Error("expected placeholder without keymap")
	}

	h.SetSize(100, 40)
	h.SetKeymap([][]string{{"Navigation", ""}, {"j", "down"}, {"Todo Actions", ""}, {"a", "new task"}})
	out := h.View()
	for _, want := range []string{"Navigation", "down", "Todo Actions", "new task"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
