package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

func newTestRenderer(todos ...api.Todo) *Renderer {
	s := state.New(nil, cache.New(), config.DefaultConfig(), nil)
	if todos != nil {
		s.Cache.WriteTodos(api.SortAsc, todos)
	}
	s.Width = 100
	s.Height = 40
	return NewRenderer(s)
}

func TestViewBeforeFirstResize(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("expected Loading..., got %q", got)
	}
}

func TestTodoScreenCounts(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: "1", Title: "Alpha"}, api.Todo{ID: "2", Title: "Beta"})
	r.Completed = []api.Todo{{ID: "1", Title: "Alpha"}}

	out := r.View()
	for _, want := range []string{"Todos", "Users", "Tasks to do - 1", "Done - 1", "Alpha", "Beta", "Sort: ASC"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTodoScreenLoadingAndError(t *testing.T) {
	r := newTestRenderer()
	r.Loading = true
	if !strings.Contains(r.View(), "Loading...") {
		t.Error("expected Loading... with no cached data")
	}

	r.Loading = false
	r.QueryErr = errors.New("connection refused")
	if !strings.Contains(r.View(), "Error: connection refused") {
		t.Error("expected inline query error")
	}
}

func TestQueryErrorKeepsDoneSection(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: "1", Title: "Alpha"}, api.Todo{ID: "2", Title: "Beta"})
	r.Completed = []api.Todo{{ID: "1", Title: "Alpha"}}
	if out := r.View(); !strings.Contains(out, "Beta") {
		t.Fatal("expected Beta before the failure")
	}

	r.QueryErr = errors.New("connection refused")
	out := r.View()
	for _, want := range []string{"Error: connection refused", "Done - 1", "Alpha"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Beta") || strings.Contains(out, "Tasks to do") {
		t.Errorf("to-do section should be replaced by the error:\n%s", out)
	}
}

func TestCachedListShownWhileRefetching(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: "1", Title: "Alpha"})
	r.Loading = true

	out := r.View()
	if !strings.Contains(out, "Alpha") {
		t.Error("cached list should stay visible during a refetch")
	}
}

func TestEditFormTitle(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: "1", Title: "Alpha"})
	r.Editing = &api.Todo{ID: "1", Title: "Alpha"}
	r.Focus = state.FocusForm

	out := r.View()
	if !strings.Contains(out, "Edit Task: Alpha") || !strings.Contains(out, "Save Changes") {
		t.Error("expected edit form header and action")
	}
}

func TestAlertOverlay(t *testing.T) {
	r := newTestRenderer()
	r.Alert = "Title cannot be empty."

	out := r.View()
	if !strings.Contains(out, "Title cannot be empty.") || !strings.Contains(out, "press any key") {
		t.Errorf("expected alert dialog, got:\n%s", out)
	}
}

func TestUsersScreenAndModal(t *testing.T) {
	r := newTestRenderer()
	r.CurrentTab = state.TabUsers

	out := r.View()
	for _, name := range state.DefaultRoster {
		if !strings.Contains(out, name) {
			t.Errorf("roster missing %q", name)
		}
	}

	r.UserForm = state.NewUserForm(2, "Meghana")
	out = r.View()
	for _, want := range []string{"Edit User", "Meghana", "Shift", "morning", "Save", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	r := newTestRenderer()
	r.ShowHelp = true

	out := r.View()
	if !strings.Contains(out, "Keyboard Shortcuts") || !strings.Contains(out, "toggle sort") {
		t.Error("expected help overlay")
	}
}

func TestStatusBar(t *testing.T) {
	r := newTestRenderer()
	r.StatusMsg = "Task added"
	if !strings.Contains(r.View(), "Task added") {
		t.Error("expected status message")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
