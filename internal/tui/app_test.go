package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/config"
)

// todoServer is a minimal GraphQL backend keyed on operationName.
type todoServer struct {
	mu    sync.Mutex
	todos []api.Todo
	ops   []string
}

func (s *todoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OperationName string                     `json:"operationName"`
		Variables     map[string]json.RawMessage `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, req.OperationName)

	var data interface{}
	switch req.OperationName {
	case "Todos":
		data = map[string]interface{}{"todos": s.todos}
	case "UpdateTodo":
		var in api.UpdateTodoInput
		_ = json.Unmarshal(req.Variables["input"], &in)
		for i := range s.todos {
			if s.todos[i].ID == in.ID {
				s.todos[i].Completed = in.Completed
				data = map[string]interface{}{"updateTodo": s.todos[i]}
			}
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "unsupported operation"}},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func (s *todoServer) operations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

// runCmd executes cmd once, expanding batches, and feeds each message to the app.
// Follow-up commands are returned rather than run so timers never fire.
func runCmd(app *App, cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var next []tea.Cmd
		for _, c := range batch {
			next = append(next, runCmd(app, c)...)
		}
		return next
	}
	_, next := app.Update(msg)
	if next == nil {
		return nil
	}
	return []tea.Cmd{next}
}

func TestAppLoadsAndCompletesAgainstServer(t *testing.T) {
	srv := &todoServer{todos: []api.Todo{{ID: "1", Title: "Alpha"}, {ID: "2", Title: "Beta"}}}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	cfg := config.DefaultConfig()
	cfg.API.Endpoint = ts.URL
	app := NewApp(context.Background(), api.NewClient(ts.URL), cache.New(), cfg, nil)
	app.SetAlerter(nil)

	runCmd(app, app.Init())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := app.View()
	if !strings.Contains(view, "Tasks to do - 2") || !strings.Contains(view, "Alpha") {
		t.Fatalf("expected loaded list, got:\n%s", view)
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	view = app.View()
	if !strings.Contains(view, "Tasks to do - 1") || !strings.Contains(view, "Done - 1") {
		t.Errorf("expected optimistic move, got:\n%s", view)
	}

	for _, next := range runCmd(app, cmd) {
		runCmd(app, next)
	}

	ops := srv.operations()
	want := []string{"Todos", "UpdateTodo", "Todos"}
	if strings.Join(ops, ",") != strings.Join(want, ",") {
		t.Errorf("operations = %v, want %v", ops, want)
	}
	if app.State().StatusMsg != "Task completed" {
		t.Errorf("unexpected status %q", app.State().StatusMsg)
	}
}

func TestAppShowsQueryError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer ts.Close()

	app := NewApp(context.Background(), api.NewClient(ts.URL), cache.New(), config.DefaultConfig(), nil)
	runCmd(app, app.Init())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if !strings.Contains(app.View(), "Error:") {
		t.Errorf("expected inline error, got:\n%s", app.View())
	}
	if app.State().Loading {
		t.Error("loading should be cleared")
	}
}
