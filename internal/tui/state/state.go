package state

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/config"
)

// TodoClient is the subset of the API client the screens depend on.
type TodoClient interface {
	GetTodos(ctx context.Context, sort api.SortOrder) ([]api.Todo, error)
	CreateTodo(ctx context.Context, input api.CreateTodoInput) (*api.Todo, error)
	UpdateTodo(ctx context.Context, input api.UpdateTodoInput) (*api.Todo, error)
	DeleteTodo(ctx context.Context, id string) (*api.DeletedTodo, error)
}

// Tab represents a top-level screen.
type Tab int

const (
	TabTodos Tab = iota
	TabUsers
)

// Focus says which part of the todo screen receives keys.
type Focus int

const (
	FocusList Focus = iota
	FocusForm
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client TodoClient
	Cache  *cache.Cache
	Config *config.Config
	Logger *log.Logger

	// View state
	CurrentTab Tab
	ShowHelp   bool

	// Todo screen
	Sort       api.SortOrder
	TodoForm   *TodoForm
	Editing    *api.Todo  // non-nil while the form edits an existing task
	Completed  []api.Todo // tasks checked off in this session
	Focus      Focus
	TaskCursor int
	Loading    bool
	QueryErr   error
	Alert      string // blocking message, dismissed by any key

	// User list screen
	Roster    []string
	UserTable table.Model
	UserForm  *UserForm // nil while the modal is closed

	// UI state
	StatusMsg string
	Width     int
	Height    int
	Spinner   spinner.Model
	Keymap    KeymapData
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab  Tab
	Icon string
	Name string
}

// GetTabDefinitions returns the tab definitions.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabTodos, "✅", "Todos"},
		{TabUsers, "👥", "Users"},
	}
}

// New builds the initial state. The cache is owned by the caller.
func New(client TodoClient, c *cache.Cache, cfg *config.Config, logger *log.Logger) *State {
	s := spinner.New()
	s.Spinner = spinner.Dot

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	st := &State{
		Client:    client,
		Cache:     c,
		Config:    cfg,
		Logger:    logger,
		Sort:      api.SortAsc,
		TodoForm:  NewTodoForm(),
		Roster:    append([]string(nil), DefaultRoster...),
		Spinner:   s,
		Keymap:    DefaultKeymap(),
		Completed: []api.Todo{},
	}
	st.UserTable = NewRosterTable(st.Roster)

	if cfg.UI.StartView == config.ViewUsers {
		st.CurrentTab = TabUsers
	}

	return st
}
