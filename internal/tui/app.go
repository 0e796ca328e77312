// Package tui provides the terminal user interface for the todo client.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
// State transitions live in logic, rendering in ui.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App. ctx bounds every API request; c is the query
// cache shared with the command goroutines.
func NewApp(ctx context.Context, client state.TodoClient, c *cache.Cache, cfg *config.Config, logger *log.Logger) *App {
	s := state.New(client, c, cfg, logger)
	return &App{
		state:    s,
		handler:  logic.NewHandler(ctx, s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// State exposes the shared state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}

// SetAlerter replaces the desktop alert backend.
func (a *App) SetAlerter(alerter logic.Alerter) {
	a.handler.SetAlerter(alerter)
}

// SetClipboard replaces the clipboard writer.
func (a *App) SetClipboard(write func(string) error) {
	a.handler.SetClipboard(write)
}
