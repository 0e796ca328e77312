// Package components provides reusable UI components for the todo TUI.
package components

// Component renders one part of the screen. Input is handled by the
// logic package; components only draw.
type Component interface {
	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

// Focusable is an optional interface for components that can receive focus.
type Focusable interface {
	Component
	Focus()
	Blur()
	Focused() bool
}

var (
	_ Focusable = (*TodoListModel)(nil)
	_ Component = (*HelpModel)(nil)
)
