package state

import "github.com/charmbracelet/bubbles/key"

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding

	// General
	Help    key.Binding
	Quit    key.Binding
	Back    key.Binding
	Refresh key.Binding

	// Todo actions
	AddTodo      key.Binding
	EditTodo     key.Binding
	CompleteTodo key.Binding
	DeleteTodo   key.Binding
	ToggleSort   key.Binding
	CopyTodo     key.Binding
	Submit       key.Binding

	// User list actions
	EditUser   key.Binding
	DeleteUser key.Binding
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch screen")),

		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		AddTodo:      key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new task")),
		EditTodo:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		CompleteTodo: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "mark done")),
		DeleteTodo:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		ToggleSort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sort")),
		CopyTodo:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),

		EditUser:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit user")),
		DeleteUser: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete user")),
	}
}

// TodoShortHelp lists the bindings shown in the footer of the todo screen.
func (k KeymapData) TodoShortHelp() []key.Binding {
	return []key.Binding{k.AddTodo, k.CompleteTodo, k.EditTodo, k.DeleteTodo, k.ToggleSort, k.NextTab, k.Help}
}

// UserShortHelp lists the bindings shown in the footer of the user screen.
func (k KeymapData) UserShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.EditUser, k.DeleteUser, k.NextTab, k.Help}
}

// HelpItems returns section headers and key/description pairs for the help overlay.
// A pair with an empty description is a section header.
func (k KeymapData) HelpItems() [][]string {
	section := func(name string, bindings ...key.Binding) [][]string {
		items := [][]string{{name, ""}}
		for _, b := range bindings {
			h := b.Help()
			items = append(items, []string{h.Key, h.Desc})
		}
		return items
	}

	var items [][]string
	items = append(items, section("Navigation", k.Up, k.Down, k.NextTab)...)
	items = append(items, section("General", k.Refresh, k.Help, k.Back, k.Quit)...)
	items = append(items, section("Todo Actions", k.AddTodo, k.Submit, k.EditTodo, k.CompleteTodo, k.DeleteTodo, k.ToggleSort, k.CopyTodo)...)
	items = append(items, section("User List", k.EditUser, k.DeleteUser)...)
	return items
}
