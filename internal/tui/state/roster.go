package state

import "github.com/charmbracelet/bubbles/table"

// DefaultRoster is the fixed user list shown on the users screen.
var DefaultRoster = []string{"Divyareddychilla", "Sowmya", "Meghana", "Prashanthi", "Rupavathi"}

// NewRosterTable builds the user table with edit and delete columns.
func NewRosterTable(roster []string) table.Model {
	columns := []table.Column{
		{Title: "User Name", Width: 24},
		{Title: "Edit", Width: 6},
		{Title: "Delete", Width: 8},
	}

	rows := make([]table.Row, 0, len(roster))
	for _, name := range roster {
		rows = append(rows, table.Row{name, "✏️", "🗑️"})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	return t
}
