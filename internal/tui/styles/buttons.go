package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Button is an unfocused dialog button.
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#444444")).
		Padding(0, 2)

	// ButtonFocused is the button that enter activates.
	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight).
			Bold(true).
			Padding(0, 2)

	// SortButton labels the sort toggle above the list.
	SortButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	// SelectorOption is an unselected choice in a select field.
	SelectorOption = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// SelectorOptionSelected is the current choice in a select field.
	SelectorOptionSelected = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#444444"))
)
