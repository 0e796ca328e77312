package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	// Navigation and General go left, screen actions go right.
	var col1Sections = map[string]bool{
		"Navigation": true,
		"General":    true,
	}

	var col1Content, col2Content strings.Builder
	currentColumn := &col1Content

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key := item[0]
		desc := item[1]

		if desc == "" && key != "" {
			if col1Sections[key] {
				currentColumn = &col1Content
			} else {
				currentColumn = &col2Content
			}
			currentColumn.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}

		if key == "" && desc == "" {
			currentColumn.WriteString("\n")
			continue
		}

		keyStyle := styles.HelpKey.Width(10).Align(lipgloss.Right).PaddingRight(2)
		keyStr := keyStyle.Render(key)
		descStr := styles.HelpDesc.Render(desc)
		currentColumn.WriteString(keyStr + descStr + "\n")
	}

	col1 := col1Content.String()
	col2 := col2Content.String()

	colWidth := h.width / 2
	if colWidth > 50 {
		colWidth = 50
	}

	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	helpView := lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1),
		columnStyle.Render(col2),
	)

	b.WriteString(helpView)
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press esc or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(2 * colWidth).Align(lipgloss.Center).Render(footer))

	return styles.Dialog.Render(b.String())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets custom help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
