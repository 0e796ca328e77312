package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderAlert renders the blocking alert dialog.
func (r *Renderer) renderAlert() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.ErrorText.Render(r.Alert),
		"",
		styles.HelpDesc.Render("press any key"),
	)
	return styles.AlertDialog.Render(body)
}

// placeDialog centers a dialog on an otherwise blank screen.
func (r *Renderer) placeDialog(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars(" "))
}
