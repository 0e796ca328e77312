package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderUsers renders the roster table.
func (r *Renderer) renderUsers(width, height int) string {
	title := styles.Title.Render("Users")
	hint := styles.HelpDesc.Render("e/enter: edit • d: delete")

	r.UserTable.SetWidth(width - 4)
	tableHeight := height - 4
	if tableHeight < 3 {
		tableHeight = 3
	}
	r.UserTable.SetHeight(tableHeight)

	body := lipgloss.JoinVertical(lipgloss.Left, title, r.UserTable.View(), hint)
	return styles.MainContentFocused.Width(width - 2).Render(body)
}

// renderUserModal renders the user edit form.
func (r *Renderer) renderUserModal() string {
	f := r.UserForm

	label := func(name string, field int) string {
		text := lipgloss.NewStyle().Width(14).Render(name)
		if f.FocusIndex == field {
			return styles.InputLabelFocused.Render(text)
		}
		return styles.InputLabel.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Edit User") + "\n\n")
	b.WriteString(label("Username", state.UserFieldUsername) + f.Username.View() + "\n")
	b.WriteString(label("Email", state.UserFieldEmail) + f.Email.View() + "\n")
	b.WriteString(label("Password", state.UserFieldPassword) + f.Password.View() + "\n")
	b.WriteString(label("Phone Number", state.UserFieldPhone) + f.Phone.View() + "\n")
	b.WriteString(label("Shift", state.UserFieldShift) + renderSelector(state.ShiftOptions, f.ShiftIdx) + "\n")
	b.WriteString(label("User Type", state.UserFieldUserType) + renderSelector(state.UserTypeOptions, f.TypeIdx) + "\n")
	b.WriteString(label("Employee ID", state.UserFieldEmployeeID) + f.EmployeeID.View() + "\n\n")

	save, cancel := styles.Button, styles.Button
	switch f.FocusIndex {
	case state.UserFieldSave:
		save = styles.ButtonFocused
	case state.UserFieldCancel:
		cancel = styles.ButtonFocused
	}
	b.WriteString(save.Render("Save") + "  " + cancel.Render("Cancel") + "\n\n")
	b.WriteString(styles.HelpDesc.Render("tab: next • ←/→: choose • enter: save • esc: close"))

	return styles.Dialog.Render(b.String())
}

// renderSelector renders a choice list with the current pick highlighted.
func renderSelector(options []string, selected int) string {
	parts := make([]string, 0, len(options)+1)
	if selected < 0 {
		parts = append(parts, styles.SelectorOptionSelected.Render("-"))
	} else {
		parts = append(parts, styles.SelectorOption.Render("-"))
	}
	for i, opt := range options {
		if i == selected {
			parts = append(parts, styles.SelectorOptionSelected.Render(opt))
		} else {
			parts = append(parts, styles.SelectorOption.Render(opt))
		}
	}
	return strings.Join(parts, " ")
}
