package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

type Renderer struct {
	*state.State

	// Last data pushed into the list component
	lastDataVersion int64
	lastSort        api.SortOrder
	lastDoneCount   int
	lastHidden      bool

	list     *components.TodoListModel
	helpComp *components.HelpModel
	footer   help.Model
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{
		State:    s,
		list:     components.NewTodoList(),
		helpComp: components.NewHelp(),
		footer:   help.New(),

		lastDataVersion: -1,
	}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	switch {
	case r.Alert != "":
		return r.placeDialog(r.renderAlert())
	case r.ShowHelp:
		r.helpComp.SetSize(r.Width-6, r.Height)
		r.helpComp.SetKeymap(r.Keymap.HelpItems())
		return r.placeDialog(r.helpComp.View())
	case r.UserForm != nil:
		return r.placeDialog(r.renderUserModal())
	}

	return r.renderMainView()
}

// renderMainView renders the tab bar, the active screen and the status bar.
func (r *Renderer) renderMainView() string {
	tabBar := r.renderTabBar()
	bottomBar := r.renderStatusBar()

	contentHeight := r.Height - lipgloss.Height(tabBar) - lipgloss.Height(bottomBar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch r.CurrentTab {
	case state.TabUsers:
		content = r.renderUsers(r.Width-2, contentHeight)
	default:
		content = r.renderTodos(r.Width-2, contentHeight)
	}
	content = lipgloss.Place(r.Width, contentHeight, lipgloss.Left, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, bottomBar)
}

// renderTabBar renders the top tab bar.
func (r *Renderer) renderTabBar() string {
	useMinimalLabels := r.Width < 30

	var tabStrs []string
	for _, t := range state.GetTabDefinitions() {
		label := fmt.Sprintf("%s %s", t.Icon, t.Name)
		if useMinimalLabels {
			label = t.Icon
		}

		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	maxWidth := r.Width - 4 // TabBar padding
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(r.Width).Render(tabLine)
}

// renderStatusBar renders the last outcome on the left and key hints on the right.
func (r *Renderer) renderStatusBar() string {
	var status string
	switch {
	case strings.HasPrefix(r.StatusMsg, "Error"), strings.HasPrefix(r.StatusMsg, "Failed"):
		status = styles.StatusBarError.Render(r.StatusMsg)
	case r.StatusMsg != "":
		status = styles.StatusBarSuccess.Render(r.StatusMsg)
	}

	bindings := r.Keymap.TodoShortHelp()
	if r.CurrentTab == state.TabUsers {
		bindings = r.Keymap.UserShortHelp()
	}

	hintsWidth := r.Width - lipgloss.Width(status) - 4
	if hintsWidth < 0 {
		hintsWidth = 0
	}
	r.footer.Width = hintsWidth
	hints := r.footer.ShortHelpView(bindings)

	gap := r.Width - lipgloss.Width(status) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	line := status + styles.StatusBarText.Render(strings.Repeat(" ", gap)) + hints

	return styles.StatusBar.Width(r.Width).Render(line)
}
