package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

const (
	appTitle        = "todo-tui"
	emptyTitleAlert = "Title cannot be empty."
)

// Alerter raises a desktop notification.
type Alerter interface {
	Alert(title, message string) error
}

type desktopAlerter struct{}

func (desktopAlerter) Alert(title, message string) error {
	return beeep.Alert(title, message, "")
}

// raiseAlert shows a blocking in-app dialog and, when enabled, a desktop alert.
func (h *Handler) raiseAlert(message string) tea.Cmd {
	h.Alert = message
	h.Logger.Warn("Rejected input", "reason", message)

	if !h.Config.UI.DesktopAlerts || h.alerter == nil {
		return nil
	}

	alerter, logger := h.alerter, h.Logger
	return func() tea.Msg {
		if err := alerter.Alert(appTitle, message); err != nil {
			logger.Debug("Failed to send desktop alert", "err", err)
		}
		return nil
	}
}
