package logic

import "github.com/hy4ri/todo-tui/internal/api"

// logError writes err with its request id, when it has one.
func (h *Handler) logError(msg string, err error, keyvals ...interface{}) {
	if id := api.RequestID(err); id != "" {
		keyvals = append(keyvals, "request_id", id)
	}
	keyvals = append(keyvals, "err", err)
	h.Logger.Error(msg, keyvals...)
}
