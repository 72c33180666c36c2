package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// NotificationSend accepts system events for delivery. It answers 201 with the new
// notification, 200 with the earlier one for a repeated event key, and 204 when the
// recipient's preferences suppressed it.
type NotificationSend struct {
	Sender command.Command[command.SendNotificationRequest, command.SendNotificationResult]
}

func (c NotificationSend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req command.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode notification", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := c.Sender.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to send notification", "error", err)
		writeError(ctx, w, statusForCommandError(err), err.Error())
		return
	}

	switch {
	case result.Notification == nil:
		w.WriteHeader(http.StatusNoContent)
	case result.Duplicate:
		writeJSON(ctx, w, http.StatusOK, result.Notification)
	default:
		writeJSON(ctx, w, http.StatusCreated, result.Notification)
	}
}
