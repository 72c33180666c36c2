package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type NotificationPreferencesGet struct {
	Getter datasources.NotificationPreferencesGetter
}

func (c NotificationPreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prefs, err := c.Getter.GetNotificationPreferences(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to get notification preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, prefs)
}

// NotificationPreferencesUpdate applies a partial update; omitted fields keep their value.
type NotificationPreferencesUpdate struct {
	Updater datasources.NotificationPreferencesUpdater
}

func (c NotificationPreferencesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var update domain.NotificationPreferencesUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		logger.ErrorContext(ctx, "unable to decode notification preferences", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs, err := c.Updater.UpdateNotificationPreferences(ctx, domain.UserIDFromContext(ctx), update)
	if err != nil {
		logger.ErrorContext(ctx, "unable to update notification preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, prefs)
}
