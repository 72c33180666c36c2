package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type NotificationsList struct {
	Lister interface {
		datasources.NotificationLister
		datasources.UnreadNotificationCounter
	}
}

type NotificationsListResponse struct {
	Data     []domain.Notification           `json:"data"`
	Metadata domain.NotificationListMetadata `json:"metadata"`
}

func (c NotificationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	userID := domain.UserIDFromContext(ctx)

	notifications, err := c.Lister.ListNotifications(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list notifications", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	unread, err := c.Lister.CountUnreadNotifications(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to count unread notifications", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(ctx, w, http.StatusOK, NotificationsListResponse{
		Data:     notifications,
		Metadata: domain.NotificationListMetadata{UnreadCount: unread},
	})
}

type NotificationMarkRead struct {
	Marker datasources.NotificationReadMarker
}

func (c NotificationMarkRead) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["notification_id"]
	logger := domain.LoggerFromContext(r.Context()).With("notification_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	found, err := c.Marker.MarkNotificationRead(ctx, domain.UserIDFromContext(ctx), id)
	if err != nil {
		logger.ErrorContext(ctx, "unable to mark notification read", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !found {
		writeError(ctx, w, http.StatusNotFound, "notification not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type NotificationsMarkAllRead struct {
	Marker datasources.AllNotificationsReadMarker
}

type NotificationsMarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (c NotificationsMarkAllRead) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updated, err := c.Marker.MarkAllNotificationsRead(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to mark all notifications read", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, NotificationsMarkAllReadResponse{Updated: updated})
}

type NotificationDelete struct {
	Deleter datasources.NotificationDeleter
}

func (c NotificationDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["notification_id"]
	logger := domain.LoggerFromContext(r.Context()).With("notification_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	deleted, err := c.Deleter.DeleteNotification(ctx, domain.UserIDFromContext(ctx), id)
	if err != nil {
		logger.ErrorContext(ctx, "unable to delete notification", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !deleted {
		writeError(ctx, w, http.StatusNotFound, "notification not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
