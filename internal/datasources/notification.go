package datasources

import (
	"context"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// NotificationRepository combines all notification record operations.
type NotificationRepository interface {
	NotificationLister
	UnreadNotificationCounter
	NotificationCreator
	NotificationReadMarker
	AllNotificationsReadMarker
	NotificationDeleter
}

// NotificationLister lists a user's notifications, newest first.
type NotificationLister interface {
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
}

type UnreadNotificationCounter interface {
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
}

// NotificationCreator stores a notification. If n.EventKey is set and the user already has a
// notification with that key, nothing is stored and the existing record is returned with
// created=false.
type NotificationCreator interface {
	CreateNotification(ctx context.Context, n domain.Notification) (stored domain.Notification, created bool, err error)
}

// NotificationReadMarker returns false if the user has no notification with that ID.
type NotificationReadMarker interface {
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error)
}

// AllNotificationsReadMarker returns the number of notifications that changed state.
type AllNotificationsReadMarker interface {
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

// NotificationDeleter returns false if the user has no notification with that ID.
type NotificationDeleter interface {
	DeleteNotification(ctx context.Context, userID, notificationID string) (bool, error)
}

type NotificationPreferencesRepository interface {
	NotificationPreferencesGetter
	NotificationPreferencesUpdater
}

// NotificationPreferencesGetter returns the defaults for users without stored preferences.
type NotificationPreferencesGetter interface {
	GetNotificationPreferences(ctx context.Context, userID string) (domain.NotificationPreferences, error)
}

// NotificationPreferencesUpdater merges update over the stored (or default) preferences
// and returns the result.
type NotificationPreferencesUpdater interface {
	UpdateNotificationPreferences(
		ctx context.Context,
		userID string,
		update domain.NotificationPreferencesUpdate,
	) (domain.NotificationPreferences, error)
}
