package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func (r *Repository) ListNotifications(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.notifications[userID]
	list := make([]domain.Notification, 0, len(stored))
	for _, n := range stored {
		list = append(list, cloneNotification(n))
	}
	return list, nil
}

// cloneNotification copies n so callers cannot mutate the stored metadata.
func cloneNotification(n domain.Notification) domain.Notification {
	n.Metadata = maps.Clone(n.Metadata)
	return n
}

func (r *Repository) CountUnreadNotifications(_ context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, n := range r.notifications[userID] {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// CreateNotification prepends n so listings stay newest first.
func (r *Repository) CreateNotification(
	_ context.Context,
	n domain.Notification,
) (domain.Notification, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.notifications[n.UserID]
	if n.EventKey != "" {
		idx := slices.IndexFunc(existing, func(e domain.Notification) bool { return e.EventKey == n.EventKey })
		if idx >= 0 {
			return cloneNotification(existing[idx]), false, nil
		}
	}

	stored := cloneNotification(n)
	r.notifications[n.UserID] = append([]domain.Notification{stored}, existing...)
	return n, true, nil
}

func (r *Repository) MarkNotificationRead(_ context.Context, userID, notificationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.notifications[userID]
	idx := slices.IndexFunc(list, func(n domain.Notification) bool { return n.ID == notificationID })
	if idx < 0 {
		return false, nil
	}
	list[idx].IsRead = true
	return true, nil
}

func (r *Repository) MarkAllNotificationsRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	list := r.notifications[userID]
	for i := range list {
		if !list[i].IsRead {
			list[i].IsRead = true
			changed++
		}
	}
	return changed, nil
}

func (r *Repository) DeleteNotification(_ context.Context, userID, notificationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.notifications[userID]
	idx := slices.IndexFunc(list, func(n domain.Notification) bool { return n.ID == notificationID })
	if idx < 0 {
		return false, nil
	}
	r.notifications[userID] = slices.Delete(list, idx, idx+1)
	return true, nil
}

func (r *Repository) GetNotificationPreferences(
	_ context.Context,
	userID string,
) (domain.NotificationPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.preferences[userID]; ok {
		return p, nil
	}
	return domain.DefaultNotificationPreferences(), nil
}

func (r *Repository) UpdateNotificationPreferences(
	_ context.Context,
	userID string,
	update domain.NotificationPreferencesUpdate,
) (domain.NotificationPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.preferences[userID]
	if !ok {
		current = domain.DefaultNotificationPreferences()
	}
	merged := update.Apply(current)
	r.preferences[userID] = merged
	return merged, nil
}
