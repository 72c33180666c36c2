package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

var notificationColumns = []string{
	"id", "user_id", "type", "title", "message", "link", "is_read", "created_at", "metadata", "event_key",
}

func (r *Repository) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(notificationColumns...)
	sb.From("notifications")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("seq").Desc()
	query, args := sb.Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("notifications")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("is_read", false))
	query, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// ErrNotificationConflict is returned when a notification ID is already taken by a different event.
var ErrNotificationConflict = errors.New("notification ID already exists")

// CreateNotification inserts n unless the user already has a notification with the same event
// key, in which case the stored one is returned. A conflicting insert is ignored and resolved
// by reading the row that won.
func (r *Repository) CreateNotification(
	ctx context.Context,
	n domain.Notification,
) (domain.Notification, bool, error) {
	var metadata sql.NullString
	if n.Metadata != nil {
		b, err := json.Marshal(n.Metadata)
		if err != nil {
			return domain.Notification{}, false, fmt.Errorf("encoding notification metadata: %w", err)
		}
		metadata = sql.NullString{String: string(b), Valid: true}
	}
	eventKey := sql.NullString{String: n.EventKey, Valid: n.EventKey != ""}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("notifications")
	ib.Cols(notificationColumns...)
	ib.Values(
		n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.Link, n.IsRead,
		n.CreatedAt.UnixMilli(), metadata, eventKey,
	)
	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Notification{}, false, fmt.Errorf("inserting notification: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return domain.Notification{}, false, fmt.Errorf("counting inserted notifications: %w", err)
	}
	if inserted > 0 {
		return n, true, nil
	}

	if !eventKey.Valid {
		return domain.Notification{}, false, fmt.Errorf("%w: %s", ErrNotificationConflict, n.ID)
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select(notificationColumns...)
	sb.From("notifications")
	sb.Where(sb.Equal("user_id", n.UserID), sb.Equal("event_key", n.EventKey))
	query, args = sb.Build()

	existing, err := scanNotification(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Notification{}, false, fmt.Errorf("%w: %s", ErrNotificationConflict, n.ID)
	}
	if err != nil {
		return domain.Notification{}, false, fmt.Errorf("getting existing notification: %w", err)
	}
	return existing, false, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error) {
	found := false
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		sb := r.flavor.NewSelectBuilder()
		sb.Select("COUNT(*)")
		sb.From("notifications")
		sb.Where(sb.Equal("user_id", userID), sb.Equal("id", notificationID))
		query, args := sb.Build()

		var count int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("checking notification: %w", err)
		}
		if count == 0 {
			return nil
		}
		found = true

		ub := r.flavor.NewUpdateBuilder()
		ub.Update("notifications")
		ub.Set(ub.Assign("is_read", true))
		ub.Where(ub.Equal("user_id", userID), ub.Equal("id", notificationID))
		query, args = ub.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("marking notification read: %w", err)
		}
		return nil
	})
	return found, err
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("notifications")
	ub.Set(ub.Assign("is_read", true))
	ub.Where(ub.Equal("user_id", userID), ub.Equal("is_read", false))
	query, args := ub.Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("marking all notifications read: %w", err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting notifications marked read: %w", err)
	}
	return changed, nil
}

func (r *Repository) DeleteNotification(ctx context.Context, userID, notificationID string) (bool, error) {
	db := r.flavor.NewDeleteBuilder()
	db.DeleteFrom("notifications")
	db.Where(db.Equal("user_id", userID), db.Equal("id", notificationID))
	query, args := db.Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("deleting notification: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting deleted notifications: %w", err)
	}
	return deleted > 0, nil
}

// scanNotification returns sql.ErrNoRows unwrapped so callers can check for it.
func scanNotification(s scanner) (domain.Notification, error) {
	var n domain.Notification
	var notificationType string
	var createdAt int64
	var metadata, eventKey sql.NullString
	err := s.Scan(
		&n.ID, &n.UserID, &notificationType, &n.Title, &n.Message, &n.Link, &n.IsRead,
		&createdAt, &metadata, &eventKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Notification{}, err
	}
	if err != nil {
		return domain.Notification{}, fmt.Errorf("scanning notification: %w", err)
	}

	n.Type = domain.NotificationType(notificationType)
	n.CreatedAt = time.UnixMilli(createdAt).UTC()
	n.EventKey = eventKey.String
	if metadata.Valid {
		if err := json.Unmarshal([]byte(metadata.String), &n.Metadata); err != nil {
			return domain.Notification{}, fmt.Errorf("decoding notification metadata: %w", err)
		}
	}
	return n, nil
}

var preferenceColumns = []string{
	"episode_updates", "comment_replies", "comment_likes", "announcements", "recommendations",
	"subscriptions", "email_notifications", "push_notifications",
}

func preferenceValues(p domain.NotificationPreferences) []any {
	return []any{
		p.EpisodeUpdates, p.CommentReplies, p.CommentLikes, p.Announcements, p.Recommendations,
		p.Subscriptions, p.EmailNotifications, p.PushNotifications,
	}
}

func (r *Repository) GetNotificationPreferences(
	ctx context.Context,
	userID string,
) (domain.NotificationPreferences, error) {
	return r.getNotificationPreferences(ctx, r.db, userID, false)
}

func (r *Repository) getNotificationPreferences(
	ctx context.Context,
	q querier,
	userID string,
	forUpdate bool,
) (domain.NotificationPreferences, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(preferenceColumns...)
	sb.From("notification_preferences")
	sb.Where(sb.Equal("user_id", userID))
	// SQLite has no row locks; its single connection already serialises transactions.
	if forUpdate && r.flavor == sqlbuilder.MySQL {
		sb.ForUpdate()
	}
	query, args := sb.Build()

	var p domain.NotificationPreferences
	err := q.QueryRowContext(ctx, query, args...).Scan(
		&p.EpisodeUpdates, &p.CommentReplies, &p.CommentLikes, &p.Announcements,
		&p.Recommendations, &p.Subscriptions, &p.EmailNotifications, &p.PushNotifications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultNotificationPreferences(), nil
	}
	if err != nil {
		return domain.NotificationPreferences{}, fmt.Errorf("getting notification preferences: %w", err)
	}
	return p, nil
}

func (r *Repository) UpdateNotificationPreferences(
	ctx context.Context,
	userID string,
	update domain.NotificationPreferencesUpdate,
) (domain.NotificationPreferences, error) {
	var merged domain.NotificationPreferences
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		defaults := preferenceValues(domain.DefaultNotificationPreferences())
		ib := r.flavor.NewInsertBuilder()
		ib.InsertIgnoreInto("notification_preferences")
		ib.Cols(append([]string{"user_id"}, preferenceColumns...)...)
		ib.Values(append([]any{userID}, defaults...)...)
		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("creating notification preferences: %w", err)
		}

		current, err := r.getNotificationPreferences(ctx, tx, userID, true)
		if err != nil {
			return err
		}
		merged = update.Apply(current)
		values := preferenceValues(merged)

		ub := r.flavor.NewUpdateBuilder()
		ub.Update("notification_preferences")
		assignments := make([]string, 0, len(preferenceColumns))
		for i, col := range preferenceColumns {
			assignments = append(assignments, ub.Assign(col, values[i]))
		}
		ub.Set(assignments...)
		ub.Where(ub.Equal("user_id", userID))
		query, args = ub.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("storing notification preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.NotificationPreferences{}, err
	}
	return merged, nil
}
