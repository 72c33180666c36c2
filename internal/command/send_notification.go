package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/metrics"
	"github.com/jbeshir/webtoon-feed/internal/validation"
)

// SendNotificationRequest describes a system event to deliver to one user.
type SendNotificationRequest struct {
	UserID   string                  `json:"user_id" validate:"required,max=255"`
	Type     domain.NotificationType `json:"type" validate:"required,oneof=episode_update comment_reply comment_like announcement recommendation subscription"`
	Title    string                  `json:"title" validate:"required,max=255"`
	Message  string                  `json:"message" validate:"required"`
	Link     string                  `json:"link,omitempty" validate:"max=1024"`
	Metadata map[string]string       `json:"metadata,omitempty"`
	EventKey string                  `json:"event_key,omitempty" validate:"max=255"`
}

type SendNotificationResult struct {
	// Notification is nil when the user's preferences suppressed the event.
	Notification *domain.Notification
	// Duplicate is set when an earlier notification for the same event key was returned instead.
	Duplicate bool
}

// SendNotification creates a notification unless the recipient has switched off its category.
type SendNotification struct {
	PreferencesGetter datasources.NotificationPreferencesGetter
	Creator           datasources.NotificationCreator
	NewID             func() string
	Now               func() time.Time
}

func NewSendNotification(
	preferencesGetter datasources.NotificationPreferencesGetter,
	creator datasources.NotificationCreator,
) *SendNotification {
	return &SendNotification{
		PreferencesGetter: preferencesGetter,
		Creator:           creator,
		NewID:             uuid.NewString,
		Now:               time.Now,
	}
}

func (c *SendNotification) Execute(ctx context.Context, req SendNotificationRequest) (SendNotificationResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := validation.ValidateStruct(req); err != nil {
		return SendNotificationResult{}, fmt.Errorf("invalid notification: %w", err)
	}

	prefs, err := c.PreferencesGetter.GetNotificationPreferences(ctx, req.UserID)
	if err != nil {
		return SendNotificationResult{}, fmt.Errorf("getting notification preferences: %w", err)
	}
	if !prefs.Allows(req.Type) {
		metrics.RecordNotification(string(req.Type), metrics.NotificationSuppressed)
		logger.DebugContext(ctx, "notification suppressed by preferences",
			"user_id", req.UserID, "type", req.Type)
		return SendNotificationResult{}, nil
	}

	stored, created, err := c.Creator.CreateNotification(ctx, domain.Notification{
		ID:        c.NewID(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Link:      req.Link,
		CreatedAt: c.Now().UTC(),
		Metadata:  req.Metadata,
		EventKey:  req.EventKey,
	})
	if err != nil {
		return SendNotificationResult{}, fmt.Errorf("creating notification: %w", err)
	}

	if !created {
		metrics.RecordNotification(string(req.Type), metrics.NotificationDuplicate)
		logger.DebugContext(ctx, "duplicate notification event", "event_key", req.EventKey)
		return SendNotificationResult{Notification: &stored, Duplicate: true}, nil
	}

	metrics.RecordNotification(string(req.Type), metrics.NotificationCreated)
	return SendNotificationResult{Notification: &stored}, nil
}
