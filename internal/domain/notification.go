package domain

import "time"

// NotificationType is the category a notification belongs to.
type NotificationType string

const (
	NotificationTypeEpisodeUpdate  NotificationType = "episode_update"
	NotificationTypeCommentReply   NotificationType = "comment_reply"
	NotificationTypeCommentLike    NotificationType = "comment_like"
	NotificationTypeAnnouncement   NotificationType = "announcement"
	NotificationTypeRecommendation NotificationType = "recommendation"
	NotificationTypeSubscription   NotificationType = "subscription"
)

// NotificationTypes lists every notification category.
var NotificationTypes = []NotificationType{
	NotificationTypeEpisodeUpdate,
	NotificationTypeCommentReply,
	NotificationTypeCommentLike,
	NotificationTypeAnnouncement,
	NotificationTypeRecommendation,
	NotificationTypeSubscription,
}

// IsValid reports whether t is one of NotificationTypes.
func (t NotificationType) IsValid() bool {
	for _, v := range NotificationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Notification is a single event shown to a user. IsRead only ever moves from false to true.
type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"-"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Link      string            `json:"link,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`

	// EventKey, when set, identifies the source event. A second notification with the same
	// key for the same user is suppressed.
	EventKey string `json:"-"`
}

// NotificationListMetadata accompanies a notification listing.
type NotificationListMetadata struct {
	UnreadCount int64 `json:"unread_count"`
}
