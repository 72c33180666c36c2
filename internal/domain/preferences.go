package domain

// NotificationPreferences holds a user's per-category and per-channel notification switches.
type NotificationPreferences struct {
	EpisodeUpdates     bool `json:"episode_updates"`
	CommentReplies     bool `json:"comment_replies"`
	CommentLikes       bool `json:"comment_likes"`
	Announcements      bool `json:"announcements"`
	Recommendations    bool `json:"recommendations"`
	Subscriptions      bool `json:"subscriptions"`
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}

// DefaultNotificationPreferences is what a user without stored preferences gets.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EpisodeUpdates:     true,
		CommentReplies:     true,
		CommentLikes:       true,
		Announcements:      true,
		Recommendations:    true,
		Subscriptions:      true,
		EmailNotifications: true,
		PushNotifications:  true,
	}
}

// Allows reports whether notifications of type t should be delivered.
// Unknown types are not allowed.
func (p NotificationPreferences) Allows(t NotificationType) bool {
	switch t {
	case NotificationTypeEpisodeUpdate:
		return p.EpisodeUpdates
	case NotificationTypeCommentReply:
		return p.CommentReplies
	case NotificationTypeCommentLike:
		return p.CommentLikes
	case NotificationTypeAnnouncement:
		return p.Announcements
	case NotificationTypeRecommendation:
		return p.Recommendations
	case NotificationTypeSubscription:
		return p.Subscriptions
	default:
		return false
	}
}

// NotificationPreferencesUpdate is a partial update; nil fields are left unchanged.
type NotificationPreferencesUpdate struct {
	EpisodeUpdates     *bool `json:"episode_updates,omitempty"`
	CommentReplies     *bool `json:"comment_replies,omitempty"`
	CommentLikes       *bool `json:"comment_likes,omitempty"`
	Announcements      *bool `json:"announcements,omitempty"`
	Recommendations    *bool `json:"recommendations,omitempty"`
	Subscriptions      *bool `json:"subscriptions,omitempty"`
	EmailNotifications *bool `json:"email_notifications,omitempty"`
	PushNotifications  *bool `json:"push_notifications,omitempty"`
}

// Apply returns p with every non-nil field of u written over it.
func (u NotificationPreferencesUpdate) Apply(p NotificationPreferences) NotificationPreferences {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.EpisodeUpdates, u.EpisodeUpdates)
	set(&p.CommentReplies, u.CommentReplies)
	set(&p.CommentLikes, u.CommentLikes)
	set(&p.Announcements, u.Announcements)
	set(&p.Recommendations, u.Recommendations)
	set(&p.Subscriptions, u.Subscriptions)
	set(&p.EmailNotifications, u.EmailNotifications)
	set(&p.PushNotifications, u.PushNotifications)
	return p
}
