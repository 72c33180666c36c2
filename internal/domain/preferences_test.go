package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestNotificationPreferencesUpdate_Apply(t *testing.T) {
	cases := []struct {
		name   string
		base   NotificationPreferences
		update NotificationPreferencesUpdate
		want   NotificationPreferences
	}{
		{
			name:   "empty_update_keeps_everything",
			base:   DefaultNotificationPreferences(),
			update: NotificationPreferencesUpdate{},
			want:   DefaultNotificationPreferences(),
		},
		{
			name:   "single_field",
			base:   DefaultNotificationPreferences(),
			update: NotificationPreferencesUpdate{EpisodeUpdates: boolPtr(false)},
			want: func() NotificationPreferences {
				p := DefaultNotificationPreferences()
				p.EpisodeUpdates = false
				return p
			}(),
		},
		{
			name: "re_enable_and_disable",
			base: NotificationPreferences{CommentLikes: false, PushNotifications: true},
			update: NotificationPreferencesUpdate{
				CommentLikes:      boolPtr(true),
				PushNotifications: boolPtr(false),
			},
			want: NotificationPreferences{CommentLikes: true, PushNotifications: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.update.Apply(tc.base))
		})
	}
}

func TestNotificationPreferences_Allows(t *testing.T) {
	prefs := DefaultNotificationPreferences()
	for _, typ := range NotificationTypes {
		assert.True(t, prefs.Allows(typ), typ)
	}

	prefs.EpisodeUpdates = false
	prefs.Subscriptions = false
	assert.False(t, prefs.Allows(NotificationTypeEpisodeUpdate))
	assert.False(t, prefs.Allows(NotificationTypeSubscription))
	assert.True(t, prefs.Allows(NotificationTypeCommentReply))
	assert.False(t, prefs.Allows(NotificationType("unknown")))
}

func TestNotificationType_IsValid(t *testing.T) {
	assert.True(t, NotificationTypeAnnouncement.IsValid())
	assert.False(t, NotificationType("newsletter").IsValid())
}
