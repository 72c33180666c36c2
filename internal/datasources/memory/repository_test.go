package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func TestRepository_ListCatalogItems(t *testing.T) {
	cases := []struct {
		name        string
		filters     domain.CatalogFilters
		expectedIDs []string
	}{
		{
			name:        "include_adult_returns_everything",
			filters:     domain.CatalogFilters{IncludeAdult: true},
			expectedIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name:        "adult_hidden_by_default",
			filters:     domain.CatalogFilters{},
			expectedIDs: []string{"1", "2", "3", "4", "5", "6", "8"},
		},
		{
			name:        "status_and_language",
			filters:     domain.CatalogFilters{Status: domain.CatalogStatusCompleted, Languages: []string{"ko"}},
			expectedIDs: []string{"8"},
		},
		{
			name:        "min_rating",
			filters:     domain.CatalogFilters{MinRating: 4.8, IncludeAdult: true},
			expectedIDs: []string{"1", "5"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewSeeded()

			items, err := r.ListCatalogItems(context.Background(), tc.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestRepository_FetchCatalogItemsByID(t *testing.T) {
	r := NewSeeded()

	items, err := r.FetchCatalogItemsByID(context.Background(), []string{"5", "missing", "2"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Dragon's Legacy", items[0].Title)
	assert.Equal(t, "Moonlight Academy", items[1].Title)
}

func TestRepository_ReadingProfile(t *testing.T) {
	ctx := context.Background()
	r := NewSeeded()

	_, found, err := r.GetReadingProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.SetItemRead(ctx, "user-1", "1", true))
	require.NoError(t, r.SetItemRead(ctx, "user-1", "1", true))
	require.NoError(t, r.SetItemRead(ctx, "user-1", "3", true))
	require.NoError(t, r.SetItemRead(ctx, "user-1", "1", false))
	require.NoError(t, r.SetItemFavorite(ctx, "user-1", "5", true))
	require.NoError(t, r.SetFavoriteGenres(ctx, "user-1", []string{"Fantasy", "Romance", "Fantasy"}))

	profile, found, err := r.GetReadingProfile(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.UserPreferenceProfile{
		UserID:          "user-1",
		FavoriteGenres:  []string{"Fantasy", "Romance"},
		FavoriteItemIDs: []string{"5"},
		ReadItemIDs:     []string{"3"},
	}, profile)

	require.NoError(t, r.SetItemFavorite(ctx, "user-2", "1", true))
	ids, err := r.ListProfiledUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, ids)
}

func newNotification(id, userID string, createdAt time.Time) domain.Notification {
	return domain.Notification{
		ID:        id,
		UserID:    userID,
		Type:      domain.NotificationTypeEpisodeUpdate,
		Title:     "New episode",
		Message:   "Episode " + id + " is out",
		CreatedAt: createdAt,
	}
}

func TestRepository_Notifications(t *testing.T) {
	ctx := context.Background()
	r := NewSeeded()
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"n1", "n2", "n3"} {
		_, created, err := r.CreateNotification(ctx, newNotification(id, "user-1", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
		require.True(t, created)
	}
	_, _, err := r.CreateNotification(ctx, newNotification("other", "user-2", base))
	require.NoError(t, err)

	list, err := r.ListNotifications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n3", list[0].ID)
	assert.Equal(t, "n2", list[1].ID)
	assert.Equal(t, "n1", list[2].ID)

	unread, err := r.CountUnreadNotifications(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	t.Run("mark_read_is_idempotent", func(t *testing.T) {
		found, err := r.MarkNotificationRead(ctx, "user-1", "n2")
		require.NoError(t, err)
		assert.True(t, found)

		found, err = r.MarkNotificationRead(ctx, "user-1", "n2")
		require.NoError(t, err)
		assert.True(t, found)

		unread, err := r.CountUnreadNotifications(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), unread)
	})

	t.Run("mark_read_other_users_notification", func(t *testing.T) {
		found, err := r.MarkNotificationRead(ctx, "user-1", "other")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete_missing_leaves_collection_unchanged", func(t *testing.T) {
		deleted, err := r.DeleteNotification(ctx, "user-1", "missing")
		require.NoError(t, err)
		assert.False(t, deleted)

		after, err := r.ListNotifications(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, after, 3)
	})

	t.Run("delete_existing", func(t *testing.T) {
		deleted, err := r.DeleteNotification(ctx, "user-1", "n3")
		require.NoError(t, err)
		assert.True(t, deleted)

		after, err := r.ListNotifications(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.Equal(t, "n2", after[0].ID)
	})

	t.Run("mark_all_read", func(t *testing.T) {
		changed, err := r.MarkAllNotificationsRead(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), changed)

		unread, err := r.CountUnreadNotifications(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, unread)

		unread, err = r.CountUnreadNotifications(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), unread)
	})
}

func TestRepository_CreateNotification_EventKey(t *testing.T) {
	ctx := context.Background()
	r := NewSeeded()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	first := newNotification("n1", "user-1", now)
	first.EventKey = "episode:1:42"
	_, created, err := r.CreateNotification(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	second := newNotification("n2", "user-1", now.Add(time.Minute))
	second.EventKey = "episode:1:42"
	stored, created, err := r.CreateNotification(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "n1", stored.ID)

	other := newNotification("n3", "user-2", now)
	other.EventKey = "episode:1:42"
	_, created, err = r.CreateNotification(ctx, other)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestRepository_NotificationPreferences(t *testing.T) {
	ctx := context.Background()
	r := NewSeeded()

	prefs, err := r.GetNotificationPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationPreferences(), prefs)

	off := false
	updated, err := r.UpdateNotificationPreferences(ctx, "user-1", domain.NotificationPreferencesUpdate{
		EpisodeUpdates: &off,
	})
	require.NoError(t, err)
	assert.False(t, updated.EpisodeUpdates)
	assert.True(t, updated.CommentReplies)

	prefs, err = r.GetNotificationPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, updated, prefs)

	prefs, err = r.GetNotificationPreferences(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, prefs.EpisodeUpdates)
}

func TestRepository_ListNotifications_MetadataIsCopied(t *testing.T) {
	ctx := context.Background()
	r := NewSeeded()

	n := newNotification("n1", "user-1", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	n.Metadata = map[string]string{"episode": "42"}
	_, _, err := r.CreateNotification(ctx, n)
	require.NoError(t, err)
	n.Metadata["episode"] = "changed-by-sender"

	list, err := r.ListNotifications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	list[0].Metadata["episode"] = "changed-by-reader"

	again, err := r.ListNotifications(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"episode": "42"}, again[0].Metadata)
}
