package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/webtoon-feed/internal/datasources/memory"
	"github.com/jbeshir/webtoon-feed/internal/datasources/mocks"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func seededNotifications(t *testing.T) *memory.Repository {
	t.Helper()

	repo := memory.NewSeeded()
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"n1", "n2", "n3"} {
		_, _, err := repo.CreateNotification(context.Background(), domain.Notification{
			ID:        id,
			UserID:    "user-1",
			Type:      domain.NotificationTypeEpisodeUpdate,
			Title:     "New episode",
			Message:   "Episode " + id,
			IsRead:    id == "n1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	return repo
}

func TestNotificationsList_ServeHTTP(t *testing.T) {
	controller := NotificationsList{Lister: seededNotifications(t)}

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp NotificationsListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "n3", resp.Data[0].ID)
	assert.Equal(t, "n1", resp.Data[2].ID)
	assert.Equal(t, int64(2), resp.Metadata.UnreadCount)
}

func TestNotificationsList_ServeHTTP_EmptyIsArray(t *testing.T) {
	controller := NotificationsList{Lister: memory.NewSeeded()}

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	req = testContextWithUserID("user-2")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"metadata":{"unread_count":0}}`, rec.Body.String())
}

func TestNotificationMarkRead_ServeHTTP(t *testing.T) {
	cases := []struct {
		name           string
		notificationID string
		wantStatus     int
		wantUnread     int64
	}{
		{
			name:           "marks_unread",
			notificationID: "n2",
			wantStatus:     http.StatusNoContent,
			wantUnread:     1,
		},
		{
			name:           "already_read",
			notificationID: "n1",
			wantStatus:     http.StatusNoContent,
			wantUnread:     2,
		},
		{
			name:           "missing",
			notificationID: "missing",
			wantStatus:     http.StatusNotFound,
			wantUnread:     2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := seededNotifications(t)
			controller := NotificationMarkRead{Marker: repo}

			req := httptest.NewRequest(http.MethodPost, "/v1/notifications/"+tc.notificationID+"/read", nil)
			req = testContextWithUserID("user-1")(req)
			req = mux.SetURLVars(req, map[string]string{"notification_id": tc.notificationID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			unread, err := repo.CountUnreadNotifications(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantUnread, unread)
		})
	}
}

func TestNotificationMarkRead_ServeHTTP_OtherUser(t *testing.T) {
	repo := seededNotifications(t)
	controller := NotificationMarkRead{Marker: repo}

	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/n2/read", nil)
	req = testContextWithUserID("user-2")(req)
	req = mux.SetURLVars(req, map[string]string{"notification_id": "n2"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationsMarkAllRead_ServeHTTP(t *testing.T) {
	repo := seededNotifications(t)
	controller := NotificationsMarkAllRead{Marker: repo}

	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/read-all", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":2}`, rec.Body.String())

	unread, err := repo.CountUnreadNotifications(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationsMarkAllRead_ServeHTTP_Error(t *testing.T) {
	marker := mocks.NewMockAllNotificationsReadMarker(t)
	marker.EXPECT().MarkAllNotificationsRead(mock.Anything, "user-1").Return(int64(0), errors.New("database error"))

	controller := NotificationsMarkAllRead{Marker: marker}

	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/read-all", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNotificationDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name           string
		notificationID string
		deleted        bool
		deleteErr      error
		wantStatus     int
	}{
		{
			name:           "deleted",
			notificationID: "n1",
			deleted:        true,
			wantStatus:     http.StatusNoContent,
		},
		{
			name:           "missing",
			notificationID: "missing",
			wantStatus:     http.StatusNotFound,
		},
		{
			name:           "store_error",
			notificationID: "n1",
			deleteErr:      errors.New("database error"),
			wantStatus:     http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleter := mocks.NewMockNotificationDeleter(t)
			deleter.EXPECT().
				DeleteNotification(mock.Anything, "user-1", tc.notificationID).
				Return(tc.deleted, tc.deleteErr)

			controller := NotificationDelete{Deleter: deleter}

			req := httptest.NewRequest(http.MethodDelete, "/v1/notifications/"+tc.notificationID, nil)
			req = testContextWithUserID("user-1")(req)
			req = mux.SetURLVars(req, map[string]string{"notification_id": tc.notificationID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
