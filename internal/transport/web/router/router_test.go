package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/datasources/memory"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func newTestRouter(t *testing.T, config Config) (http.Handler, *memory.Repository) {
	t.Helper()

	repo := memory.NewSeeded()
	cache := datasources.NullRecommendationCache{}
	commands := Commands{
		Search:            command.NewSearchCatalog(repo),
		Recommend:         command.NewRecommendWebtoons(repo, repo, cache),
		SetItemRead:       command.NewSetItemRead(repo, repo, cache),
		SetItemFavorite:   command.NewSetItemFavorite(repo, repo, cache),
		SetFavoriteGenres: command.NewSetFavoriteGenres(repo, cache),
		SendNotification:  command.NewSendNotification(repo, repo),
	}

	r, err := MakeRouter(repo, commands, config, NewAuthMiddleware([]AuthValidator{NewHeaderValidator()}))
	require.NoError(t, err)
	return withTestLogger(r), repo
}

func serve(handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMakeRouter_Routes(t *testing.T) {
	handler, _ := newTestRouter(t, Config{LatestCacheMaxAge: time.Minute, InternalAPIKey: "secret"})
	user := map[string]string{"X-User-ID": "user-1"}

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "search", method: http.MethodPost, path: "/api/search", body: `{"query":"space"}`, wantStatus: http.StatusOK},
		{name: "search_wrong_method", method: http.MethodGet, path: "/api/search", wantStatus: http.StatusMethodNotAllowed},
		{name: "cors_preflight", method: http.MethodOptions, path: "/api/search", wantStatus: http.StatusOK},
		{name: "webtoons_list", method: http.MethodGet, path: "/v1/webtoons", wantStatus: http.StatusOK},
		{name: "webtoon_get", method: http.MethodGet, path: "/v1/webtoons/1", wantStatus: http.StatusOK},
		{name: "webtoon_missing", method: http.MethodGet, path: "/v1/webtoons/99", wantStatus: http.StatusNotFound},
		{name: "recommendations_anonymous", method: http.MethodGet, path: "/v1/recommendations", wantStatus: http.StatusOK},
		{name: "read_requires_auth", method: http.MethodPost, path: "/v1/webtoons/1/read/true", wantStatus: http.StatusUnauthorized},
		{name: "read", method: http.MethodPost, path: "/v1/webtoons/1/read/true", headers: user, wantStatus: http.StatusNoContent},
		{name: "favorite", method: http.MethodPost, path: "/v1/webtoons/1/favorite/true", headers: user, wantStatus: http.StatusNoContent},
		{name: "genres", method: http.MethodPut, path: "/v1/profile/genres", body: `{"genres":["Fantasy"]}`, headers: user, wantStatus: http.StatusNoContent},
		{name: "notifications_requires_auth", method: http.MethodGet, path: "/v1/notifications", wantStatus: http.StatusUnauthorized},
		{name: "notifications", method: http.MethodGet, path: "/v1/notifications", headers: user, wantStatus: http.StatusOK},
		{name: "notifications_mark_all", method: http.MethodPost, path: "/v1/notifications/read", headers: user, wantStatus: http.StatusOK},
		{name: "notification_mark_missing", method: http.MethodPost, path: "/v1/notifications/nope/read", headers: user, wantStatus: http.StatusNotFound},
		{name: "notification_delete_missing", method: http.MethodDelete, path: "/v1/notifications/nope", headers: user, wantStatus: http.StatusNotFound},
		{name: "preferences_get", method: http.MethodGet, path: "/v1/notification-preferences", headers: user, wantStatus: http.StatusOK},
		{name: "preferences_patch", method: http.MethodPatch, path: "/v1/notification-preferences", body: `{"comment_likes":false}`, headers: user, wantStatus: http.StatusOK},
		{name: "internal_without_key", method: http.MethodPost, path: "/v1/internal/notifications", body: `{}`, wantStatus: http.StatusForbidden},
		{name: "rss", method: http.MethodGet, path: "/rss", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(handler, tc.method, tc.path, tc.body, tc.headers)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestMakeRouter_NotificationFlow(t *testing.T) {
	handler, _ := newTestRouter(t, Config{InternalAPIKey: "secret"})
	user := map[string]string{"X-User-ID": "user-1"}

	rec := serve(handler, http.MethodPost, "/v1/internal/notifications",
		`{"user_id":"user-1","type":"comment_reply","title":"Reply","message":"Someone replied"}`,
		map[string]string{internalKeyHeader: "secret"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Notification
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	rec = serve(handler, http.MethodGet, "/v1/notifications", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread_count":1`)

	rec = serve(handler, http.MethodPost, "/v1/notifications/"+created.ID+"/read", "", user)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(handler, http.MethodPost, "/v1/notifications/"+created.ID+"/read", "", user)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(handler, http.MethodDelete, "/v1/notifications/"+created.ID, "", user)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(handler, http.MethodGet, "/v1/notifications", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"metadata":{"unread_count":0}}`, rec.Body.String())
}

func TestMakeRouter_InternalRoutesDisabledWithoutKey(t *testing.T) {
	handler, _ := newTestRouter(t, Config{})

	rec := serve(handler, http.MethodPost, "/v1/internal/notifications", `{}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMakeRouter_SearchRateLimit(t *testing.T) {
	handler, _ := newTestRouter(t, Config{SearchRateLimitPerMinute: 2})

	for range 2 {
		rec := serve(handler, http.MethodPost, "/api/search", `{}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(handler, http.MethodPost, "/api/search", `{}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
