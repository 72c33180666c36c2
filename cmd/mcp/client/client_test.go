package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func TestClient_SearchWebtoons(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "user-1", r.Header.Get("X-User-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var criteria domain.SearchCriteria
		require.NoError(t, json.NewDecoder(r.Body).Decode(&criteria))
		assert.Equal(t, "space", criteria.Query)

		_ = json.NewEncoder(w).Encode([]domain.CatalogItem{{ID: "1", Title: "The Cosmic Journey"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "", "user-1")
	items, err := c.SearchWebtoons(context.Background(), domain.SearchCriteria{Query: "space"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Cosmic Journey", items[0].Title)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer auth0|token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"webtoon not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "auth0|token", "")
	_, err := c.GetWebtoon(context.Background(), "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "webtoon not found")
}

func TestClient_MarkRead(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "user-1")
	require.NoError(t, c.MarkRead(context.Background(), "3", false))
	assert.Equal(t, "/v1/webtoons/3/read/false", gotPath)
}
