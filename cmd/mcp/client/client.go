// Package client provides an HTTP client for the Webtoon Feed API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// Client is an HTTP client for the Webtoon Feed API.
type Client struct {
	baseURL    string
	authToken  string
	userID     string
	httpClient *http.Client
}

// NewClient creates a new API client. authToken is sent as a bearer token; userID, when set,
// is sent in the X-User-ID header for deployments using gateway header auth.
func NewClient(baseURL, authToken, userID string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		authToken: authToken,
		userID:    userID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	if c.userID != "" {
		req.Header.Set("X-User-ID", c.userID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}
	return c.doRequestWithBody(ctx, method, path, bytes.NewReader(jsonBody))
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// SearchWebtoons runs a catalog search.
func (c *Client) SearchWebtoons(ctx context.Context, criteria domain.SearchCriteria) ([]domain.CatalogItem, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/search", criteria)
	if err != nil {
		return nil, err
	}

	var items []domain.CatalogItem
	if err := c.handleResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// GetWebtoon retrieves a single series by its ID.
func (c *Client) GetWebtoon(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/webtoons/"+url.PathEscape(itemID))
	if err != nil {
		return nil, err
	}

	var item domain.CatalogItem
	if err := c.handleResponse(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// GetRecommendations retrieves recommendation groups for the authenticated reader.
func (c *Client) GetRecommendations(ctx context.Context) ([]domain.RecommendationGroup, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/recommendations")
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []domain.RecommendationGroup `json:"data"`
	}
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// MarkRead marks a series as read or unread.
func (c *Client) MarkRead(ctx context.Context, itemID string, read bool) error {
	path := fmt.Sprintf("/v1/webtoons/%s/read/%t", url.PathEscape(itemID), read)
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// SetFavorite adds or removes a series from the reader's favorites.
func (c *Client) SetFavorite(ctx context.Context, itemID string, favorite bool) error {
	path := fmt.Sprintf("/v1/webtoons/%s/favorite/%t", url.PathEscape(itemID), favorite)
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// SetFavoriteGenres replaces the reader's favorite genres.
func (c *Client) SetFavoriteGenres(ctx context.Context, genres []string) error {
	resp, err := c.doJSON(ctx, http.MethodPut, "/v1/profile/genres", map[string][]string{"genres": genres})
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// NotificationsResponse is a reader's notification list.
type NotificationsResponse struct {
	Data     []domain.Notification           `json:"data"`
	Metadata domain.NotificationListMetadata `json:"metadata"`
}

// ListNotifications retrieves the reader's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) (*NotificationsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/notifications")
	if err != nil {
		return nil, err
	}

	var result NotificationsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/notifications/"+url.PathEscape(notificationID)+"/read")
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// MarkAllNotificationsRead marks every notification as read and returns how many changed.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/notifications/read")
	if err != nil {
		return 0, err
	}

	var result struct {
		Updated int64 `json:"updated"`
	}
	if err := c.handleResponse(resp, &result); err != nil {
		return 0, err
	}

	return result.Updated, nil
}
