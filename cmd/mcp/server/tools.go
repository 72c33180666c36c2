package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

func (s *Server) handleSearchWebtoons(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	criteria, limit := parseSearchCriteria(request.Params.Arguments)

	items, err := s.client.SearchWebtoons(ctx, criteria)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search webtoons: %v", err)), nil
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return formatJSONResult(fmt.Sprintf("Found %d series", len(items)), items, len(items) == 0)
}

func parseSearchCriteria(args map[string]any) (domain.SearchCriteria, int) {
	criteria := domain.DefaultSearchCriteria()

	if query, ok := args["query"].(string); ok {
		criteria.Query = query
	}
	if scope, ok := args["scope"].(string); ok && scope != "" {
		criteria.Scope = domain.SearchScope(scope)
	}
	if genres, ok := args["genres"].(string); ok && genres != "" {
		criteria.Genres = splitAndTrim(genres)
	}
	if status, ok := args["status"].(string); ok && status != "" {
		criteria.Status = status
	}
	if languages, ok := args["languages"].(string); ok && languages != "" {
		criteria.Languages = splitAndTrim(languages)
	}
	if minRating, ok := args["min_rating"].(float64); ok {
		criteria.MinRating = minRating
	}
	if sort, ok := args["sort"].(string); ok && sort != "" {
		criteria.Sort = domain.SearchSort(sort)
	}
	if includeAdult, ok := args["include_adult"].(bool); ok {
		criteria.IncludeAdult = includeAdult
	}

	limit := defaultSearchLimit
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), maxSearchLimit)
	}

	return criteria, limit
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func (s *Server) handleGetWebtoon(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	itemID, ok := request.Params.Arguments["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	item, err := s.client.GetWebtoon(ctx, itemID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get webtoon: %v", err)), nil
	}

	return formatJSONResult("", item, false)
}

func (s *Server) handleGetRecommendations(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	groups, err := s.client.GetRecommendations(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatJSONResult(fmt.Sprintf("Found %d recommendation group(s)", len(groups)), groups, len(groups) == 0)
}

func (s *Server) handleMarkRead(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	itemID, ok := args["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	read, ok := args["read"].(bool)
	if !ok {
		return mcp.NewToolResultError("read is required (true or false)"), nil
	}

	if err := s.client.MarkRead(ctx, itemID, read); err != nil {
		errMsg := fmt.Sprintf("failed to mark webtoon as read: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	status := "read"
	if !read {
		status = "unread"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully marked webtoon %s as %s", itemID, status)), nil
}

func (s *Server) handleSetFavorite(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	itemID, ok := args["item_id"].(string)
	if !ok || itemID == "" {
		return mcp.NewToolResultError("item_id is required"), nil
	}

	favorite, ok := args["favorite"].(bool)
	if !ok {
		return mcp.NewToolResultError("favorite is required (true or false)"), nil
	}

	if err := s.client.SetFavorite(ctx, itemID, favorite); err != nil {
		errMsg := fmt.Sprintf("failed to set favorite: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if favorite {
		return mcp.NewToolResultText(fmt.Sprintf("Added webtoon %s to favorites", itemID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed webtoon %s from favorites", itemID)), nil
}

func (s *Server) handleSetFavoriteGenres(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	genres, ok := request.Params.Arguments["genres"].(string)
	if !ok {
		return mcp.NewToolResultError("genres is required"), nil
	}

	var list []string
	if strings.TrimSpace(genres) != "" {
		list = splitAndTrim(genres)
	}

	if err := s.client.SetFavoriteGenres(ctx, list); err != nil {
		errMsg := fmt.Sprintf("failed to set favorite genres: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Favorite genres set to: %s", strings.Join(list, ", "))), nil
}

func (s *Server) handleListNotifications(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	result, err := s.client.ListNotifications(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list notifications: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	summary := fmt.Sprintf("%d notification(s), %d unread", len(result.Data), result.Metadata.UnreadCount)
	return formatJSONResult(summary, result.Data, len(result.Data) == 0)
}

func (s *Server) handleMarkNotificationRead(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	notificationID, _ := request.Params.Arguments["notification_id"].(string)

	if notificationID == "" {
		updated, err := s.client.MarkAllNotificationsRead(ctx)
		if err != nil {
			errMsg := fmt.Sprintf("failed to mark notifications as read: %v", err)
			return mcp.NewToolResultError(errMsg), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Marked %d notification(s) as read", updated)), nil
	}

	if err := s.client.MarkNotificationRead(ctx, notificationID); err != nil {
		errMsg := fmt.Sprintf("failed to mark notification as read: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Marked notification %s as read", notificationID)), nil
}

// formatJSONResult renders v as indented JSON after an optional summary line.
func formatJSONResult(summary string, v any, empty bool) (*mcp.CallToolResult, error) {
	if empty {
		return mcp.NewToolResultText("No results found."), nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format result: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if summary == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s:\n\n%s", summary, string(data))), nil
}
