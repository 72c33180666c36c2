// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jbeshir/webtoon-feed/cmd/mcp/client"
)

// Server is the MCP server for the Webtoon Feed.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"webtoon-feed",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("search_webtoons",
		mcp.WithDescription(
			"Search webtoon series by keyword and filters. With a query, results are ranked by "+
				"relevance across title, author, description and keywords."),
		mcp.WithString("query",
			mcp.Description("Text to match against series (case-insensitive)"),
		),
		mcp.WithString("scope",
			mcp.Description("Fields to match the query against: 'all' (default), 'title', 'author' or 'description'"),
		),
		mcp.WithString("genres",
			mcp.Description("Comma-separated genres; a series matches if it has any of them"),
		),
		mcp.WithString("status",
			mcp.Description("Publication status: 'all', 'ongoing', 'completed' or 'hiatus'"),
		),
		mcp.WithString("languages",
			mcp.Description("Comma-separated language codes (e.g., 'en,ko')"),
		),
		mcp.WithNumber("min_rating",
			mcp.Description("Minimum rating from 0 to 5"),
		),
		mcp.WithString("sort",
			mcp.Description("Ordering: 'relevance' (default), 'latest', 'popular' or 'rating'"),
		),
		mcp.WithBoolean("include_adult",
			mcp.Description("Include adult series (default: false)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of series to return (default: 20, max: 100)"),
		),
	), s.handleSearchWebtoons)

	s.mcpServer.AddTool(mcp.NewTool("get_webtoon",
		mcp.WithDescription("Get full details of a specific webtoon series by its ID."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the series to retrieve"),
		),
	), s.handleGetWebtoon)

	s.mcpServer.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription(
			"Get recommendation groups (genre, similar, popular, top rated) based on your favorite "+
				"genres, favorites and reading history."),
	), s.handleGetRecommendations)

	s.mcpServer.AddTool(mcp.NewTool("mark_read",
		mcp.WithDescription("Mark a series as read or unread. Read series are left out of recommendations."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the series"),
		),
		mcp.WithBoolean("read",
			mcp.Required(),
			mcp.Description("Whether to mark as read (true) or unread (false)"),
		),
	), s.handleMarkRead)

	s.mcpServer.AddTool(mcp.NewTool("set_favorite",
		mcp.WithDescription("Add a series to, or remove it from, your favorites."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the series"),
		),
		mcp.WithBoolean("favorite",
			mcp.Required(),
			mcp.Description("Whether the series is a favorite"),
		),
	), s.handleSetFavorite)

	s.mcpServer.AddTool(mcp.NewTool("set_favorite_genres",
		mcp.WithDescription("Replace your favorite genres."),
		mcp.WithString("genres",
			mcp.Required(),
			mcp.Description("Comma-separated genres (e.g., 'Fantasy,Romance')"),
		),
	), s.handleSetFavoriteGenres)

	s.mcpServer.AddTool(mcp.NewTool("list_notifications",
		mcp.WithDescription("List your notifications, newest first, with the unread count."),
	), s.handleListNotifications)

	s.mcpServer.AddTool(mcp.NewTool("mark_notification_read",
		mcp.WithDescription("Mark one notification as read, or all of them when notification_id is omitted."),
		mcp.WithString("notification_id",
			mcp.Description("The ID of the notification"),
		),
	), s.handleMarkNotificationRead)
}
