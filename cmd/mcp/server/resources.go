package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const webtoonURIPrefix = "webtoon://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			webtoonURIPrefix+"{item_id}",
			"Individual webtoon series",
			mcp.WithTemplateDescription(
				"Fetch a specific series by its ID, including author, genres, rating, "+
					"view and like counts, publication status and language."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleWebtoonResource,
	)
}

func (s *Server) handleWebtoonResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, webtoonURIPrefix) {
		return nil, fmt.Errorf("invalid webtoon URI format: %s", uri)
	}

	itemID := strings.TrimPrefix(uri, webtoonURIPrefix)
	if itemID == "" {
		return nil, fmt.Errorf("missing item_id in URI: %s", uri)
	}

	item, err := s.client.GetWebtoon(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webtoon %s: %w", itemID, err)
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webtoon: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
