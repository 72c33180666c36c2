// Package main provides the entry point for the Webtoon Feed MCP server.
//
// This MCP server lets AI agents search the catalog, fetch recommendations and manage
// reading state and notifications through the Webtoon Feed API.
//
// Configuration:
//
//	WEBTOON_FEED_API_URL    - Base URL of the API (default: http://localhost:8080)
//	WEBTOON_FEED_AUTH_TOKEN - Bearer token, for deployments using Auth0 (format: auth0|<jwt>)
//	WEBTOON_FEED_USER_ID    - User ID, for deployments using gateway header auth
package main

import (
	"log"
	"os"

	"github.com/jbeshir/webtoon-feed/cmd/mcp/client"
	"github.com/jbeshir/webtoon-feed/cmd/mcp/server"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	apiURL := os.Getenv("WEBTOON_FEED_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	authToken := os.Getenv("WEBTOON_FEED_AUTH_TOKEN")
	userID := os.Getenv("WEBTOON_FEED_USER_ID")
	if authToken == "" && userID == "" {
		log.Fatal("one of WEBTOON_FEED_AUTH_TOKEN or WEBTOON_FEED_USER_ID is required")
	}

	apiClient := client.NewClient(apiURL, authToken, userID)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
