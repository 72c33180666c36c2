package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/transport/web/router"
	"github.com/jbeshir/webtoon-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	cache, err := SetupRecommendationCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up recommendation cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	commands := router.Commands{
		Search:            command.NewSearchCatalog(dataset),
		Recommend:         command.NewRecommendWebtoons(dataset, dataset, cache),
		SetItemRead:       command.NewSetItemRead(dataset, dataset, cache),
		SetItemFavorite:   command.NewSetItemFavorite(dataset, dataset, cache),
		SetFavoriteGenres: command.NewSetFavoriteGenres(dataset, cache),
		SendNotification:  command.NewSendNotification(dataset, dataset),
	}

	httpRouter, err := router.MakeRouter(
		dataset,
		commands,
		router.Config{
			RSSFeedBaseURL:           MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:        MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail:       MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			LatestCacheMaxAge:        MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
			InternalAPIKey:           GetEnvAsString("INTERNAL_API_KEY", ""),
			SearchRateLimitPerMinute: MustGetEnvAsInt(ctx, "SEARCH_RATE_LIMIT_PER_MINUTE"),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "header":
			validators = append(validators, router.NewHeaderValidator())
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
