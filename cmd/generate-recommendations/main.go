package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/webtoon-feed/internal/app"
	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/datasources/redis"
	"github.com/jbeshir/webtoon-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "recommendation generation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "recommendation generation completed successfully")
}

func run(ctx context.Context) error {
	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return fmt.Errorf("setting up dataset repository: %w", err)
	}

	cache, err := app.SetupRecommendationCache(ctx)
	if err != nil {
		return fmt.Errorf("setting up recommendation cache: %w", err)
	}
	if _, ok := cache.(*redis.RecommendationCache); !ok {
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"recommendation cache is not persistent, generated recommendations will be discarded")
	}

	runCmd := command.NewRunRecommendationGeneration(
		dataset,
		command.NewRecommendWebtoons(dataset, dataset, cache),
		cache,
	)

	result, err := runCmd.Execute(ctx, command.RunRecommendationGenerationRequest{})
	if err != nil {
		return err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "generated recommendations",
		"success_count", result.SuccessCount,
		"fail_count", result.FailCount,
	)
	return nil
}
