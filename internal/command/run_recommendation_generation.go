package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/metrics"
)

// RunRecommendationGenerationRequest is the request for the RunRecommendationGeneration command.
// This command takes no parameters beyond context.
type RunRecommendationGenerationRequest struct{}

// RunRecommendationGenerationResult counts the users processed.
type RunRecommendationGenerationResult struct {
	SuccessCount int
	FailCount    int
}

// RunRecommendationGeneration precomputes recommendations for every reader with a profile
// and stores them in the recommendation cache.
type RunRecommendationGeneration struct {
	UserLister datasources.ProfiledUserLister
	Generator  *RecommendWebtoons
	Cache      datasources.RecommendationCache
}

func NewRunRecommendationGeneration(
	userLister datasources.ProfiledUserLister,
	generator *RecommendWebtoons,
	cache datasources.RecommendationCache,
) *RunRecommendationGeneration {
	return &RunRecommendationGeneration{
		UserLister: userLister,
		Generator:  generator,
		Cache:      cache,
	}
}

// Execute keeps going when a single user fails; only listing users is fatal.
func (c *RunRecommendationGeneration) Execute(
	ctx context.Context, _ RunRecommendationGenerationRequest,
) (RunRecommendationGenerationResult, error) {
	logger := domain.LoggerFromContext(ctx)

	userIDs, err := c.UserLister.ListProfiledUserIDs(ctx)
	if err != nil {
		return RunRecommendationGenerationResult{}, fmt.Errorf("listing profiled users: %w", err)
	}

	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no users need recommendation generation")
		return RunRecommendationGenerationResult{}, nil
	}

	logger.InfoContext(ctx, "starting recommendation generation", "user_count", len(userIDs))

	var result RunRecommendationGenerationResult
	for _, userID := range userIDs {
		err := c.generateForUser(ctx, userID)
		metrics.RecordRecommendationGeneration(err)
		if err != nil {
			logger.ErrorContext(ctx, "failed to generate recommendations for user",
				"user_id", userID, "error", err)
			result.FailCount++
			continue
		}
		result.SuccessCount++
	}

	logger.InfoContext(ctx, "recommendation generation complete",
		"success_count", result.SuccessCount, "fail_count", result.FailCount)

	return result, nil
}

func (c *RunRecommendationGeneration) generateForUser(ctx context.Context, userID string) error {
	groups, err := c.Generator.Generate(ctx, userID)
	if err != nil {
		return fmt.Errorf("generating recommendations: %w", err)
	}

	if err := c.Cache.SetRecommendations(ctx, userID, groups); err != nil {
		return fmt.Errorf("storing recommendations: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "stored recommendations for user",
		"user_id", userID, "group_count", len(groups))
	return nil
}
