package datasources

import (
	"context"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// RecommendationCache stores computed recommendation groups per user.
type RecommendationCache interface {
	GetRecommendations(ctx context.Context, userID string) ([]domain.RecommendationGroup, bool, error)
	SetRecommendations(ctx context.Context, userID string, groups []domain.RecommendationGroup) error
	InvalidateRecommendations(ctx context.Context, userID string) error
}

// NullRecommendationCache is a cache that never holds anything.
type NullRecommendationCache struct{}

var _ RecommendationCache = NullRecommendationCache{}

func (NullRecommendationCache) GetRecommendations(
	_ context.Context,
	_ string,
) ([]domain.RecommendationGroup, bool, error) {
	return nil, false, nil
}

func (NullRecommendationCache) SetRecommendations(
	_ context.Context,
	_ string,
	_ []domain.RecommendationGroup,
) error {
	return nil
}

func (NullRecommendationCache) InvalidateRecommendations(_ context.Context, _ string) error {
	return nil
}
