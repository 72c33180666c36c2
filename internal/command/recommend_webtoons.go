package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/metrics"
)

// RecommendWebtoonsRequest identifies the reader. An empty UserID is an anonymous reader.
type RecommendWebtoonsRequest struct {
	UserID string
}

// RecommendWebtoons serves recommendation groups, reading through the recommendation cache
// for signed-in readers. Cache failures are logged and otherwise ignored.
type RecommendWebtoons struct {
	CatalogLister datasources.CatalogLister
	ProfileGetter datasources.ReadingProfileGetter
	Cache         datasources.RecommendationCache
}

func NewRecommendWebtoons(
	catalogLister datasources.CatalogLister,
	profileGetter datasources.ReadingProfileGetter,
	cache datasources.RecommendationCache,
) *RecommendWebtoons {
	return &RecommendWebtoons{
		CatalogLister: catalogLister,
		ProfileGetter: profileGetter,
		Cache:         cache,
	}
}

func (c *RecommendWebtoons) Execute(
	ctx context.Context,
	req RecommendWebtoonsRequest,
) ([]domain.RecommendationGroup, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.UserID != "" {
		cached, found, err := c.Cache.GetRecommendations(ctx, req.UserID)
		switch {
		case err != nil:
			metrics.RecordRecommendationCacheLookup(metrics.CacheError)
			logger.WarnContext(ctx, "failed to read cached recommendations", "error", err)
		case found:
			metrics.RecordRecommendationCacheLookup(metrics.CacheHit)
			return cached, nil
		default:
			metrics.RecordRecommendationCacheLookup(metrics.CacheMiss)
		}
	}

	groups, err := c.Generate(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" {
		if err := c.Cache.SetRecommendations(ctx, req.UserID, groups); err != nil {
			logger.WarnContext(ctx, "failed to cache recommendations", "error", err)
		}
	}

	return groups, nil
}

// Generate computes recommendation groups without consulting the cache. Readers without a
// stored reading profile get the anonymous groups.
func (c *RecommendWebtoons) Generate(ctx context.Context, userID string) ([]domain.RecommendationGroup, error) {
	var profile *domain.UserPreferenceProfile
	if userID != "" {
		p, found, err := c.ProfileGetter.GetReadingProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("getting reading profile: %w", err)
		}
		if found {
			profile = &p
		}
	}

	items, err := c.CatalogLister.ListCatalogItems(ctx, domain.CatalogFilters{})
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}

	groups := domain.Recommend(profile, items)
	if groups == nil {
		groups = []domain.RecommendationGroup{}
	}
	return groups, nil
}
