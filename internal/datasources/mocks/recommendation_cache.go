package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type MockRecommendationCache struct{ mock.Mock }

type MockRecommendationCacheExpecter struct{ m *mock.Mock }

func NewMockRecommendationCache(t TestingT) *MockRecommendationCache {
	m := &MockRecommendationCache{}
	register(&m.Mock, t)
	return m
}

func (m *MockRecommendationCache) EXPECT() *MockRecommendationCacheExpecter {
	return &MockRecommendationCacheExpecter{m: &m.Mock}
}

func (e *MockRecommendationCacheExpecter) GetRecommendations(ctx, userID any) *mock.Call {
	return e.m.On("GetRecommendations", ctx, userID)
}

func (e *MockRecommendationCacheExpecter) SetRecommendations(ctx, userID, groups any) *mock.Call {
	return e.m.On("SetRecommendations", ctx, userID, groups)
}

func (e *MockRecommendationCacheExpecter) InvalidateRecommendations(ctx, userID any) *mock.Call {
	return e.m.On("InvalidateRecommendations", ctx, userID)
}

func (m *MockRecommendationCache) GetRecommendations(
	ctx context.Context,
	userID string,
) ([]domain.RecommendationGroup, bool, error) {
	args := m.Called(ctx, userID)
	return ret[[]domain.RecommendationGroup](args, 0), args.Bool(1), args.Error(2)
}

func (m *MockRecommendationCache) SetRecommendations(
	ctx context.Context,
	userID string,
	groups []domain.RecommendationGroup,
) error {
	return m.Called(ctx, userID, groups).Error(0)
}

func (m *MockRecommendationCache) InvalidateRecommendations(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
