package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type MockCatalogLister struct{ mock.Mock }

type MockCatalogListerExpecter struct{ m *mock.Mock }

func NewMockCatalogLister(t TestingT) *MockCatalogLister {
	m := &MockCatalogLister{}
	register(&m.Mock, t)
	return m
}

func (m *MockCatalogLister) EXPECT() *MockCatalogListerExpecter {
	return &MockCatalogListerExpecter{m: &m.Mock}
}

func (e *MockCatalogListerExpecter) ListCatalogItems(ctx, filters any) *mock.Call {
	return e.m.On("ListCatalogItems", ctx, filters)
}

func (m *MockCatalogLister) ListCatalogItems(
	ctx context.Context,
	filters domain.CatalogFilters,
) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, filters)
	return ret[[]domain.CatalogItem](args, 0), args.Error(1)
}

type MockCatalogItemFetcher struct{ mock.Mock }

type MockCatalogItemFetcherExpecter struct{ m *mock.Mock }

func NewMockCatalogItemFetcher(t TestingT) *MockCatalogItemFetcher {
	m := &MockCatalogItemFetcher{}
	register(&m.Mock, t)
	return m
}

func (m *MockCatalogItemFetcher) EXPECT() *MockCatalogItemFetcherExpecter {
	return &MockCatalogItemFetcherExpecter{m: &m.Mock}
}

func (e *MockCatalogItemFetcherExpecter) FetchCatalogItemsByID(ctx, ids any) *mock.Call {
	return e.m.On("FetchCatalogItemsByID", ctx, ids)
}

func (m *MockCatalogItemFetcher) FetchCatalogItemsByID(
	ctx context.Context,
	ids []string,
) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, ids)
	return ret[[]domain.CatalogItem](args, 0), args.Error(1)
}
