package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type MockReadingProfileGetter struct{ mock.Mock }

type MockReadingProfileGetterExpecter struct{ m *mock.Mock }

func NewMockReadingProfileGetter(t TestingT) *MockReadingProfileGetter {
	m := &MockReadingProfileGetter{}
	register(&m.Mock, t)
	return m
}

func (m *MockReadingProfileGetter) EXPECT() *MockReadingProfileGetterExpecter {
	return &MockReadingProfileGetterExpecter{m: &m.Mock}
}

func (e *MockReadingProfileGetterExpecter) GetReadingProfile(ctx, userID any) *mock.Call {
	return e.m.On("GetReadingProfile", ctx, userID)
}

func (m *MockReadingProfileGetter) GetReadingProfile(
	ctx context.Context,
	userID string,
) (domain.UserPreferenceProfile, bool, error) {
	args := m.Called(ctx, userID)
	return ret[domain.UserPreferenceProfile](args, 0), args.Bool(1), args.Error(2)
}

type MockItemReadSetter struct{ mock.Mock }

type MockItemReadSetterExpecter struct{ m *mock.Mock }

func NewMockItemReadSetter(t TestingT) *MockItemReadSetter {
	m := &MockItemReadSetter{}
	register(&m.Mock, t)
	return m
}

func (m *MockItemReadSetter) EXPECT() *MockItemReadSetterExpecter {
	return &MockItemReadSetterExpecter{m: &m.Mock}
}

func (e *MockItemReadSetterExpecter) SetItemRead(ctx, userID, itemID, read any) *mock.Call {
	return e.m.On("SetItemRead", ctx, userID, itemID, read)
}

func (m *MockItemReadSetter) SetItemRead(ctx context.Context, userID, itemID string, read bool) error {
	return m.Called(ctx, userID, itemID, read).Error(0)
}

type MockItemFavoriteSetter struct{ mock.Mock }

type MockItemFavoriteSetterExpecter struct{ m *mock.Mock }

func NewMockItemFavoriteSetter(t TestingT) *MockItemFavoriteSetter {
	m := &MockItemFavoriteSetter{}
	register(&m.Mock, t)
	return m
}

func (m *MockItemFavoriteSetter) EXPECT() *MockItemFavoriteSetterExpecter {
	return &MockItemFavoriteSetterExpecter{m: &m.Mock}
}

func (e *MockItemFavoriteSetterExpecter) SetItemFavorite(ctx, userID, itemID, favorite any) *mock.Call {
	return e.m.On("SetItemFavorite", ctx, userID, itemID, favorite)
}

func (m *MockItemFavoriteSetter) SetItemFavorite(ctx context.Context, userID, itemID string, favorite bool) error {
	return m.Called(ctx, userID, itemID, favorite).Error(0)
}

type MockFavoriteGenresSetter struct{ mock.Mock }

type MockFavoriteGenresSetterExpecter struct{ m *mock.Mock }

func NewMockFavoriteGenresSetter(t TestingT) *MockFavoriteGenresSetter {
	m := &MockFavoriteGenresSetter{}
	register(&m.Mock, t)
	return m
}

func (m *MockFavoriteGenresSetter) EXPECT() *MockFavoriteGenresSetterExpecter {
	return &MockFavoriteGenresSetterExpecter{m: &m.Mock}
}

func (e *MockFavoriteGenresSetterExpecter) SetFavoriteGenres(ctx, userID, genres any) *mock.Call {
	return e.m.On("SetFavoriteGenres", ctx, userID, genres)
}

func (m *MockFavoriteGenresSetter) SetFavoriteGenres(ctx context.Context, userID string, genres []string) error {
	return m.Called(ctx, userID, genres).Error(0)
}

type MockProfiledUserLister struct{ mock.Mock }

type MockProfiledUserListerExpecter struct{ m *mock.Mock }

func NewMockProfiledUserLister(t TestingT) *MockProfiledUserLister {
	m := &MockProfiledUserLister{}
	register(&m.Mock, t)
	return m
}

func (m *MockProfiledUserLister) EXPECT() *MockProfiledUserListerExpecter {
	return &MockProfiledUserListerExpecter{m: &m.Mock}
}

func (e *MockProfiledUserListerExpecter) ListProfiledUserIDs(ctx any) *mock.Call {
	return e.m.On("ListProfiledUserIDs", ctx)
}

func (m *MockProfiledUserLister) ListProfiledUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return ret[[]string](args, 0), args.Error(1)
}
