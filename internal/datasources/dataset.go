package datasources

import (
	"context"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// DatasetRepository combines every store the service needs.
type DatasetRepository interface {
	CatalogRepository
	ReadingProfileRepository
	NotificationRepository
	NotificationPreferencesRepository
}

type CatalogRepository interface {
	CatalogLister
	CatalogItemFetcher
}

// CatalogLister lists catalog items. Implementations may apply filters before returning,
// but callers must not rely on it.
type CatalogLister interface {
	ListCatalogItems(ctx context.Context, filters domain.CatalogFilters) ([]domain.CatalogItem, error)
}

// CatalogItemFetcher returns items in the order of ids, skipping unknown ids.
type CatalogItemFetcher interface {
	FetchCatalogItemsByID(ctx context.Context, ids []string) ([]domain.CatalogItem, error)
}

type ReadingProfileRepository interface {
	ReadingProfileGetter
	ItemReadSetter
	ItemFavoriteSetter
	FavoriteGenresSetter
	ProfiledUserLister
}

// ReadingProfileGetter returns found=false when the user has no stored profile.
type ReadingProfileGetter interface {
	GetReadingProfile(ctx context.Context, userID string) (profile domain.UserPreferenceProfile, found bool, err error)
}

type ItemReadSetter interface {
	SetItemRead(ctx context.Context, userID, itemID string, read bool) error
}

type ItemFavoriteSetter interface {
	SetItemFavorite(ctx context.Context, userID, itemID string, favorite bool) error
}

type FavoriteGenresSetter interface {
	SetFavoriteGenres(ctx context.Context, userID string, genres []string) error
}

type ProfiledUserLister interface {
	ListProfiledUserIDs(ctx context.Context) ([]string, error)
}
