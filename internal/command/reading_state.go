package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/validation"
)

// ErrCatalogItemNotFound is returned when a reading state change names an unknown item.
var ErrCatalogItemNotFound = errors.New("catalog item not found")

type SetItemReadRequest struct {
	UserID string
	ItemID string
	Read   bool
}

// SetItemRead records whether a reader has read an item.
type SetItemRead struct {
	ItemFetcher datasources.CatalogItemFetcher
	ReadSetter  datasources.ItemReadSetter
	Cache       datasources.RecommendationCache
}

func NewSetItemRead(
	itemFetcher datasources.CatalogItemFetcher,
	readSetter datasources.ItemReadSetter,
	cache datasources.RecommendationCache,
) *SetItemRead {
	return &SetItemRead{ItemFetcher: itemFetcher, ReadSetter: readSetter, Cache: cache}
}

func (c *SetItemRead) Execute(ctx context.Context, req SetItemReadRequest) (Empty, error) {
	if err := requireCatalogItem(ctx, c.ItemFetcher, req.ItemID); err != nil {
		return Empty{}, err
	}

	if err := c.ReadSetter.SetItemRead(ctx, req.UserID, req.ItemID, req.Read); err != nil {
		return Empty{}, fmt.Errorf("setting item read: %w", err)
	}

	invalidateRecommendations(ctx, c.Cache, req.UserID)
	return Empty{}, nil
}

type SetItemFavoriteRequest struct {
	UserID   string
	ItemID   string
	Favorite bool
}

// SetItemFavorite records whether a reader has favorited an item.
type SetItemFavorite struct {
	ItemFetcher    datasources.CatalogItemFetcher
	FavoriteSetter datasources.ItemFavoriteSetter
	Cache          datasources.RecommendationCache
}

func NewSetItemFavorite(
	itemFetcher datasources.CatalogItemFetcher,
	favoriteSetter datasources.ItemFavoriteSetter,
	cache datasources.RecommendationCache,
) *SetItemFavorite {
	return &SetItemFavorite{ItemFetcher: itemFetcher, FavoriteSetter: favoriteSetter, Cache: cache}
}

func (c *SetItemFavorite) Execute(ctx context.Context, req SetItemFavoriteRequest) (Empty, error) {
	if err := requireCatalogItem(ctx, c.ItemFetcher, req.ItemID); err != nil {
		return Empty{}, err
	}

	if err := c.FavoriteSetter.SetItemFavorite(ctx, req.UserID, req.ItemID, req.Favorite); err != nil {
		return Empty{}, fmt.Errorf("setting item favorite: %w", err)
	}

	invalidateRecommendations(ctx, c.Cache, req.UserID)
	return Empty{}, nil
}

type SetFavoriteGenresRequest struct {
	UserID string   `json:"-"`
	Genres []string `json:"genres" validate:"max=32,dive,required,max=64"`
}

// SetFavoriteGenres replaces a reader's favorite genres.
type SetFavoriteGenres struct {
	GenresSetter datasources.FavoriteGenresSetter
	Cache        datasources.RecommendationCache
}

func NewSetFavoriteGenres(
	genresSetter datasources.FavoriteGenresSetter,
	cache datasources.RecommendationCache,
) *SetFavoriteGenres {
	return &SetFavoriteGenres{GenresSetter: genresSetter, Cache: cache}
}

func (c *SetFavoriteGenres) Execute(ctx context.Context, req SetFavoriteGenresRequest) (Empty, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return Empty{}, fmt.Errorf("invalid favorite genres: %w", err)
	}

	if err := c.GenresSetter.SetFavoriteGenres(ctx, req.UserID, req.Genres); err != nil {
		return Empty{}, fmt.Errorf("setting favorite genres: %w", err)
	}

	invalidateRecommendations(ctx, c.Cache, req.UserID)
	return Empty{}, nil
}

func requireCatalogItem(ctx context.Context, fetcher datasources.CatalogItemFetcher, itemID string) error {
	items, err := fetcher.FetchCatalogItemsByID(ctx, []string{itemID})
	if err != nil {
		return fmt.Errorf("fetching catalog item: %w", err)
	}
	if len(items) == 0 {
		return ErrCatalogItemNotFound
	}
	return nil
}

// invalidateRecommendations is best-effort; a stale entry expires with its TTL.
func invalidateRecommendations(ctx context.Context, cache datasources.RecommendationCache, userID string) {
	if err := cache.InvalidateRecommendations(ctx, userID); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to invalidate cached recommendations", "error", err)
	}
}
