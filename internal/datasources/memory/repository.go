// Package memory implements the datasources interfaces on process-local maps.
// It is the default store for development and the reference behaviour for tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	mu            sync.RWMutex
	catalog       []domain.CatalogItem
	profiles      map[string]*domain.UserPreferenceProfile
	notifications map[string][]domain.Notification
	preferences   map[string]domain.NotificationPreferences
}

// New returns a repository holding a copy of catalog.
func New(catalog []domain.CatalogItem) *Repository {
	return &Repository{
		catalog:       slices.Clone(catalog),
		profiles:      make(map[string]*domain.UserPreferenceProfile),
		notifications: make(map[string][]domain.Notification),
		preferences:   make(map[string]domain.NotificationPreferences),
	}
}

// NewSeeded returns a repository holding the sample catalog.
func NewSeeded() *Repository {
	return New(domain.SampleCatalog())
}

func (r *Repository) ListCatalogItems(
	_ context.Context,
	filters domain.CatalogFilters,
) ([]domain.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.CatalogItem, 0, len(r.catalog))
	for _, item := range r.catalog {
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}
		if len(filters.Languages) > 0 && !slices.Contains(filters.Languages, item.Language) {
			continue
		}
		if item.Rating < filters.MinRating {
			continue
		}
		if item.IsAdult && !filters.IncludeAdult {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) FetchCatalogItemsByID(_ context.Context, ids []string) ([]domain.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.CatalogItem, 0, len(ids))
	for _, id := range ids {
		idx := slices.IndexFunc(r.catalog, func(item domain.CatalogItem) bool { return item.ID == id })
		if idx >= 0 {
			items = append(items, r.catalog[idx])
		}
	}
	return items, nil
}
