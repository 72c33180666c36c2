package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/metrics"
	"github.com/jbeshir/webtoon-feed/internal/validation"
)

// SearchCatalog ranks and filters the catalog against a search request.
type SearchCatalog struct {
	CatalogLister datasources.CatalogLister
}

func NewSearchCatalog(catalogLister datasources.CatalogLister) *SearchCatalog {
	return &SearchCatalog{CatalogLister: catalogLister}
}

// Execute returns a *validation.Error (wrapped) when the criteria hold unknown enum values.
func (c *SearchCatalog) Execute(ctx context.Context, criteria domain.SearchCriteria) ([]domain.CatalogItem, error) {
	if err := validation.ValidateStruct(criteria); err != nil {
		return nil, fmt.Errorf("invalid search criteria: %w", err)
	}

	items, err := c.CatalogLister.ListCatalogItems(ctx, criteria.Filters())
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}

	results := domain.SearchCatalog(items, criteria)

	sort := criteria.Sort
	if sort == "" {
		sort = domain.SearchSortRelevance
	}
	metrics.RecordSearch(string(sort))

	domain.LoggerFromContext(ctx).DebugContext(ctx, "searched catalog",
		"query", criteria.Query, "result_count", len(results))

	return results, nil
}
