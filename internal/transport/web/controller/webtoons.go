package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// WebtoonsList lists the catalog, most recently updated first.
type WebtoonsList struct {
	Lister      datasources.CatalogLister
	CacheMaxAge time.Duration
}

type WebtoonsListResponse struct {
	Data     []domain.CatalogItem `json:"data"`
	Metadata WebtoonsListMetadata `json:"metadata"`
}

type WebtoonsListMetadata struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
}

func (c WebtoonsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	criteria := domain.SearchCriteria{
		Sort:         domain.SearchSortLatest,
		IncludeAdult: r.URL.Query().Get("include_adult") == boolTrue,
	}
	if r.URL.Query().Has("status") {
		criteria.Status = r.URL.Query().Get("status")
	}

	items, err := c.Lister.ListCatalogItems(ctx, criteria.Filters())
	if err != nil {
		logger.ErrorContext(ctx, "unable to list catalog items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	items = domain.SearchCatalog(items, criteria)

	if domain.UserIDFromContext(ctx) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(ctx, w, http.StatusOK, WebtoonsListResponse{
		Data: paginate(items, page, pageSize),
		Metadata: WebtoonsListMetadata{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: len(items),
		},
	})
}

type WebtoonGet struct {
	Fetcher     datasources.CatalogItemFetcher
	CacheMaxAge time.Duration
}

func (c WebtoonGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["item_id"]
	logger := domain.LoggerFromContext(r.Context()).With("item_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	items, err := c.Fetcher.FetchCatalogItemsByID(ctx, []string{id})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch catalog item", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		writeError(ctx, w, http.StatusNotFound, "webtoon not found")
		return
	}

	if domain.UserIDFromContext(ctx) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(ctx, w, http.StatusOK, items[0])
}
