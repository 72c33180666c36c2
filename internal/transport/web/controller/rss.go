package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

const rssFeedSize = 50

// RSS publishes the most recently updated webtoons.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.CatalogLister
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Webtoon Updates",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Recently updated webtoon series",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now(),
	}

	criteria := domain.SearchCriteria{Sort: domain.SearchSortLatest}
	if r.URL.Query().Has("genres") {
		criteria.Genres = strings.Split(r.URL.Query().Get("genres"), ",")
	}
	if r.URL.Query().Has("languages") {
		criteria.Languages = strings.Split(r.URL.Query().Get("languages"), ",")
	}

	items, err := c.Lister.ListCatalogItems(ctx, criteria.Filters())
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch webtoons for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	items = paginate(domain.SearchCatalog(items, criteria), 1, rssFeedSize)

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/webtoons/" + item.ID},
			Description: item.Description,
			Author:      &feeds.Author{Name: item.AuthorName},
			Updated:     item.UpdatedAt,
			Created:     item.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
