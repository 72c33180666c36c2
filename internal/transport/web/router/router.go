package router

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/metrics"
	"github.com/jbeshir/webtoon-feed/internal/transport/web/controller"
)

// Commands holds the command implementations the controllers delegate to.
type Commands struct {
	Search            command.Command[domain.SearchCriteria, []domain.CatalogItem]
	Recommend         command.Command[command.RecommendWebtoonsRequest, []domain.RecommendationGroup]
	SetItemRead       command.Command[command.SetItemReadRequest, command.Empty]
	SetItemFavorite   command.Command[command.SetItemFavoriteRequest, command.Empty]
	SetFavoriteGenres command.Command[command.SetFavoriteGenresRequest, command.Empty]
	SendNotification  command.Command[command.SendNotificationRequest, command.SendNotificationResult]
}

type Config struct {
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	LatestCacheMaxAge  time.Duration

	// InternalAPIKey guards the internal endpoints. When empty they are not registered.
	InternalAPIKey string

	// SearchRateLimitPerMinute caps search requests per client IP. Zero disables the limit.
	SearchRateLimitPerMinute int
}

func MakeRouter(
	dataset datasources.DatasetRepository,
	commands Commands,
	config Config,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	var search http.Handler = controller.Search{Searcher: commands.Search}
	if config.SearchRateLimitPerMinute > 0 {
		search = httprate.LimitByIP(config.SearchRateLimitPerMinute, time.Minute)(search)
	}
	r.Handle("/api/search", search).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/webtoons", controller.WebtoonsList{
		Lister:      dataset,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/webtoons/{item_id}", controller.WebtoonGet{
		Fetcher:     dataset,
		CacheMaxAge: config.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/webtoons/{item_id}/read/{read}", requireAuthMiddleware(controller.WebtoonReadSet{
		Setter: commands.SetItemRead,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/webtoons/{item_id}/favorite/{favorite}", requireAuthMiddleware(controller.WebtoonFavoriteSet{
		Setter: commands.SetItemFavorite,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/profile/genres", requireAuthMiddleware(controller.FavoriteGenresSet{
		Setter: commands.SetFavoriteGenres,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/recommendations", controller.RecommendationsList{
		Recommender: commands.Recommend,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/notifications", requireAuthMiddleware(controller.NotificationsList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/notifications/read", requireAuthMiddleware(controller.NotificationsMarkAllRead{
		Marker: dataset,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/notifications/{notification_id}/read", requireAuthMiddleware(controller.NotificationMarkRead{
		Marker: dataset,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/notifications/{notification_id}", requireAuthMiddleware(controller.NotificationDelete{
		Deleter: dataset,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/notification-preferences", requireAuthMiddleware(controller.NotificationPreferencesGet{
		Getter: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/notification-preferences", requireAuthMiddleware(controller.NotificationPreferencesUpdate{
		Updater: dataset,
	})).Methods(http.MethodPatch, http.MethodOptions)

	if config.InternalAPIKey != "" {
		r.Handle("/v1/internal/notifications", requireInternalKeyMiddleware(config.InternalAPIKey)(
			controller.NotificationSend{Sender: commands.SendNotification},
		)).Methods(http.MethodPost)
	}

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    config.RSSFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  config.RSSFeedAuthorName,
			FeedAuthorEmail: config.RSSFeedAuthorEmail,
			Lister:          dataset,
			CacheMaxAge:     config.LatestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet)
	}

	return r, nil
}
