// Package metrics registers the service's Prometheus collectors and exposes them over HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webtoon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webtoon_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webtoon_searches_total",
			Help: "Total number of catalog searches by sort order",
		},
		[]string{"sort"},
	)

	RecommendationCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webtoon_recommendation_cache_lookups_total",
			Help: "Recommendation cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webtoon_notifications_total",
			Help: "Notification send attempts by type and outcome",
		},
		[]string{"type", "outcome"}, // "created", "suppressed", "duplicate"
	)

	RecommendationGenerationUsers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webtoon_recommendation_generation_users_total",
			Help: "Users processed by recommendation precomputation",
		},
		[]string{"outcome"}, // "success", "failure"
	)
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Notification outcomes.
const (
	NotificationCreated    = "created"
	NotificationSuppressed = "suppressed"
	NotificationDuplicate  = "duplicate"
)

func RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordSearch(sort string) {
	SearchesTotal.WithLabelValues(sort).Inc()
}

func RecordRecommendationCacheLookup(result string) {
	RecommendationCacheLookups.WithLabelValues(result).Inc()
}

func RecordNotification(notificationType, outcome string) {
	NotificationsTotal.WithLabelValues(notificationType, outcome).Inc()
}

func RecordRecommendationGeneration(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	RecommendationGenerationUsers.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
