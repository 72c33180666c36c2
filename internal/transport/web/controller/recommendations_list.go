package controller

import (
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type RecommendationsList struct {
	Recommender command.Command[command.RecommendWebtoonsRequest, []domain.RecommendationGroup]
}

type RecommendationsListResponse struct {
	Data []domain.RecommendationGroup `json:"data"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := c.Recommender.Execute(ctx, command.RecommendWebtoonsRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to recommend webtoons", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, RecommendationsListResponse{Data: groups})
}
