package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

// Search answers POST /api/search. Every failure, including a malformed body, is a 500 with
// an {"error": ...} body.
type Search struct {
	Searcher command.Command[domain.SearchCriteria, []domain.CatalogItem]
}

func (c Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	criteria := domain.DefaultSearchCriteria()
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil && !errors.Is(err, io.EOF) {
		logger.ErrorContext(ctx, "unable to decode search request", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, fmt.Sprintf("invalid search request: %v", err))
		return
	}

	results, err := c.Searcher.Execute(ctx, criteria)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search catalog", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(ctx, w, http.StatusOK, results)
}
