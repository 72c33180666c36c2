package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/webtoon-feed/internal/command"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type WebtoonReadSet struct {
	Setter command.Command[command.SetItemReadRequest, command.Empty]
}

func (c WebtoonReadSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleReadingState(w, r, "read", func(r *http.Request, itemID string, value bool) error {
		_, err := c.Setter.Execute(r.Context(), command.SetItemReadRequest{
			UserID: domain.UserIDFromContext(r.Context()),
			ItemID: itemID,
			Read:   value,
		})
		return err
	})
}

type WebtoonFavoriteSet struct {
	Setter command.Command[command.SetItemFavoriteRequest, command.Empty]
}

func (c WebtoonFavoriteSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleReadingState(w, r, "favorite", func(r *http.Request, itemID string, value bool) error {
		_, err := c.Setter.Execute(r.Context(), command.SetItemFavoriteRequest{
			UserID:   domain.UserIDFromContext(r.Context()),
			ItemID:   itemID,
			Favorite: value,
		})
		return err
	})
}

func handleReadingState(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	set func(r *http.Request, itemID string, value bool) error,
) {
	vars := mux.Vars(r)
	id := vars["item_id"]
	logger := domain.LoggerFromContext(r.Context()).With("item_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	value, ok := parseBoolParam(vars[paramName])
	if !ok {
		logger.ErrorContext(ctx, "invalid status", "status", vars[paramName])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := set(r.WithContext(ctx), id, value)
	if errors.Is(err, command.ErrCatalogItemNotFound) {
		writeError(ctx, w, http.StatusNotFound, "webtoon not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to set reading state", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type FavoriteGenresSet struct {
	Setter command.Command[command.SetFavoriteGenresRequest, command.Empty]
}

func (c FavoriteGenresSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req command.SetFavoriteGenresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode favorite genres", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = domain.UserIDFromContext(ctx)

	if _, err := c.Setter.Execute(ctx, req); err != nil {
		logger.ErrorContext(ctx, "unable to set favorite genres", "error", err)
		writeError(ctx, w, statusForCommandError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
