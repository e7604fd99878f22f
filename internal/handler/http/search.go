package http

import (
	"net/http"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/utils"
)

// search handles GET /api/search?q=<query>.
//
// An empty or whitespace-only query is not an error: it returns the full
// catalog up to the configured result limit, matching the behavior of an
// unfiltered browse.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	response, err := h.services.SearchService.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("search failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
