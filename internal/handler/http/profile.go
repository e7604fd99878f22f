package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peoplescope/peoplescope/internal/app"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/internal/utils"
)

// profile handles GET /api/profile/{id}.
//
// The response carries the full profile including gated field values:
// subscription gating is applied client-side and is cosmetic, so the server
// does not redact anything here.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	personID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || personID <= 0 {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid person id")
		http.Error(w, app.MsgInvalidPersonID, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, personID)
	if err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			log.Err(err).Int64("person_id", personID).Msg("person not found")
			http.Error(w, app.MsgPersonNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("person_id", personID).Msg("profile lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
