package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"resonate/internal/core/domain"
	"resonate/internal/core/port"
)

// handleMatch scores the posted audience against the city's inventory. The
// body is a port.MatchReq; the city comes from the path. Invalid audiences
// produce HTTP 400 with the input error code.
func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req port.MatchReq
	if !h.decode(w, r, &req) {
		return
	}
	req.CityID = chi.URLParam(r, "city")

	res, err := h.svc.Match(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleExplain renders the breakdown of a posted match result.
func (h *Handler) handleExplain(w http.ResponseWriter, r *http.Request) {
	var result domain.MatchResult
	if !h.decode(w, r, &result) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Explain(r.Context(), result))
}
