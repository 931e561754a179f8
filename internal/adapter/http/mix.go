package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"resonate/internal/core/port"
)

// handleOptimize assembles a publisher mix for the posted audience.
func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req port.OptimizeReq
	if !h.decode(w, r, &req) {
		return
	}
	req.CityID = chi.URLParam(r, "city")

	resp, err := h.svc.Optimize(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleSummary recomputes the coverage sidebar for the current selection.
// The wizard calls it on every add or remove.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req port.SummaryReq
	if !h.decode(w, r, &req) {
		return
	}
	req.CityID = chi.URLParam(r, "city")

	summary, err := h.svc.Summarize(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
