package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"resonate/internal/core/port"
)

type citiesResp struct {
	Cities []port.CitySummary `json:"cities"`
}

// handleListCities lists the configured tenants.
func (h *Handler) handleListCities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, citiesResp{Cities: h.svc.Cities(r.Context())})
}

// handleGetCity returns the departments, languages, labels and budget tiers
// the wizard needs to render its forms.
func (h *Handler) handleGetCity(w http.ResponseWriter, r *http.Request) {
	city, err := h.svc.City(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, city)
}

// handleGeography returns the catalog arranged in display groups.
func (h *Handler) handleGeography(w http.ResponseWriter, r *http.Request) {
	geo, err := h.svc.Geography(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, geo)
}
