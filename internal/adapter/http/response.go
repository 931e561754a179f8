package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"resonate/internal/core/domain"
)

// errorResp is the body of every non-2xx response. Error is a stable code,
// Reason is meant for humans.
type errorResp struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors to HTTP statuses: bad input is 400, an
// unknown city 404 and anything else 500 with the cause logged only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var inErr *domain.InputError
	switch {
	case errors.As(err, &inErr):
		h.writeJSON(w, http.StatusBadRequest, errorResp{Error: inErr.Code, Reason: inErr.Reason})
	case errors.Is(err, domain.ErrCityNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResp{Error: "city_not_found", Reason: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResp{Error: "internal"})
	}
}

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResp{Error: domain.CodeInvalidRequest, Reason: "request body too large"})
			return false
		}
		h.writeJSON(w, http.StatusBadRequest, errorResp{Error: domain.CodeInvalidRequest, Reason: "invalid JSON"})
		return false
	}
	return true
}
