package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"telemetry/internal/domain"
	obsmw "telemetry/internal/observability/middleware"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps core errors onto the boundary contract. Anything outside
// the taxonomy is a storage/collaborator failure: logged with the request id,
// surfaced as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: domain.ErrEmailTaken.Error()})
	case errors.Is(err, domain.ErrDeviceNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: domain.ErrDeviceNotFound.Error()})
	default:
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", obsmw.RequestIDFromContext(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
