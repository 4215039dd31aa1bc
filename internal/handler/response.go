package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

// writeJSON renders a response body. A nil payload with http.StatusNoContent
// writes only the status line.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent || payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto flat {"error": "..."} bodies, the shape
// the frontend expects.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.HTTPStatus, map[string]string{"error": apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrTeamNotFound),
		errors.Is(err, model.ErrInviteNotFound),
		errors.Is(err, model.ErrProjectNotFound),
		errors.Is(err, model.ErrRoundNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrUnknownRole):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		slog.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

// decodeJSON parses the request body into dst, rejecting unknown garbage
// with a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return false
	}
	return true
}
