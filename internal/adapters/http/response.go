package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

// apiResponse is the uniform envelope for every endpoint.
type apiResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload apiResponse) {
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, apiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, statusCode int, message, detail string) {
	writeJSON(w, statusCode, apiResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// mapDomainError translates sentinel errors into an HTTP status and a safe
// client-facing message. Everything unrecognized is an internal error.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Validation failed"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "Conflict"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, message := mapDomainError(err)
	detail := ""
	if status < http.StatusInternalServerError {
		detail = err.Error()
	}
	writeError(w, status, message, detail)
}
