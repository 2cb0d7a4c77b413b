package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helixml/rephrase/domain/paraphrase"
)

// messageInternal is returned for errors outside the paraphrase taxonomy.
const messageInternal = "Internal server error"

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind paraphrase.Kind) int {
	switch kind {
	case paraphrase.KindInvalidInput:
		return http.StatusBadRequest
	case paraphrase.KindAIService:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as {"error": message} with the status for its kind.
// Errors that are not *paraphrase.Error are reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	status := http.StatusInternalServerError
	message := messageInternal

	var pErr *paraphrase.Error
	if errors.As(err, &pErr) {
		status = StatusCode(pErr.Kind())
		message = pErr.Message()
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(r.Context(), level, "request failed",
		slog.Int("status", status),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
