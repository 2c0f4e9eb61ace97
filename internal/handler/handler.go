package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"products-api/internal/middleware"
	"products-api/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies read by the handlers.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already sent; an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	logger.Warn().
		Str("error", code).
		Str("message", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps err onto a response. Validation errors become 400,
// missing products 404; anything else is logged and reported as a 500 with
// internalMessage so store details never reach the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, internalMessage string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) {
		switch de.Kind {
		case model.KindValidation:
			writeError(w, r, http.StatusBadRequest, de.Code, de.Message, logger)
			return
		case model.KindNotFound:
			writeError(w, r, http.StatusNotFound, de.Code, de.Message, logger)
			return
		}
	}

	logger.Error().
		Err(err).
		Str("correlation_id", middleware.RequestIDFromContext(r.Context())).
		Msg(internalMessage)
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, internalMessage, logger)
}
