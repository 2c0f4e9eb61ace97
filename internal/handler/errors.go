package handler

import (
	"net/http"

	"products-api/internal/model"

	"github.com/rs/zerolog"
)

// NotFound answers requests for unknown routes.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "Route not found.", logger)
	}
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "Method not allowed.", logger)
	}
}
