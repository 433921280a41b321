// Package api implements the HTTP handlers for the board service.
//
// All authenticated routes expect x-user-id and x-user-role headers forwarded
// by the Gateway; the handlers trust that identity without re-validating
// credentials.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"nichenest/board-service/internal/model"
)

func jsonOK(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

func jsonCreated(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusCreated, v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// serviceError maps domain errors onto HTTP status codes.
func serviceError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	switch {
	case errors.Is(err, model.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrDuplicateApplication),
		errors.Is(err, model.ErrMissingResume):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &ve):
		jsonError(w, ve.Msg, http.StatusBadRequest)
	default:
		log.Printf("[api] internal error: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}

// identity extracts the Gateway-forwarded caller identity. It writes the
// error response itself when either header is missing or malformed.
func identity(w http.ResponseWriter, r *http.Request) (string, model.Role, bool) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return "", "", false
	}
	role, err := model.ParseRole(r.Header.Get("x-user-role"))
	if err != nil {
		jsonError(w, "missing or invalid x-user-role header", http.StatusUnauthorized)
		return "", "", false
	}
	return userID, role, true
}
