package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		log.Warn("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(msg, "error", err)
		http.Error(w, msg, status)
		return
	}
	log.Debug(msg, "error", err, "status", status)
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cribbage.ErrPlayerNotFound),
		errors.Is(err, cribbage.ErrBoardNotFound),
		errors.Is(err, cribbage.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, cribbage.ErrPlayerHasGames):
		return http.StatusConflict
	case errors.Is(err, cribbage.ErrMissingPlayer),
		errors.Is(err, cribbage.ErrSamePlayer),
		errors.Is(err, cribbage.ErrInvalidScore),
		errors.Is(err, cribbage.ErrMissingDate),
		errors.Is(err, cribbage.ErrMissingName),
		errors.Is(err, cribbage.ErrMissingNumeral):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// optionalBool parses a tri-state query parameter. Empty means no filter.
func optionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
