// internal/handlers/common.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

// responder carries the JSON response helpers shared by every handler
type responder struct {
	logger *slog.Logger
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain sentinels onto status codes. Anything
// unrecognized is logged and reported as a 500 without detail.
func (h responder) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		h.respondError(w, http.StatusForbidden, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Failed to "+action,
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// decodeJSON reads a bounded JSON body into dest, reporting a 400 on failure
func (h responder) decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathUUID parses a path value, reporting a 400 naming the resource on failure
func (h responder) pathUUID(w http.ResponseWriter, r *http.Request, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid "+resource+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional query parameter
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil {
		return v
	}
	return fallback
}

func queryBool(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func errInvalidParam(name string) error {
	return fmt.Errorf("Invalid %s", name)
}
