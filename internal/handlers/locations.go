// internal/handlers/locations.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// LocationHandler handles location endpoints
type LocationHandler struct {
	responder
	service ports.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service ports.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		responder: responder{logger: logger.With(slog.String("handler", "locations"))},
		service:   service,
	}
}

// LocationRequest is the body for creating or updating a location
type LocationRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *LocationRequest) ToDomain() *domain.Location {
	return &domain.Location{Name: r.Name, Notes: r.Notes}
}

// ListLocations handles GET /api/v1/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "list locations")
		return
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	h.respondJSON(w, http.StatusOK, locations)
}

// CreateLocation handles POST /api/v1/locations
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	location := req.ToDomain()
	if err := h.service.Create(r.Context(), location); err != nil {
		h.respondServiceError(w, r, err, "create location")
		return
	}
	h.respondJSON(w, http.StatusCreated, location)
}

// GetLocation handles GET /api/v1/locations/{id}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "location")
	if !ok {
		return
	}

	location, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "get location")
		return
	}
	h.respondJSON(w, http.StatusOK, location)
}

// UpdateLocation handles PUT /api/v1/locations/{id}
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "location")
	if !ok {
		return
	}
	var req LocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	location := req.ToDomain()
	if err := h.service.Update(r.Context(), id, location); err != nil {
		h.respondServiceError(w, r, err, "update location")
		return
	}
	h.respondJSON(w, http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/v1/locations/{id}
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "location")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "delete location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLocationRacks handles GET /api/v1/locations/{id}/racks
func (h *LocationHandler) ListLocationRacks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "location")
	if !ok {
		return
	}

	racks, err := h.service.ListRacks(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "list racks")
		return
	}
	if racks == nil {
		racks = []domain.Rack{}
	}
	h.respondJSON(w, http.StatusOK, racks)
}
