// internal/handlers/racks.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// RackHandler handles rack endpoints
type RackHandler struct {
	responder
	service ports.RackService
}

// NewRackHandler creates a new rack handler
func NewRackHandler(service ports.RackService, logger *slog.Logger) *RackHandler {
	return &RackHandler{
		responder: responder{logger: logger.With(slog.String("handler", "racks"))},
		service:   service,
	}
}

// CreateRackRequest is the body for POST /api/v1/racks
type CreateRackRequest struct {
	Name       string    `json:"name"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	LocationID uuid.UUID `json:"location_id"`
}

// CreateRack handles POST /api/v1/racks. The slot grid is created with the
// rack and returned in the response.
func (h *RackHandler) CreateRack(w http.ResponseWriter, r *http.Request) {
	var req CreateRackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	grid, err := h.service.Create(r.Context(), &domain.Rack{
		Name:       req.Name,
		Rows:       req.Rows,
		Cols:       req.Cols,
		LocationID: req.LocationID,
	})
	if err != nil {
		h.respondServiceError(w, r, err, "create rack")
		return
	}
	h.respondJSON(w, http.StatusCreated, grid)
}

// GetRack handles GET /api/v1/racks/{id}
func (h *RackHandler) GetRack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "rack")
	if !ok {
		return
	}

	grid, err := h.service.Grid(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "get rack")
		return
	}
	h.respondJSON(w, http.StatusOK, grid)
}

// DeleteRack handles DELETE /api/v1/racks/{id}
func (h *RackHandler) DeleteRack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "rack")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "delete rack")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
