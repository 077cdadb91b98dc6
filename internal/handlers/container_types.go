// internal/handlers/container_types.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ContainerTypeHandler handles the container type catalog
type ContainerTypeHandler struct {
	responder
	service ports.ContainerTypeService
}

// NewContainerTypeHandler creates a new container type handler
func NewContainerTypeHandler(service ports.ContainerTypeService, logger *slog.Logger) *ContainerTypeHandler {
	return &ContainerTypeHandler{
		responder: responder{logger: logger.With(slog.String("handler", "container_types"))},
		service:   service,
	}
}

// ContainerTypeRequest is the body for creating or updating a container
// type. Capacity is always derived from the dimensions.
type ContainerTypeRequest struct {
	Name         string           `json:"name"`
	CodePrefix   string           `json:"code_prefix,omitempty"`
	Shape        string           `json:"shape,omitempty"`
	Length       *decimal.Decimal `json:"length,omitempty"`
	Width        *decimal.Decimal `json:"width,omitempty"`
	Height       *decimal.Decimal `json:"height,omitempty"`
	TopLength    *decimal.Decimal `json:"top_length,omitempty"`
	TopWidth     *decimal.Decimal `json:"top_width,omitempty"`
	BottomLength *decimal.Decimal `json:"bottom_length,omitempty"`
	BottomWidth  *decimal.Decimal `json:"bottom_width,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *ContainerTypeRequest) ToDomain() *domain.ContainerType {
	return &domain.ContainerType{
		Name:         r.Name,
		CodePrefix:   r.CodePrefix,
		Shape:        domain.ContainerShape(r.Shape),
		Length:       r.Length,
		Width:        r.Width,
		Height:       r.Height,
		TopLength:    r.TopLength,
		TopWidth:     r.TopWidth,
		BottomLength: r.BottomLength,
		BottomWidth:  r.BottomWidth,
		Notes:        r.Notes,
	}
}

// ListContainerTypes handles GET /api/v1/container-types
func (h *ContainerTypeHandler) ListContainerTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "list container types")
		return
	}
	if types == nil {
		types = []domain.ContainerType{}
	}
	h.respondJSON(w, http.StatusOK, types)
}

// CreateContainerType handles POST /api/v1/container-types
func (h *ContainerTypeHandler) CreateContainerType(w http.ResponseWriter, r *http.Request) {
	var req ContainerTypeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ct := req.ToDomain()
	if err := h.service.Create(r.Context(), ct); err != nil {
		h.respondServiceError(w, r, err, "create container type")
		return
	}
	h.respondJSON(w, http.StatusCreated, ct)
}

// GetContainerType handles GET /api/v1/container-types/{id}
func (h *ContainerTypeHandler) GetContainerType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container type")
	if !ok {
		return
	}

	ct, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "get container type")
		return
	}
	h.respondJSON(w, http.StatusOK, ct)
}

// UpdateContainerType handles PUT /api/v1/container-types/{id}
func (h *ContainerTypeHandler) UpdateContainerType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container type")
	if !ok {
		return
	}
	var req ContainerTypeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ct := req.ToDomain()
	if err := h.service.Update(r.Context(), id, ct); err != nil {
		h.respondServiceError(w, r, err, "update container type")
		return
	}
	h.respondJSON(w, http.StatusOK, ct)
}

// DeleteContainerType handles DELETE /api/v1/container-types/{id}. Containers
// of the type lose their type reference, so the caller must confirm.
func (h *ContainerTypeHandler) DeleteContainerType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container type")
	if !ok {
		return
	}
	if !queryBool(r, "confirm") {
		h.respondError(w, http.StatusBadRequest, "Deleting a container type requires confirm=true")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "delete container type")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
