// internal/handlers/containers.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ContainerHandler handles container and placement endpoints
type ContainerHandler struct {
	responder
	service   ports.ContainerService
	placement ports.PlacementService
}

// NewContainerHandler creates a new container handler
func NewContainerHandler(service ports.ContainerService, placement ports.PlacementService, logger *slog.Logger) *ContainerHandler {
	return &ContainerHandler{
		responder: responder{logger: logger.With(slog.String("handler", "containers"))},
		service:   service,
		placement: placement,
	}
}

// CreateContainerRequest is the body for POST /api/v1/containers. The code
// is derived from the label when omitted. At most one of slot_id and
// parent_container_id may be set.
type CreateContainerRequest struct {
	Code              string     `json:"code,omitempty"`
	Label             string     `json:"label"`
	Description       string     `json:"description,omitempty"`
	Status            string     `json:"status,omitempty"`
	ContainerTypeID   *uuid.UUID `json:"container_type_id,omitempty"`
	SlotID            *uuid.UUID `json:"slot_id,omitempty"`
	ParentContainerID *uuid.UUID `json:"parent_container_id,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *CreateContainerRequest) ToDomain() (*domain.Container, error) {
	placement, err := domain.PlacementFromColumns(r.SlotID, r.ParentContainerID)
	if err != nil {
		return nil, err
	}
	return &domain.Container{
		Code:            r.Code,
		Label:           r.Label,
		Description:     r.Description,
		Status:          domain.ContainerStatus(r.Status),
		ContainerTypeID: r.ContainerTypeID,
		Placement:       placement,
	}, nil
}

// UpdateContainerRequest is the body for PUT /api/v1/containers/{id}. A
// code, when present, must match the stored one.
type UpdateContainerRequest struct {
	Code            string     `json:"code,omitempty"`
	Label           string     `json:"label"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status,omitempty"`
	ContainerTypeID *uuid.UUID `json:"container_type_id,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *UpdateContainerRequest) ToDomain() *domain.Container {
	return &domain.Container{
		Code:            r.Code,
		Label:           r.Label,
		Description:     r.Description,
		Status:          domain.ContainerStatus(r.Status),
		ContainerTypeID: r.ContainerTypeID,
	}
}

// ListContainers handles GET /api/v1/containers
func (h *ContainerHandler) ListContainers(w http.ResponseWriter, r *http.Request) {
	filter, err := parseContainerFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err, "list containers")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func parseContainerFilter(r *http.Request) (domain.ContainerFilter, error) {
	q := r.URL.Query()
	filter := domain.ContainerFilter{
		Status:   domain.ContainerStatus(strings.TrimSpace(q.Get("status"))),
		Unplaced: queryBool(r, "unplaced"),
		Search:   strings.TrimSpace(q.Get("q")),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 50),
	}

	typeID, err := queryUUID(r, "container_type_id")
	if err != nil {
		return filter, errInvalidParam("container_type_id")
	}
	filter.ContainerTypeID = typeID

	locationID, err := queryUUID(r, "location_id")
	if err != nil {
		return filter, errInvalidParam("location_id")
	}
	filter.LocationID = locationID

	filter.Normalize()
	return filter, nil
}

// CreateContainer handles POST /api/v1/containers
func (h *ContainerHandler) CreateContainer(w http.ResponseWriter, r *http.Request) {
	var req CreateContainerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	container, err := req.ToDomain()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "A container is either racked in a slot or nested in a parent, not both")
		return
	}
	if err := h.service.Create(r.Context(), container); err != nil {
		h.respondServiceError(w, r, err, "create container")
		return
	}

	h.logger.InfoContext(r.Context(), "container created",
		slog.String("code", container.Code),
		slog.String("placement", container.Placement.String()))
	h.respondJSON(w, http.StatusCreated, container)
}

// GetContainer handles GET /api/v1/containers/{id}
func (h *ContainerHandler) GetContainer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "get container")
		return
	}
	h.respondJSON(w, http.StatusOK, detail)
}

// UpdateContainer handles PUT /api/v1/containers/{id}
func (h *ContainerHandler) UpdateContainer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}
	var req UpdateContainerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	container := req.ToDomain()
	if err := h.service.Update(r.Context(), id, container); err != nil {
		h.respondServiceError(w, r, err, "update container")
		return
	}
	h.respondJSON(w, http.StatusOK, container)
}

// DeleteContainer handles DELETE /api/v1/containers/{id}. The slot is freed,
// children become unplaced and items are detached.
func (h *ContainerHandler) DeleteContainer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}

	if err := h.placement.DeleteContainer(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "delete container")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignSlotRequest is the body for PUT /api/v1/containers/{id}/slot
type AssignSlotRequest struct {
	SlotID uuid.UUID `json:"slot_id"`
}

// AssignSlot handles PUT /api/v1/containers/{id}/slot
func (h *ContainerHandler) AssignSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}
	var req AssignSlotRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.SlotID == uuid.Nil {
		h.respondError(w, http.StatusBadRequest, "slot_id is required")
		return
	}

	container, err := h.placement.AssignToSlot(r.Context(), id, req.SlotID)
	if err != nil {
		h.respondServiceError(w, r, err, "assign slot")
		return
	}
	h.respondJSON(w, http.StatusOK, container)
}

// AssignParentRequest is the body for PUT /api/v1/containers/{id}/parent. A
// null parent unplaces the container.
type AssignParentRequest struct {
	ParentContainerID *uuid.UUID `json:"parent_container_id"`
}

// AssignParent handles PUT /api/v1/containers/{id}/parent
func (h *ContainerHandler) AssignParent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}
	var req AssignParentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	container, err := h.placement.AssignToParent(r.Context(), id, req.ParentContainerID)
	if err != nil {
		h.respondServiceError(w, r, err, "assign parent")
		return
	}
	h.respondJSON(w, http.StatusOK, container)
}

// Unplace handles DELETE /api/v1/containers/{id}/placement
func (h *ContainerHandler) Unplace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}

	container, err := h.placement.Unplace(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "unplace container")
		return
	}
	h.respondJSON(w, http.StatusOK, container)
}

// GetFill handles GET /api/v1/containers/{id}/fill
func (h *ContainerHandler) GetFill(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "container")
	if !ok {
		return
	}

	report, err := h.service.Fill(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "compute fill")
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}
