// internal/handlers/items.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ItemHandler handles item and movement endpoints
type ItemHandler struct {
	responder
	service      ports.ItemService
	placement    ports.PlacementService
	maxPhotoSize int64
}

// NewItemHandler creates a new item handler. Photo uploads larger than
// maxPhotoSize bytes are rejected.
func NewItemHandler(service ports.ItemService, placement ports.PlacementService, maxPhotoSize int64, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		responder:    responder{logger: logger.With(slog.String("handler", "items"))},
		service:      service,
		placement:    placement,
		maxPhotoSize: maxPhotoSize,
	}
}

// ItemRequest is the body for creating or updating an item
type ItemRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Status      string           `json:"status,omitempty"`
	Category    string           `json:"category,omitempty"`
	Condition   string           `json:"condition,omitempty"`
	ContainerID *uuid.UUID       `json:"container_id,omitempty"`
	IsContainer bool             `json:"is_container,omitempty"`
	Quantity    int              `json:"quantity"`
	Tags        []string         `json:"tags,omitempty"`
	ISBN        string           `json:"isbn,omitempty"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	Volume      *decimal.Decimal `json:"volume,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *ItemRequest) ToDomain() *domain.Item {
	item := &domain.Item{
		Name:        r.Name,
		Description: r.Description,
		Notes:       r.Notes,
		Status:      domain.ItemStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		Category:    domain.ItemCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		ContainerID: r.ContainerID,
		IsContainer: r.IsContainer,
		Quantity:    r.Quantity,
		Tags:        r.Tags,
		ISBN:        strings.TrimSpace(r.ISBN),
		ExpiresAt:   r.ExpiresAt,
		Volume:      r.Volume,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if r.Condition != "" {
		item.Condition = domain.ParseCondition(r.Condition)
	}
	return item
}

// MovementRequest is the body of the check-out, check-in and move routes
type MovementRequest struct {
	ContainerID *uuid.UUID `json:"container_id,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// ListItems handles GET /api/v1/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ItemFilter{
		Status:   domain.ItemStatus(strings.ToUpper(strings.TrimSpace(q.Get("status")))),
		Category: domain.ItemCategory(strings.ToLower(strings.TrimSpace(q.Get("category")))),
		Tag:      strings.ToLower(strings.TrimSpace(q.Get("tag"))),
		Search:   strings.TrimSpace(q.Get("q")),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 50),
	}
	containerID, err := queryUUID(r, "container_id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, errInvalidParam("container_id").Error())
		return
	}
	filter.ContainerID = containerID
	filter.Normalize()

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err, "list items")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	item := req.ToDomain()
	if err := h.service.Create(r.Context(), item); err != nil {
		h.respondServiceError(w, r, err, "create item")
		return
	}
	h.respondJSON(w, http.StatusCreated, item)
}

// GetItem handles GET /api/v1/items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "get item")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}
	var req ItemRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	item := req.ToDomain()
	if err := h.service.Update(r.Context(), id, item); err != nil {
		h.respondServiceError(w, r, err, "update item")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/items/{id}. Without flags the item is
// discarded with a remove movement; permanent=true&confirm=true erases it.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}

	permanent := queryBool(r, "permanent")
	if permanent && !queryBool(r, "confirm") {
		h.respondError(w, http.StatusBadRequest, "Permanent deletion requires confirm=true")
		return
	}

	if err := h.service.Delete(r.Context(), id, permanent); err != nil {
		h.respondServiceError(w, r, err, "delete item")
		return
	}

	h.logger.InfoContext(r.Context(), "item deleted",
		slog.String("item_id", id.String()),
		slog.Bool("permanent", permanent))
	w.WriteHeader(http.StatusNoContent)
}

// CheckOut handles POST /api/v1/items/{id}/check-out
func (h *ItemHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}
	var req MovementRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	movement, err := h.service.CheckOut(r.Context(), id, req.Note)
	if err != nil {
		h.respondServiceError(w, r, err, "check out item")
		return
	}
	h.respondJSON(w, http.StatusOK, movement)
}

// CheckIn handles POST /api/v1/items/{id}/check-in. Without a container the
// item returns to where it was checked out from.
func (h *ItemHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}
	var req MovementRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	movement, err := h.service.CheckIn(r.Context(), id, req.ContainerID, req.Note)
	if err != nil {
		h.respondServiceError(w, r, err, "check in item")
		return
	}
	h.respondJSON(w, http.StatusOK, movement)
}

// Move handles POST /api/v1/items/{id}/move
func (h *ItemHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}
	var req MovementRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.ContainerID == nil {
		h.respondError(w, http.StatusBadRequest, "container_id is required")
		return
	}

	movement, err := h.service.Move(r.Context(), id, *req.ContainerID, req.Note)
	if err != nil {
		h.respondServiceError(w, r, err, "move item")
		return
	}
	h.respondJSON(w, http.StatusOK, movement)
}

// AssignItemSlot handles PUT /api/v1/items/{id}/slot for items acting as
// containers. The body is the same as for containers.
func (h *ItemHandler) AssignItemSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
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

	item, err := h.placement.AssignItemToSlot(r.Context(), id, req.SlotID)
	if err != nil {
		h.respondServiceError(w, r, err, "assign item slot")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// UnrackItem handles DELETE /api/v1/items/{id}/slot
func (h *ItemHandler) UnrackItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}

	item, err := h.placement.UnrackItem(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "unrack item")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// ListMovements handles GET /api/v1/items/{id}/movements
func (h *ItemHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}

	movements, err := h.service.History(r.Context(), id, queryInt(r, "limit", 0))
	if err != nil {
		h.respondServiceError(w, r, err, "list movements")
		return
	}
	if movements == nil {
		movements = []domain.Movement{}
	}
	h.respondJSON(w, http.StatusOK, movements)
}

// UploadPhoto handles POST /api/v1/items/{id}/photos (multipart field "photo")
func (h *ItemHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id", "item")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxPhotoSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Photo too large or malformed upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "No photo uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.respondError(w, http.StatusBadRequest, "Photo must be an image")
		return
	}

	photo, err := h.service.AddPhoto(r.Context(), id, header.Filename, contentType, file)
	if err != nil {
		h.respondServiceError(w, r, err, "upload photo")
		return
	}
	h.respondJSON(w, http.StatusCreated, photo)
}
