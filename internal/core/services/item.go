// internal/core/services/item.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/pkg/auth"
)

// ItemService handles items and their lifecycle. Every status or container
// change appends a movement in the same transaction as the item update.
type ItemService struct {
	tx          ports.TxManager
	items       ports.ItemRepository
	movements   ports.MovementRepository
	containers  ports.ContainerRepository
	slots       ports.SlotRepository
	photos      ports.PhotoStorage
	publisher   ports.MovementPublisher
	cache       ports.CacheInvalidator
	photoPrefix string
	logger      *slog.Logger
}

var _ ports.ItemService = (*ItemService)(nil)

// NewItemService creates a new item service. Photos are stored under
// photoPrefix.
func NewItemService(
	tx ports.TxManager,
	repos Repositories,
	photos ports.PhotoStorage,
	publisher ports.MovementPublisher,
	cache ports.CacheInvalidator,
	photoPrefix string,
	logger *slog.Logger,
) *ItemService {
	return &ItemService{
		tx:          tx,
		items:       repos.Items,
		movements:   repos.Movements,
		containers:  repos.Containers,
		slots:       repos.Slots,
		photos:      photos,
		publisher:   publisher,
		cache:       cache,
		photoPrefix: strings.Trim(photoPrefix, "/"),
		logger:      logger.With(slog.String("service", "item")),
	}
}

func (s *ItemService) requireContainer(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	c, err := s.containers.FindByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("failed to get container: %w", err)
	}
	if c == nil {
		return notFound("container", *id)
	}
	return nil
}

// Create stores a new item. Container-items are racked afterwards through
// the placement service.
func (s *ItemService) Create(ctx context.Context, item *domain.Item) error {
	item.CurrentSlotID = nil
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.requireContainer(ctx, item.ContainerID); err != nil {
		return err
	}
	item.PrepareForStorage()

	if err := s.items.Save(ctx, item); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "item created",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name))
	s.cache.InvalidateInventory(ctx)
	return nil
}

// Get returns an item with its photos
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.items.ListPhotos(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list item photos: %w", err)
	}
	item.Photos = photos
	return item, nil
}

func (s *ItemService) find(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, notFound("item", id)
	}
	return item, nil
}

// Update changes the descriptive fields of an item. Status and container
// only change through the lifecycle operations.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, item *domain.Item) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	item.ID = existing.ID
	item.Status = existing.Status
	item.ContainerID = existing.ContainerID
	item.CurrentSlotID = existing.CurrentSlotID
	item.CreatedAt = existing.CreatedAt
	if err := item.Validate(); err != nil {
		return err
	}
	item.UpdatedAt = time.Now()

	if err := s.items.Update(ctx, item); err != nil {
		return err
	}
	s.cache.InvalidateInventory(ctx)
	return nil
}

// List returns one page of items
func (s *ItemService) List(ctx context.Context, filter domain.ItemFilter) (*ports.ListResult[domain.Item], error) {
	filter.Normalize()
	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return ports.NewListResult(items, filter.Page, filter.PageSize, total), nil
}

// Delete discards the item with a remove movement, or erases the row when
// permanent is set. Movement history survives either way.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	if !permanent {
		_, err := s.transition(ctx, id, domain.ActionRemove, nil, "", nil)
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "item deleted permanently", slog.String("item_id", id.String()))
	s.cache.InvalidateInventory(ctx)
	return nil
}

// CheckOut takes the item out of its container
func (s *ItemService) CheckOut(ctx context.Context, id uuid.UUID, note string) (*domain.Movement, error) {
	return s.transition(ctx, id, domain.ActionCheckOut, nil, note, nil)
}

// CheckIn returns the item to containerID. Without a container the item
// goes back to the container it was last checked out of.
func (s *ItemService) CheckIn(ctx context.Context, id uuid.UUID, containerID *uuid.UUID, note string) (*domain.Movement, error) {
	return s.transition(ctx, id, domain.ActionCheckIn, containerID, note, s.lastCheckedOutOf)
}

// Move puts the item into another container
func (s *ItemService) Move(ctx context.Context, id uuid.UUID, containerID uuid.UUID, note string) (*domain.Movement, error) {
	return s.transition(ctx, id, domain.ActionMove, &containerID, note, nil)
}

func (s *ItemService) lastCheckedOutOf(ctx context.Context, item *domain.Item) (*uuid.UUID, error) {
	if item.IsContainer {
		return nil, nil
	}
	last, err := s.movements.LastByItem(ctx, item.ID, domain.ActionCheckOut)
	if err != nil {
		return nil, fmt.Errorf("failed to find last check-out: %w", err)
	}
	if last == nil {
		return nil, nil
	}
	return last.FromContainerID, nil
}

type targetResolver func(ctx context.Context, item *domain.Item) (*uuid.UUID, error)

// transition applies action to the locked item, writes the item and its
// movement in one transaction, then announces the movement.
func (s *ItemService) transition(ctx context.Context, id uuid.UUID, action domain.MovementAction, to *uuid.UUID, note string, resolve targetResolver) (*domain.Movement, error) {
	var (
		movement domain.Movement
		itemName string
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		item, err := s.items.LockByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to lock item: %w", err)
		}
		if item == nil {
			return notFound("item", id)
		}

		if to == nil && resolve != nil {
			if to, err = resolve(ctx, item); err != nil {
				return err
			}
		}
		if err := s.requireContainer(ctx, to); err != nil {
			return err
		}

		movement, err = item.Transition(action, to)
		if err != nil {
			return err
		}
		movement.ActorID = auth.ActorID(ctx)
		movement.Note = strings.TrimSpace(note)

		if err := s.items.Update(ctx, item); err != nil {
			return err
		}
		if movement.FromSlotID != nil {
			if err := s.leaveSlot(ctx, item.ID, *movement.FromSlotID); err != nil {
				return err
			}
		}
		if err := s.movements.Append(ctx, &movement); err != nil {
			return err
		}
		itemName = item.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item movement recorded",
		slog.String("item_id", id.String()),
		slog.String("action", string(action)),
		slog.String("movement_id", movement.ID.String()))

	if err := s.publisher.PublishMovement(ctx, domain.MovementEvent{Movement: movement, ItemName: itemName}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish movement",
			slog.String("movement_id", movement.ID.String()),
			slog.String("error", err.Error()))
	}
	s.cache.InvalidateInventory(ctx)
	return &movement, nil
}

// leaveSlot frees the slot a container-item occupied when it is checked out
// or discarded
func (s *ItemService) leaveSlot(ctx context.Context, itemID, slotID uuid.UUID) error {
	err := s.slots.ReleaseForItem(ctx, slotID, itemID)
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		return err
	}
	return s.items.UpdateSlot(ctx, itemID, nil)
}

// History returns the item's movements, newest first
func (s *ItemService) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.Movement, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}
	movements, err := s.movements.ListByItem(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

// AddPhoto uploads a photo to object storage and attaches it to the item.
// The upload is removed again when the photo row cannot be written.
func (s *ItemService) AddPhoto(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.ItemPhoto, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	photo := &domain.ItemPhoto{
		ID:        uuid.New(),
		ItemID:    id,
		CreatedAt: time.Now(),
	}
	ext := strings.ToLower(path.Ext(filename))
	photo.StorageKey = path.Join(s.photoPrefix, id.String(), photo.ID.String()+ext)

	url, err := s.photos.Upload(ctx, photo.StorageKey, body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}
	photo.URL = url

	if err := s.items.SavePhoto(ctx, photo); err != nil {
		if delErr := s.photos.Delete(ctx, photo.StorageKey); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned photo",
				slog.String("key", photo.StorageKey),
				slog.String("error", delErr.Error()))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "item photo added",
		slog.String("item_id", id.String()),
		slog.String("key", photo.StorageKey))
	return photo, nil
}
