// internal/core/services/placement.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/pkg/auth"
)

// PlacementService is the only writer of slot occupancy. Every change runs
// in one transaction that locks the occupant row, arbitrates the slot with
// a compare-and-swap claim and rewrites the occupant's placement.
type PlacementService struct {
	tx         ports.TxManager
	containers ports.ContainerRepository
	slots      ports.SlotRepository
	items      ports.ItemRepository
	movements  ports.MovementRepository
	cache      ports.CacheInvalidator
	logger     *slog.Logger
}

var _ ports.PlacementService = (*PlacementService)(nil)

// NewPlacementService creates a new placement service
func NewPlacementService(tx ports.TxManager, repos Repositories, cache ports.CacheInvalidator, logger *slog.Logger) *PlacementService {
	return &PlacementService{
		tx:         tx,
		containers: repos.Containers,
		slots:      repos.Slots,
		items:      repos.Items,
		movements:  repos.Movements,
		cache:      cache,
		logger:     logger.With(slog.String("service", "placement")),
	}
}

func (s *PlacementService) lock(ctx context.Context, id uuid.UUID) (*domain.Container, error) {
	c, err := s.containers.LockByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock container: %w", err)
	}
	if c == nil {
		return nil, notFound("container", id)
	}
	return c, nil
}

// releaseSlot empties the slot c occupies. A slot that no longer points at c
// is left alone.
func (s *PlacementService) releaseSlot(ctx context.Context, c *domain.Container) error {
	slotID, ok := c.Placement.SlotID()
	if !ok {
		return nil
	}
	err := s.slots.Release(ctx, slotID, c.ID)
	if errors.Is(err, domain.ErrConflict) {
		s.logger.WarnContext(ctx, "slot no longer held by container",
			slog.String("container_id", c.ID.String()),
			slog.String("slot_id", slotID.String()))
		return nil
	}
	return err
}

func (s *PlacementService) place(ctx context.Context, c *domain.Container, p domain.Placement) error {
	if err := s.containers.UpdatePlacement(ctx, c.ID, p); err != nil {
		return err
	}
	c.Placement = p
	return nil
}

// Apply moves the container to p. It must run inside the caller's
// transaction; logging and cache invalidation are left to the caller.
func (s *PlacementService) Apply(ctx context.Context, containerID uuid.UUID, p domain.Placement) (*domain.Container, error) {
	if slotID, ok := p.SlotID(); ok {
		return s.rack(ctx, containerID, slotID)
	}
	if parentID, ok := p.ParentID(); ok {
		return s.nest(ctx, containerID, parentID)
	}
	return s.unplace(ctx, containerID)
}

func (s *PlacementService) rack(ctx context.Context, containerID, slotID uuid.UUID) (*domain.Container, error) {
	c, err := s.lock(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if current, ok := c.Placement.SlotID(); ok && current == slotID {
		return c, nil
	}
	if err := s.slots.Claim(ctx, slotID, c.ID); err != nil {
		return nil, err
	}
	if err := s.releaseSlot(ctx, c); err != nil {
		return nil, err
	}
	if err := s.place(ctx, c, domain.RackedIn(slotID)); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PlacementService) nest(ctx context.Context, containerID, parentID uuid.UUID) (*domain.Container, error) {
	if parentID == containerID {
		return nil, fmt.Errorf("%w: container cannot be nested in itself", domain.ErrValidation)
	}
	if err := s.containers.LockNesting(ctx); err != nil {
		return nil, err
	}

	c, err := s.lock(ctx, containerID)
	if err != nil {
		return nil, err
	}
	parent, err := s.containers.FindByID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parent container: %w", err)
	}
	if parent == nil {
		return nil, notFound("parent container", parentID)
	}

	ancestors, err := s.containers.Ancestors(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent chain: %w", err)
	}
	for _, id := range ancestors {
		if id == c.ID {
			return nil, fmt.Errorf("%w: nesting %s in %s would create a cycle", domain.ErrValidation, c.Code, parent.Code)
		}
	}

	if current, ok := c.Placement.ParentID(); ok && current == parent.ID {
		return c, nil
	}
	if err := s.releaseSlot(ctx, c); err != nil {
		return nil, err
	}
	if err := s.place(ctx, c, domain.NestedIn(parent.ID)); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PlacementService) unplace(ctx context.Context, containerID uuid.UUID) (*domain.Container, error) {
	c, err := s.lock(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if c.Placement.Kind() == domain.PlacementUnplaced {
		return c, nil
	}
	if err := s.releaseSlot(ctx, c); err != nil {
		return nil, err
	}
	if err := s.place(ctx, c, domain.Unplaced()); err != nil {
		return nil, err
	}
	return c, nil
}

// commit applies p in its own transaction, then logs and invalidates
func (s *PlacementService) commit(ctx context.Context, containerID uuid.UUID, p domain.Placement) (*domain.Container, error) {
	var placed *domain.Container
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		placed, err = s.Apply(ctx, containerID, p)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "container placed",
		slog.String("container_id", placed.ID.String()),
		slog.String("code", placed.Code),
		slog.String("placement", placed.Placement.String()))
	s.cache.InvalidateInventory(ctx, placed.Code)
	return placed, nil
}

// AssignToSlot racks the container in slotID, releasing any slot it held
// and clearing any parent. Assigning the slot it already holds succeeds
// without writing. A slot held by anything else yields ErrConflict.
func (s *PlacementService) AssignToSlot(ctx context.Context, containerID, slotID uuid.UUID) (*domain.Container, error) {
	return s.commit(ctx, containerID, domain.RackedIn(slotID))
}

// AssignToParent nests the container inside parentID, releasing any slot it
// held. A nil parent leaves the container unplaced. Self nesting and cycles
// are rejected; parent changes are serialized so two opposite nestings
// cannot both pass the cycle check.
func (s *PlacementService) AssignToParent(ctx context.Context, containerID uuid.UUID, parentID *uuid.UUID) (*domain.Container, error) {
	if parentID == nil {
		return s.Unplace(ctx, containerID)
	}
	if *parentID == containerID {
		return nil, fmt.Errorf("%w: container cannot be nested in itself", domain.ErrValidation)
	}
	return s.commit(ctx, containerID, domain.NestedIn(*parentID))
}

// Unplace releases any slot and clears any parent
func (s *PlacementService) Unplace(ctx context.Context, containerID uuid.UUID) (*domain.Container, error) {
	return s.commit(ctx, containerID, domain.Unplaced())
}

// DeleteContainer releases the container's slot, leaves nested containers
// unplaced and items loose with a move movement each, then removes the
// container.
func (s *PlacementService) DeleteContainer(ctx context.Context, containerID uuid.UUID) error {
	var codes []string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.lock(ctx, containerID)
		if err != nil {
			return err
		}
		if err := s.releaseSlot(ctx, c); err != nil {
			return err
		}

		children, err := s.containers.ListChildren(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("failed to list nested containers: %w", err)
		}
		codes = append(codes, c.Code)
		for _, child := range children {
			codes = append(codes, child.Code)
		}

		if _, err := s.containers.DetachChildren(ctx, c.ID); err != nil {
			return fmt.Errorf("failed to detach nested containers: %w", err)
		}
		loose, err := s.items.DetachFromContainer(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("failed to detach items: %w", err)
		}
		actor := auth.ActorID(ctx)
		for i := range loose {
			movement := loose[i].Loosen(c.ID)
			movement.ActorID = actor
			movement.Note = "container " + c.Code + " deleted"
			if err := s.movements.Append(ctx, &movement); err != nil {
				return err
			}
		}
		if err := s.containers.Delete(ctx, c.ID); err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "container deleted",
			slog.String("container_id", c.ID.String()),
			slog.String("code", c.Code),
			slog.Int("children_unplaced", len(children)),
			slog.Int("items_loosened", len(loose)))
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateInventory(ctx, codes...)
	return nil
}

// AssignItemToSlot racks a container-item in slotID under the same
// arbitration as containers, recording a move movement. Assigning the slot
// it already holds succeeds without writing.
func (s *PlacementService) AssignItemToSlot(ctx context.Context, itemID, slotID uuid.UUID) (*domain.Item, error) {
	return s.rackItem(ctx, itemID, &slotID)
}

// UnrackItem takes a container-item off its rack
func (s *PlacementService) UnrackItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	return s.rackItem(ctx, itemID, nil)
}

func (s *PlacementService) rackItem(ctx context.Context, itemID uuid.UUID, slotID *uuid.UUID) (*domain.Item, error) {
	var (
		item    *domain.Item
		changed bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.items.LockByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("failed to lock item: %w", err)
		}
		if item == nil {
			return notFound("item", itemID)
		}
		if sameSlot(item.CurrentSlotID, slotID) {
			return nil
		}

		from := item.CurrentSlotID
		movement, err := item.Rack(slotID)
		if err != nil {
			return err
		}
		if slotID != nil {
			if err := s.slots.ClaimForItem(ctx, *slotID, item.ID); err != nil {
				return err
			}
		}
		if from != nil {
			err := s.slots.ReleaseForItem(ctx, *from, item.ID)
			if err != nil && !errors.Is(err, domain.ErrConflict) {
				return err
			}
		}
		if err := s.items.UpdateSlot(ctx, item.ID, item.CurrentSlotID); err != nil {
			return err
		}

		movement.ActorID = auth.ActorID(ctx)
		if err := s.movements.Append(ctx, &movement); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		slot := "none"
		if item.CurrentSlotID != nil {
			slot = item.CurrentSlotID.String()
		}
		s.logger.InfoContext(ctx, "item placed",
			slog.String("item_id", item.ID.String()),
			slog.String("slot_id", slot))
		s.cache.InvalidateInventory(ctx)
	}
	return item, nil
}

func sameSlot(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
