// internal/core/services/rack.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// RackService handles racks and their slot grids
type RackService struct {
	tx     ports.TxManager
	repos  Repositories
	logger *slog.Logger
}

var _ ports.RackService = (*RackService)(nil)

// NewRackService creates a new rack service
func NewRackService(tx ports.TxManager, repos Repositories, logger *slog.Logger) *RackService {
	return &RackService{
		tx:     tx,
		repos:  repos,
		logger: logger.With(slog.String("service", "rack")),
	}
}

// Create stores the rack and its full rows x cols slot set in one
// transaction
func (s *RackService) Create(ctx context.Context, rack *domain.Rack) (*domain.RackGrid, error) {
	if err := rack.Validate(); err != nil {
		return nil, err
	}

	location, err := s.repos.Locations.FindByID(ctx, rack.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("%w: location %s does not exist", domain.ErrValidation, rack.LocationID)
	}

	rack.PrepareForStorage()
	slots := rack.BuildSlots()

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Racks.Save(ctx, rack); err != nil {
			return err
		}
		return s.repos.Slots.SaveBatch(ctx, slots)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "rack created",
		slog.String("rack_id", rack.ID.String()),
		slog.String("name", rack.Name),
		slog.Int("slots", len(slots)))

	return buildGrid(rack, location, slots, occupants{}), nil
}

// Grid returns the rack with every slot and its occupant
func (s *RackService) Grid(ctx context.Context, id uuid.UUID) (*domain.RackGrid, error) {
	rack, err := s.repos.Racks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rack: %w", err)
	}
	if rack == nil {
		return nil, notFound("rack", id)
	}

	location, err := s.repos.Locations.FindByID(ctx, rack.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	slots, err := s.repos.Slots.ListByRack(ctx, rack.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	var containerIDs, itemIDs []uuid.UUID
	for _, slot := range slots {
		if slot.ContainerID != nil {
			containerIDs = append(containerIDs, *slot.ContainerID)
		}
		if slot.ItemID != nil {
			itemIDs = append(itemIDs, *slot.ItemID)
		}
	}

	occ := occupants{
		containers: make(map[uuid.UUID]domain.ContainerSummary, len(containerIDs)),
		items:      make(map[uuid.UUID]domain.ItemSummary, len(itemIDs)),
	}
	if len(containerIDs) > 0 {
		containers, err := s.repos.Containers.ListByIDs(ctx, containerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load slot occupants: %w", err)
		}
		for i := range containers {
			occ.containers[containers[i].ID] = containers[i].Summary()
		}
	}
	if len(itemIDs) > 0 {
		items, err := s.repos.Items.ListByIDs(ctx, itemIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load slot occupants: %w", err)
		}
		for i := range items {
			occ.items[items[i].ID] = domain.ItemSummary{ID: items[i].ID, Name: items[i].Name}
		}
	}

	return buildGrid(rack, location, slots, occ), nil
}

type occupants struct {
	containers map[uuid.UUID]domain.ContainerSummary
	items      map[uuid.UUID]domain.ItemSummary
}

func buildGrid(rack *domain.Rack, location *domain.Location, slots []domain.Slot, occ occupants) *domain.RackGrid {
	grid := &domain.RackGrid{
		Rack:     *rack,
		Location: location,
		Cells:    make([]domain.GridCell, 0, len(slots)),
	}
	for _, slot := range slots {
		cell := domain.GridCell{Slot: slot}
		if slot.ContainerID != nil {
			if summary, ok := occ.containers[*slot.ContainerID]; ok {
				cell.Container = &summary
			}
		}
		if slot.ItemID != nil {
			if summary, ok := occ.items[*slot.ItemID]; ok {
				cell.Item = &summary
			}
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}

// Delete removes an empty rack with its slots. A rack with any occupied
// slot is refused with ErrConflict.
func (s *RackService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rack, err := s.repos.Racks.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get rack: %w", err)
		}
		if rack == nil {
			return notFound("rack", id)
		}

		occupied, err := s.repos.Slots.CountOccupied(ctx, id)
		if err != nil {
			return err
		}
		if occupied > 0 {
			return fmt.Errorf("%w: rack %s still has %d occupied slots", domain.ErrConflict, rack.Name, occupied)
		}

		if err := s.repos.Racks.Delete(ctx, id); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "rack deleted", slog.String("rack_id", id.String()))
		return nil
	})
}
