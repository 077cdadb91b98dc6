// internal/adapters/db/slot_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

const slotColumns = `id, rack_id, row_index, col_index, container_id, item_id, version`

// slotRepository implements ports.SlotRepository
type slotRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *Database, logger *slog.Logger) ports.SlotRepository {
	return &slotRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "slot")),
	}
}

func scanSlot(row pgx.Row) (*domain.Slot, error) {
	var s domain.Slot
	if err := row.Scan(&s.ID, &s.RackID, &s.Row, &s.Col, &s.ContainerID, &s.ItemID, &s.Version); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveBatch copies a rack's slot set in one round trip
func (r *slotRepository) SaveBatch(ctx context.Context, slots []domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"slots"},
		[]string{"id", "rack_id", "row_index", "col_index"},
		pgx.CopyFromSlice(len(slots), func(i int) ([]any, error) {
			return []any{slots[i].ID, slots[i].RackID, slots[i].Row, slots[i].Col}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to save slots: %w", mapPgError(err, "slot"))
	}

	r.logger.DebugContext(ctx, "slots saved", slog.Int64("count", n))
	return nil
}

// FindByID retrieves a slot by ID
func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)
	s, err := ScanOne(row, scanSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to find slot: %w", err)
	}
	return s, nil
}

// ListByRack returns a rack's slots in row-major order
func (r *slotRepository) ListByRack(ctx context.Context, rackID uuid.UUID) ([]domain.Slot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+slotColumns+` FROM slots WHERE rack_id = $1 ORDER BY row_index, col_index`, rackID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return ScanMany(rows, scanSlot)
}

// CountOccupied counts the slots of a rack holding a container or a
// container-item
func (r *slotRepository) CountOccupied(ctx context.Context, rackID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM slots WHERE rack_id = $1 AND (container_id IS NOT NULL OR item_id IS NOT NULL)`, rackID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count occupied slots: %w", err)
	}
	return n, nil
}

// Claim points an empty slot at containerID. A slot already holding that
// container is left untouched; a slot held by anything else yields
// ErrConflict.
func (r *slotRepository) Claim(ctx context.Context, slotID, containerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET container_id = $1, version = version + 1
		WHERE id = $2 AND container_id IS NULL AND item_id IS NULL`,
		containerID, slotID)
	if err != nil {
		return fmt.Errorf("failed to claim slot: %w", mapPgError(err, "slot occupant"))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.checkHeld(ctx, slotID, func(s *domain.Slot) bool {
		return s.ContainerID != nil && *s.ContainerID == containerID
	})
}

// ClaimForItem points an empty slot at a container-item, with the same
// rules as Claim.
func (r *slotRepository) ClaimForItem(ctx context.Context, slotID, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET item_id = $1, version = version + 1
		WHERE id = $2 AND container_id IS NULL AND item_id IS NULL`,
		itemID, slotID)
	if err != nil {
		return fmt.Errorf("failed to claim slot: %w", mapPgError(err, "slot occupant"))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.checkHeld(ctx, slotID, func(s *domain.Slot) bool {
		return s.ItemID != nil && *s.ItemID == itemID
	})
}

// checkHeld explains a claim that changed no row: missing slot, already
// ours, or taken.
func (r *slotRepository) checkHeld(ctx context.Context, slotID uuid.UUID, ours func(*domain.Slot) bool) error {
	slot, err := r.FindByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("failed to check slot: %w", err)
	}
	if slot == nil {
		return notFound("slot", slotID)
	}
	if ours(slot) {
		return nil
	}
	return fmt.Errorf("%w: slot %s is already occupied", domain.ErrConflict, slot.Label())
}

// Release empties the slot if it still holds containerID
func (r *slotRepository) Release(ctx context.Context, slotID, containerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET container_id = NULL, version = version + 1
		WHERE id = $1 AND container_id = $2`,
		slotID, containerID)
	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: slot %s is not held by container %s", domain.ErrConflict, slotID, containerID)
	}
	return nil
}

// ReleaseForItem empties the slot if it still holds itemID
func (r *slotRepository) ReleaseForItem(ctx context.Context, slotID, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET item_id = NULL, version = version + 1
		WHERE id = $1 AND item_id = $2`,
		slotID, itemID)
	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: slot %s is not held by item %s", domain.ErrConflict, slotID, itemID)
	}
	return nil
}
