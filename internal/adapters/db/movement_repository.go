// internal/adapters/db/movement_repository.go
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

const movementColumns = `id, item_id, action, from_container_id, to_container_id, from_slot_id, to_slot_id,
	actor_id, note, created_at`

// movementRepository implements ports.MovementRepository. It only ever
// inserts; the table rejects updates and deletes.
type movementRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *Database, logger *slog.Logger) ports.MovementRepository {
	return &movementRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "movement")),
	}
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var m domain.Movement
	err := row.Scan(&m.ID, &m.ItemID, &m.Action, &m.FromContainerID, &m.ToContainerID,
		&m.FromSlotID, &m.ToSlotID, &m.ActorID, &m.Note, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Append records a movement
func (r *movementRepository) Append(ctx context.Context, m *domain.Movement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.ItemID, m.Action, m.FromContainerID, m.ToContainerID, m.FromSlotID, m.ToSlotID,
		m.ActorID, m.Note, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append movement: %w", err)
	}

	r.logger.DebugContext(ctx, "movement appended",
		slog.String("item_id", m.ItemID.String()),
		slog.String("action", string(m.Action)))
	return nil
}

// ListByItem returns the newest movements of an item first
func (r *movementRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.Movement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE item_id = $1 ORDER BY created_at DESC LIMIT $2`, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return ScanMany(rows, scanMovement)
}

// LastByItem returns the newest movement of the given action
func (r *movementRepository) LastByItem(ctx context.Context, itemID uuid.UUID, action domain.MovementAction) (*domain.Movement, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE item_id = $1 AND action = $2 ORDER BY created_at DESC LIMIT 1`, itemID, action)
	m, err := ScanOne(row, scanMovement)
	if err != nil {
		return nil, fmt.Errorf("failed to find last movement: %w", err)
	}
	return m, nil
}
