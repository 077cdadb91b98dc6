// internal/adapters/db/rack_repository.go
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

const rackColumns = `id, name, num_rows, num_cols, location_id, created_at, updated_at`

// rackRepository implements ports.RackRepository
type rackRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewRackRepository creates a new rack repository
func NewRackRepository(db *Database, logger *slog.Logger) ports.RackRepository {
	return &rackRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "rack")),
	}
}

func scanRack(row pgx.Row) (*domain.Rack, error) {
	var r domain.Rack
	if err := row.Scan(&r.ID, &r.Name, &r.Rows, &r.Cols, &r.LocationID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save creates a new rack
func (r *rackRepository) Save(ctx context.Context, rack *domain.Rack) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO racks (id, name, num_rows, num_cols, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rack.ID, rack.Name, rack.Rows, rack.Cols, rack.LocationID, rack.CreatedAt, rack.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save rack: %w", mapPgError(err, "rack "+rack.Name))
	}
	return nil
}

// FindByID retrieves a rack by ID
func (r *rackRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rack, error) {
	row := r.db.QueryRow(ctx, `SELECT `+rackColumns+` FROM racks WHERE id = $1`, id)
	rack, err := ScanOne(row, scanRack)
	if err != nil {
		return nil, fmt.Errorf("failed to find rack: %w", err)
	}
	return rack, nil
}

// ListByLocation returns the racks of a location
func (r *rackRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]domain.Rack, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rackColumns+` FROM racks WHERE location_id = $1 ORDER BY name`, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list racks: %w", err)
	}
	return ScanMany(rows, scanRack)
}

// Delete removes a rack together with its slots
func (r *rackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM racks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rack: %w", mapPgError(err, "rack"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("rack", id)
	}
	return nil
}
