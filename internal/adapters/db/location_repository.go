// internal/adapters/db/location_repository.go
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

const locationColumns = `id, name, notes, created_at, updated_at`

// locationRepository implements ports.LocationRepository
type locationRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *Database, logger *slog.Logger) ports.LocationRepository {
	return &locationRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "location")),
	}
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	if err := row.Scan(&l.ID, &l.Name, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// Save creates a new location
func (r *locationRepository) Save(ctx context.Context, l *domain.Location) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO locations (id, name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Name, l.Notes, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", mapPgError(err, "location "+l.Name))
	}
	return nil
}

// Update updates name and notes
func (r *locationRepository) Update(ctx context.Context, l *domain.Location) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations SET name = $2, notes = $3, updated_at = $4
		WHERE id = $1`,
		l.ID, l.Name, l.Notes, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", mapPgError(err, "location "+l.Name))
	}
	if tag.RowsAffected() == 0 {
		return notFound("location", l.ID)
	}
	return nil
}

// UpsertByName inserts the location or loads the existing one with the same
// name into l. It reports whether a row was created.
func (r *locationRepository) UpsertByName(ctx context.Context, l *domain.Location) (bool, error) {
	var created bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO locations (id, name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, notes, created_at, updated_at, (xmax = 0)`,
		l.ID, l.Name, l.Notes, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID, &l.Notes, &l.CreatedAt, &l.UpdatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert location: %w", err)
	}
	return created, nil
}

// FindByID retrieves a location by ID
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	row := r.db.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	l, err := ScanOne(row, scanLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return l, nil
}

// List returns all locations by name
func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return ScanMany(rows, scanLocation)
}

// Delete removes a location. Locations that still own racks are refused.
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", mapPgError(err, "location"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("location", id)
	}
	return nil
}

// Search matches name and notes case-insensitively
func (r *locationRepository) Search(ctx context.Context, query string, limit int) ([]domain.Location, error) {
	sql, args, err := psql.Select(locationColumns).
		From("locations").
		Where("(name ILIKE ? OR notes ILIKE ?)", likePattern(query), likePattern(query)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location search: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return ScanMany(rows, scanLocation)
}
