// internal/adapters/db/container_type_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

const containerTypeColumns = `id, name, code_prefix, shape, length, width, height,
	top_length, top_width, bottom_length, bottom_width, capacity, notes, created_at, updated_at`

// containerTypeRepository implements ports.ContainerTypeRepository
type containerTypeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewContainerTypeRepository creates a new container type repository
func NewContainerTypeRepository(db *Database, logger *slog.Logger) ports.ContainerTypeRepository {
	return &containerTypeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "container_type")),
	}
}

func decimalPtr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func scanContainerType(row pgx.Row) (*domain.ContainerType, error) {
	var (
		t                         domain.ContainerType
		length, width, height     decimal.NullDecimal
		topLength, topWidth       decimal.NullDecimal
		bottomLength, bottomWidth decimal.NullDecimal
		capacity                  decimal.NullDecimal
	)
	err := row.Scan(&t.ID, &t.Name, &t.CodePrefix, &t.Shape, &length, &width, &height,
		&topLength, &topWidth, &bottomLength, &bottomWidth, &capacity, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	t.Length = decimalPtr(length)
	t.Width = decimalPtr(width)
	t.Height = decimalPtr(height)
	t.TopLength = decimalPtr(topLength)
	t.TopWidth = decimalPtr(topWidth)
	t.BottomLength = decimalPtr(bottomLength)
	t.BottomWidth = decimalPtr(bottomWidth)
	t.Capacity = decimalPtr(capacity)
	return &t, nil
}

func containerTypeArgs(t *domain.ContainerType) []any {
	return []any{
		t.ID, t.Name, t.CodePrefix, t.Shape, t.Length, t.Width, t.Height,
		t.TopLength, t.TopWidth, t.BottomLength, t.BottomWidth, t.Capacity, t.Notes, t.CreatedAt, t.UpdatedAt,
	}
}

const insertContainerType = `
	INSERT INTO container_types (
		id, name, code_prefix, shape, length, width, height,
		top_length, top_width, bottom_length, bottom_width, capacity, notes, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// Save creates a new container type
func (r *containerTypeRepository) Save(ctx context.Context, t *domain.ContainerType) error {
	if _, err := r.db.Exec(ctx, insertContainerType, containerTypeArgs(t)...); err != nil {
		return fmt.Errorf("failed to save container type: %w", mapPgError(err, "container type "+t.Name))
	}
	return nil
}

// InsertIfAbsent inserts the type unless one with the same name exists
func (r *containerTypeRepository) InsertIfAbsent(ctx context.Context, t *domain.ContainerType) (bool, error) {
	tag, err := r.db.Exec(ctx, insertContainerType+` ON CONFLICT (name) DO NOTHING`, containerTypeArgs(t)...)
	if err != nil {
		return false, fmt.Errorf("failed to insert container type: %w", mapPgError(err, "container type "+t.Name))
	}
	return tag.RowsAffected() == 1, nil
}

// Update replaces the type's attributes
func (r *containerTypeRepository) Update(ctx context.Context, t *domain.ContainerType) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE container_types SET
			name = $2, code_prefix = $3, shape = $4, length = $5, width = $6, height = $7,
			top_length = $8, top_width = $9, bottom_length = $10, bottom_width = $11,
			capacity = $12, notes = $13, updated_at = $14
		WHERE id = $1`,
		t.ID, t.Name, t.CodePrefix, t.Shape, t.Length, t.Width, t.Height,
		t.TopLength, t.TopWidth, t.BottomLength, t.BottomWidth, t.Capacity, t.Notes, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update container type: %w", mapPgError(err, "container type "+t.Name))
	}
	if tag.RowsAffected() == 0 {
		return notFound("container type", t.ID)
	}
	return nil
}

// FindByID retrieves a container type by ID
func (r *containerTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ContainerType, error) {
	row := r.db.QueryRow(ctx, `SELECT `+containerTypeColumns+` FROM container_types WHERE id = $1`, id)
	t, err := ScanOne(row, scanContainerType)
	if err != nil {
		return nil, fmt.Errorf("failed to find container type: %w", err)
	}
	return t, nil
}

// List returns the catalog ordered by name
func (r *containerTypeRepository) List(ctx context.Context) ([]domain.ContainerType, error) {
	rows, err := r.db.Query(ctx, `SELECT `+containerTypeColumns+` FROM container_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list container types: %w", err)
	}
	return ScanMany(rows, scanContainerType)
}

// Delete removes a type; containers referencing it lose the reference
func (r *containerTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM container_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete container type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("container type", id)
	}
	return nil
}
