// internal/adapters/db/container_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

const containerColumns = `c.id, c.code, c.label, c.description, c.status,
	c.current_slot_id, c.parent_container_id, c.container_type_id, c.created_at, c.updated_at`

// containerRepository implements ports.ContainerRepository
type containerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewContainerRepository creates a new container repository
func NewContainerRepository(db *Database, logger *slog.Logger) ports.ContainerRepository {
	return &containerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "container")),
	}
}

func scanContainer(row pgx.Row) (*domain.Container, error) {
	var (
		c        domain.Container
		slotID   *uuid.UUID
		parentID *uuid.UUID
	)
	err := row.Scan(&c.ID, &c.Code, &c.Label, &c.Description, &c.Status,
		&slotID, &parentID, &c.ContainerTypeID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Placement, err = domain.PlacementFromColumns(slotID, parentID)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", c.Code, err)
	}
	return &c, nil
}

// Save creates a new container with its placement
func (r *containerRepository) Save(ctx context.Context, c *domain.Container) error {
	slotID, parentID := c.Placement.Columns()
	_, err := r.db.Exec(ctx, `
		INSERT INTO containers (
			id, code, label, description, status,
			current_slot_id, parent_container_id, container_type_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Code, c.Label, c.Description, c.Status,
		slotID, parentID, c.ContainerTypeID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save container: %w", mapPgError(err, "container "+c.Code))
	}

	r.logger.DebugContext(ctx, "container saved",
		slog.String("container_id", c.ID.String()),
		slog.String("code", c.Code))
	return nil
}

// Update changes the descriptive fields. Code and placement are not touched.
func (r *containerRepository) Update(ctx context.Context, c *domain.Container) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE containers SET label = $2, description = $3, status = $4,
			container_type_id = $5, updated_at = $6
		WHERE id = $1`,
		c.ID, c.Label, c.Description, c.Status, c.ContainerTypeID, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update container: %w", mapPgError(err, "container "+c.Code))
	}
	if tag.RowsAffected() == 0 {
		return notFound("container", c.ID)
	}
	return nil
}

// UpsertByCode inserts the container or refreshes the row with the same code,
// loading the stored state back into c. It reports whether a row was created.
// An existing description is kept when c has none.
func (r *containerRepository) UpsertByCode(ctx context.Context, c *domain.Container) (bool, error) {
	var (
		created  bool
		slotID   *uuid.UUID
		parentID *uuid.UUID
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO containers (id, code, label, description, status, container_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO UPDATE SET
			description = COALESCE(NULLIF(EXCLUDED.description, ''), containers.description),
			container_type_id = COALESCE(containers.container_type_id, EXCLUDED.container_type_id),
			updated_at = EXCLUDED.updated_at
		RETURNING id, label, description, status, current_slot_id, parent_container_id,
			container_type_id, created_at, (xmax = 0)`,
		c.ID, c.Code, c.Label, c.Description, c.Status, c.ContainerTypeID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID, &c.Label, &c.Description, &c.Status, &slotID, &parentID,
		&c.ContainerTypeID, &c.CreatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert container: %w", mapPgError(err, "container "+c.Code))
	}

	if c.Placement, err = domain.PlacementFromColumns(slotID, parentID); err != nil {
		return false, err
	}
	return created, nil
}

// UpdatePlacement writes both placement columns at once
func (r *containerRepository) UpdatePlacement(ctx context.Context, id uuid.UUID, p domain.Placement) error {
	slotID, parentID := p.Columns()
	tag, err := r.db.Exec(ctx, `
		UPDATE containers SET current_slot_id = $2, parent_container_id = $3, updated_at = now()
		WHERE id = $1`,
		id, slotID, parentID)
	if err != nil {
		return fmt.Errorf("failed to update placement: %w", mapPgError(err, "container placement"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("container", id)
	}
	return nil
}

func (r *containerRepository) findOne(ctx context.Context, where string, arg any) (*domain.Container, error) {
	row := r.db.QueryRow(ctx, `SELECT `+containerColumns+` FROM containers c WHERE `+where, arg)
	c, err := ScanOne(row, scanContainer)
	if err != nil {
		return nil, fmt.Errorf("failed to find container: %w", err)
	}
	return c, nil
}

// FindByID retrieves a container by ID
func (r *containerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Container, error) {
	return r.findOne(ctx, `c.id = $1`, id)
}

// FindByCode retrieves a container by exact code
func (r *containerRepository) FindByCode(ctx context.Context, code string) (*domain.Container, error) {
	return r.findOne(ctx, `c.code = $1`, code)
}

// FindBySlot retrieves the container racked in a slot
func (r *containerRepository) FindBySlot(ctx context.Context, slotID uuid.UUID) (*domain.Container, error) {
	return r.findOne(ctx, `c.current_slot_id = $1`, slotID)
}

// LockByID loads a container and locks its row until the transaction ends
func (r *containerRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Container, error) {
	return r.findOne(ctx, `c.id = $1 FOR UPDATE`, id)
}

// ListByIDs loads several containers at once
func (r *containerRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Container, error) {
	if len(ids) == 0 {
		return []domain.Container{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+containerColumns+` FROM containers c WHERE c.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return ScanMany(rows, scanContainer)
}

// ListChildren returns the containers nested directly in parentID
func (r *containerRepository) ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.Container, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+containerColumns+` FROM containers c WHERE c.parent_container_id = $1 ORDER BY c.code`, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child containers: %w", err)
	}
	return ScanMany(rows, scanContainer)
}

// DetachChildren unnests every container nested in parentID
func (r *containerRepository) DetachChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE containers SET parent_container_id = NULL, updated_at = now() WHERE parent_container_id = $1`, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach child containers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// nestingLockKey is the advisory lock taken by every parent change.
const nestingLockKey int64 = 0x5707_a6e0

// maxNestingDepth bounds the ancestor walk. A longer chain is refused
// rather than checked partially.
const maxNestingDepth = 64

// LockNesting takes the transaction-scoped nesting lock, so two parent
// changes never check their ancestor chains against each other's
// uncommitted writes
func (r *containerRepository) LockNesting(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, nestingLockKey); err != nil {
		return fmt.Errorf("failed to take nesting lock: %w", err)
	}
	return nil
}

// Ancestors walks the parent chain upwards, nearest parent first. A chain
// deeper than maxNestingDepth yields ErrValidation.
func (r *containerRepository) Ancestors(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		WITH RECURSIVE chain (id, parent_container_id, depth) AS (
			SELECT id, parent_container_id, 0 FROM containers WHERE id = $1
			UNION ALL
			SELECT c.id, c.parent_container_id, chain.depth + 1
			FROM containers c
			JOIN chain ON c.id = chain.parent_container_id
			WHERE chain.depth < $2
		)
		SELECT id, parent_container_id FROM chain WHERE depth > 0 ORDER BY depth`, id, maxNestingDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to load container ancestors: %w", err)
	}

	type link struct {
		id     uuid.UUID
		parent *uuid.UUID
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (link, error) {
		var l link
		err := row.Scan(&l.id, &l.parent)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan container ancestors: %w", err)
	}
	if len(links) == maxNestingDepth && links[len(links)-1].parent != nil {
		return nil, fmt.Errorf("%w: container %s is nested more than %d levels deep", domain.ErrValidation, id, maxNestingDepth)
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.id
	}
	return ids, nil
}

func applyContainerFilter(qb squirrel.SelectBuilder, f domain.ContainerFilter) squirrel.SelectBuilder {
	if f.Status != "" {
		qb = qb.Where(squirrel.Eq{"c.status": f.Status})
	}
	if f.ContainerTypeID != nil {
		qb = qb.Where(squirrel.Eq{"c.container_type_id": *f.ContainerTypeID})
	}
	if f.LocationID != nil {
		qb = qb.Join("slots s ON s.id = c.current_slot_id").
			Join("racks r ON r.id = s.rack_id").
			Where(squirrel.Eq{"r.location_id": *f.LocationID})
	}
	if f.Unplaced {
		qb = qb.Where("c.current_slot_id IS NULL AND c.parent_container_id IS NULL")
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		qb = qb.Where("(c.label ILIKE ? OR c.code ILIKE ? OR c.description ILIKE ?)", p, p, p)
	}
	return qb
}

// List returns one page of containers and the total count
func (r *containerRepository) List(ctx context.Context, f domain.ContainerFilter) ([]domain.Container, int64, error) {
	f.Normalize()

	countSQL, countArgs, err := applyContainerFilter(psql.Select("COUNT(*)").From("containers c"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count containers: %w", err)
	}

	sql, args, err := applyContainerFilter(psql.Select(containerColumns).From("containers c"), f).
		OrderBy("c.code").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query containers: %w", err)
	}
	containers, err := ScanMany(rows, scanContainer)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan containers: %w", err)
	}
	return containers, total, nil
}

// Search matches label, code and description case-insensitively
func (r *containerRepository) Search(ctx context.Context, query string, limit int) ([]domain.Container, error) {
	sql, args, err := applyContainerFilter(psql.Select(containerColumns).From("containers c"),
		domain.ContainerFilter{Search: query}).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build container search: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search containers: %w", err)
	}
	return ScanMany(rows, scanContainer)
}

// Delete removes the container row
func (r *containerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete container: %w", mapPgError(err, "container"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("container", id)
	}
	return nil
}

// ListLegacyTypes returns containers still carrying a free-text type
func (r *containerRepository) ListLegacyTypes(ctx context.Context) ([]domain.LegacyContainerType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, legacy_type FROM containers
		WHERE legacy_type IS NOT NULL AND btrim(legacy_type) <> ''
		ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy container types: %w", err)
	}

	legacy, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LegacyContainerType, error) {
		var l domain.LegacyContainerType
		err := row.Scan(&l.ContainerID, &l.Code, &l.LegacyType)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan legacy container types: %w", err)
	}
	return legacy, nil
}

// SetContainerType points the container at a catalog type and clears its
// legacy free-text type
func (r *containerRepository) SetContainerType(ctx context.Context, id, typeID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE containers SET container_type_id = $2, legacy_type = NULL, updated_at = now()
		WHERE id = $1`,
		id, typeID)
	if err != nil {
		return fmt.Errorf("failed to set container type: %w", mapPgError(err, "container type"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("container", id)
	}
	return nil
}
