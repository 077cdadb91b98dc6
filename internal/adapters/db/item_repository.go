// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

const itemColumns = `id, name, description, notes, status, category, condition, container_id,
	is_container, current_slot_id, quantity, tags, isbn, expires_at, volume, created_at, updated_at`

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "item")),
	}
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		i      domain.Item
		volume decimal.NullDecimal
	)
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Notes, &i.Status, &i.Category, &i.Condition,
		&i.ContainerID, &i.IsContainer, &i.CurrentSlotID, &i.Quantity, &i.Tags, &i.ISBN, &i.ExpiresAt, &volume,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	i.Volume = decimalPtr(volume)
	return &i, nil
}

func tagsArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// Save creates a new item
func (r *itemRepository) Save(ctx context.Context, i *domain.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (
			id, name, description, notes, status, category, condition, container_id,
			is_container, quantity, tags, isbn, expires_at, volume, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		i.ID, i.Name, i.Description, i.Notes, i.Status, i.Category, i.Condition, i.ContainerID,
		i.IsContainer, i.Quantity, tagsArg(i.Tags), i.ISBN, i.ExpiresAt, i.Volume, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", mapPgError(err, "item "+i.Name))
	}

	r.logger.DebugContext(ctx, "item saved",
		slog.String("item_id", i.ID.String()),
		slog.String("name", i.Name))
	return nil
}

// Update replaces every descriptive and lifecycle column of the item. The
// slot column is only written by UpdateSlot.
func (r *itemRepository) Update(ctx context.Context, i *domain.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items SET
			name = $2, description = $3, notes = $4, status = $5, category = $6, condition = $7,
			container_id = $8, is_container = $9, quantity = $10, tags = $11, isbn = $12,
			expires_at = $13, volume = $14, updated_at = $15
		WHERE id = $1`,
		i.ID, i.Name, i.Description, i.Notes, i.Status, i.Category, i.Condition,
		i.ContainerID, i.IsContainer, i.Quantity, tagsArg(i.Tags), i.ISBN,
		i.ExpiresAt, i.Volume, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", mapPgError(err, "item "+i.Name))
	}
	if tag.RowsAffected() == 0 {
		return notFound("item", i.ID)
	}
	return nil
}

// UpdateSlot points the item at slotID, or clears its slot when nil
func (r *itemRepository) UpdateSlot(ctx context.Context, id uuid.UUID, slotID *uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET current_slot_id = $2, updated_at = now() WHERE id = $1`, id, slotID)
	if err != nil {
		return fmt.Errorf("failed to update item slot: %w", mapPgError(err, "item slot"))
	}
	if tag.RowsAffected() == 0 {
		return notFound("item", id)
	}
	return nil
}

// FindByID retrieves an item by ID
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	i, err := ScanOne(row, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return i, nil
}

// LockByID loads an item and locks its row until the transaction ends
func (r *itemRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
	i, err := ScanOne(row, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to lock item: %w", err)
	}
	return i, nil
}

func applyItemFilter(qb squirrel.SelectBuilder, f domain.ItemFilter) squirrel.SelectBuilder {
	if f.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": f.Status})
	}
	if f.Category != "" {
		qb = qb.Where(squirrel.Eq{"category": f.Category})
	}
	if f.ContainerID != nil {
		qb = qb.Where(squirrel.Eq{"container_id": *f.ContainerID})
	}
	if f.Tag != "" {
		qb = qb.Where("? = ANY(tags)", f.Tag)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		qb = qb.Where("(name ILIKE ? OR description ILIKE ? OR notes ILIKE ?)", p, p, p)
	}
	return qb
}

// List returns one page of items and the total count
func (r *itemRepository) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, int64, error) {
	f.Normalize()

	countSQL, countArgs, err := applyItemFilter(psql.Select("COUNT(*)").From("items"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	sql, args, err := applyItemFilter(psql.Select(itemColumns).From("items"), f).
		OrderBy("created_at DESC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	items, err := ScanMany(rows, scanItem)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan items: %w", err)
	}
	return items, total, nil
}

// ListByIDs loads several items at once
func (r *itemRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Item, error) {
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return ScanMany(rows, scanItem)
}

// ListByContainer returns the items stored in a container
func (r *itemRepository) ListByContainer(ctx context.Context, containerID uuid.UUID) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE container_id = $1 ORDER BY name`, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list container items: %w", err)
	}
	return ScanMany(rows, scanItem)
}

// DetachFromContainer clears the container of every item stored in it and
// returns exactly the rows it changed
func (r *itemRepository) DetachFromContainer(ctx context.Context, containerID uuid.UUID) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE items SET container_id = NULL, updated_at = now()
		WHERE container_id = $1
		RETURNING `+itemColumns, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to detach items: %w", err)
	}
	items, err := ScanMany(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan detached items: %w", err)
	}
	return items, nil
}

// Search matches name, description and notes case-insensitively
func (r *itemRepository) Search(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	sql, args, err := applyItemFilter(psql.Select(itemColumns).From("items"), domain.ItemFilter{Search: query}).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build item search: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return ScanMany(rows, scanItem)
}

// Delete permanently removes an item and its photos
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("item", id)
	}
	return nil
}

// SavePhoto attaches a photo to an item
func (r *itemRepository) SavePhoto(ctx context.Context, p *domain.ItemPhoto) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO item_photos (id, item_id, url, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.ItemID, p.URL, p.StorageKey, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save item photo: %w", mapPgError(err, "item photo"))
	}
	return nil
}

// ListPhotos returns an item's photos, oldest first
func (r *itemRepository) ListPhotos(ctx context.Context, itemID uuid.UUID) ([]domain.ItemPhoto, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, url, storage_key, created_at
		FROM item_photos WHERE item_id = $1 ORDER BY created_at`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list item photos: %w", err)
	}
	return ScanMany(rows, func(row pgx.Row) (*domain.ItemPhoto, error) {
		var p domain.ItemPhoto
		if err := row.Scan(&p.ID, &p.ItemID, &p.URL, &p.StorageKey, &p.CreatedAt); err != nil {
			return nil, err
		}
		return &p, nil
	})
}
