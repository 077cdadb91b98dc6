// internal/core/ports/services.go
package ports

import (
	"context"
	"io"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/google/uuid"
)

// PlacementService keeps the slot <-> occupant link and the racked XOR
// nested rule consistent.
type PlacementService interface {
	AssignToSlot(ctx context.Context, containerID, slotID uuid.UUID) (*domain.Container, error)
	AssignToParent(ctx context.Context, containerID uuid.UUID, parentID *uuid.UUID) (*domain.Container, error)
	Unplace(ctx context.Context, containerID uuid.UUID) (*domain.Container, error)
	// Apply places the container inside the caller's transaction without
	// logging or cache invalidation.
	Apply(ctx context.Context, containerID uuid.UUID, placement domain.Placement) (*domain.Container, error)
	DeleteContainer(ctx context.Context, containerID uuid.UUID) error
	AssignItemToSlot(ctx context.Context, itemID, slotID uuid.UUID) (*domain.Item, error)
	UnrackItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
}

// ContainerService defines the application service port for containers.
type ContainerService interface {
	Create(ctx context.Context, container *domain.Container) error
	UpsertByCode(ctx context.Context, container *domain.Container) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ContainerDetail, error)
	GetByCode(ctx context.Context, code string) (*domain.Container, error)
	Update(ctx context.Context, id uuid.UUID, container *domain.Container) error
	List(ctx context.Context, filter domain.ContainerFilter) (*ListResult[domain.Container], error)
	Fill(ctx context.Context, id uuid.UUID) (*domain.FillReport, error)
}

// LocationService defines the application service port for locations.
type LocationService interface {
	Create(ctx context.Context, location *domain.Location) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	Update(ctx context.Context, id uuid.UUID, location *domain.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Location, error)
	ListRacks(ctx context.Context, id uuid.UUID) ([]domain.Rack, error)
}

// RackService defines the application service port for racks.
type RackService interface {
	Create(ctx context.Context, rack *domain.Rack) (*domain.RackGrid, error)
	Grid(ctx context.Context, id uuid.UUID) (*domain.RackGrid, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContainerTypeService defines the application service port for the type
// catalog.
type ContainerTypeService interface {
	Create(ctx context.Context, ct *domain.ContainerType) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ContainerType, error)
	Update(ctx context.Context, id uuid.UUID, ct *domain.ContainerType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.ContainerType, error)
}

// ItemService defines the application service port for items. Every
// lifecycle change appends a movement in the same transaction.
type ItemService interface {
	Create(ctx context.Context, item *domain.Item) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, item *domain.Item) error
	List(ctx context.Context, filter domain.ItemFilter) (*ListResult[domain.Item], error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
	CheckOut(ctx context.Context, id uuid.UUID, note string) (*domain.Movement, error)
	CheckIn(ctx context.Context, id uuid.UUID, containerID *uuid.UUID, note string) (*domain.Movement, error)
	Move(ctx context.Context, id uuid.UUID, containerID uuid.UUID, note string) (*domain.Movement, error)
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.Movement, error)
	AddPhoto(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.ItemPhoto, error)
}

// SearchService runs the global search.
type SearchService interface {
	Search(ctx context.Context, query string) (*domain.SearchResults, error)
}

// ImportService loads intake spreadsheets row by row.
type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader, opts domain.ImportOptions) (*domain.ImportResult, error)
	ImportXLSX(ctx context.Context, path string, opts domain.ImportOptions) (*domain.ImportResult, error)
}

// AdminService holds the maintenance operations behind the admin routes.
type AdminService interface {
	SeedContainerTypes(ctx context.Context) (*domain.SeedResult, error)
	MigrateContainerTypes(ctx context.Context, dryRun bool) (*domain.TypeMigrationReport, error)
	SeedTestAccounts(ctx context.Context) (*domain.SeedResult, error)
}

// ListResult holds one page of a listing
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewListResult computes the page count for a listing.
func NewListResult[T any](items []T, page, pageSize int, total int64) *ListResult[T] {
	if items == nil {
		items = []T{}
	}
	var pages int
	if pageSize > 0 {
		pages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			pages++
		}
	}
	return &ListResult[T]{Items: items, Page: page, PageSize: pageSize, TotalCount: total, TotalPages: pages}
}
