// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/google/uuid"
)

// Repositories return (nil, nil) when a single-row lookup finds nothing and
// domain.ErrNotFound when a mutation targets a missing row.

// LocationRepository defines the persistence port for locations.
type LocationRepository interface {
	Save(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, location *domain.Location) error
	UpsertByName(ctx context.Context, location *domain.Location) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]domain.Location, error)
}

// RackRepository defines the persistence port for racks.
type RackRepository interface {
	Save(ctx context.Context, rack *domain.Rack) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Rack, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]domain.Rack, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlotRepository defines the persistence port for rack slots. The claim and
// release methods are compare-and-swap writes: they only succeed when the
// slot is in the expected state.
type SlotRepository interface {
	SaveBatch(ctx context.Context, slots []domain.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	ListByRack(ctx context.Context, rackID uuid.UUID) ([]domain.Slot, error)
	CountOccupied(ctx context.Context, rackID uuid.UUID) (int64, error)
	Claim(ctx context.Context, slotID, containerID uuid.UUID) error
	Release(ctx context.Context, slotID, containerID uuid.UUID) error
	ClaimForItem(ctx context.Context, slotID, itemID uuid.UUID) error
	ReleaseForItem(ctx context.Context, slotID, itemID uuid.UUID) error
}

// ContainerRepository defines the persistence port for containers.
type ContainerRepository interface {
	Save(ctx context.Context, container *domain.Container) error
	Update(ctx context.Context, container *domain.Container) error
	UpsertByCode(ctx context.Context, container *domain.Container) (bool, error)
	UpdatePlacement(ctx context.Context, id uuid.UUID, placement domain.Placement) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Container, error)
	FindByCode(ctx context.Context, code string) (*domain.Container, error)
	FindBySlot(ctx context.Context, slotID uuid.UUID) (*domain.Container, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Container, error)
	// LockNesting serializes parent changes until the transaction ends.
	LockNesting(ctx context.Context) error
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Container, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.Container, error)
	DetachChildren(ctx context.Context, parentID uuid.UUID) (int64, error)
	Ancestors(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	List(ctx context.Context, filter domain.ContainerFilter) ([]domain.Container, int64, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Container, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListLegacyTypes(ctx context.Context) ([]domain.LegacyContainerType, error)
	SetContainerType(ctx context.Context, id, typeID uuid.UUID) error
}

// ContainerTypeRepository defines the persistence port for the type catalog.
type ContainerTypeRepository interface {
	Save(ctx context.Context, ct *domain.ContainerType) error
	Update(ctx context.Context, ct *domain.ContainerType) error
	// InsertIfAbsent inserts ct unless a type with the same name exists.
	InsertIfAbsent(ctx context.Context, ct *domain.ContainerType) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ContainerType, error)
	List(ctx context.Context) ([]domain.ContainerType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository defines the persistence port for items and their photos.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	UpdateSlot(ctx context.Context, id uuid.UUID, slotID *uuid.UUID) error
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int64, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Item, error)
	ListByContainer(ctx context.Context, containerID uuid.UUID) ([]domain.Item, error)
	// DetachFromContainer empties containerID and returns the items it held.
	DetachFromContainer(ctx context.Context, containerID uuid.UUID) ([]domain.Item, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SavePhoto(ctx context.Context, photo *domain.ItemPhoto) error
	ListPhotos(ctx context.Context, itemID uuid.UUID) ([]domain.ItemPhoto, error)
}

// MovementRepository is the append-only movement log.
type MovementRepository interface {
	Append(ctx context.Context, movement *domain.Movement) error
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.Movement, error)
	LastByItem(ctx context.Context, itemID uuid.UUID, action domain.MovementAction) (*domain.Movement, error)
}

// UserRepository defines the persistence port for accounts.
type UserRepository interface {
	UpsertByEmail(ctx context.Context, user *domain.User) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	DeletePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
