// internal/core/services/types.go
package services

import (
	"fmt"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// Repositories bundles the persistence ports the services depend on
type Repositories struct {
	Locations      ports.LocationRepository
	Racks          ports.RackRepository
	Slots          ports.SlotRepository
	Containers     ports.ContainerRepository
	ContainerTypes ports.ContainerTypeRepository
	Items          ports.ItemRepository
	Movements      ports.MovementRepository
	Users          ports.UserRepository
}

// defaultHistoryLimit caps movement history when the caller gives no limit
const defaultHistoryLimit = 50

func notFound(what string, id any) error {
	return fmt.Errorf("%w: %s %v", domain.ErrNotFound, what, id)
}
