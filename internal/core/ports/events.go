// internal/core/ports/events.go
package ports

import (
	"context"

	"github.com/ammerola/stowage/internal/core/domain"
)

// MovementPublisher announces committed movements to other systems.
// Publishing is best effort and never undoes the movement.
type MovementPublisher interface {
	PublishMovement(ctx context.Context, event domain.MovementEvent) error
	Close() error
}
