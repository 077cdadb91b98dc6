// internal/pkg/auth/context.go
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/pkg/logger"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	ID   uuid.UUID
	Role domain.Role
}

type actorKey struct{}

// WithActor stores the actor in ctx. The actor id is also exposed to the
// log handler.
func WithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, actorKey{}, actor)
	return context.WithValue(ctx, logger.ContextKeyActorID, actor.ID)
}

// ActorFrom returns the actor stored in ctx.
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}

// ActorID returns the id of the actor in ctx, or nil for anonymous requests.
func ActorID(ctx context.Context) *uuid.UUID {
	actor, ok := ActorFrom(ctx)
	if !ok {
		return nil
	}
	id := actor.ID
	return &id
}
