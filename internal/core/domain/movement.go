// internal/core/domain/movement.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovementAction is the kind of item state transition recorded
type MovementAction string

const (
	ActionCheckOut MovementAction = "check_out"
	ActionCheckIn  MovementAction = "check_in"
	ActionMove     MovementAction = "move"
	ActionRemove   MovementAction = "remove"
)

// Movement is an append-only record of one item transition. Rows are never
// updated or deleted.
type Movement struct {
	ID              uuid.UUID      `json:"id"`
	ItemID          uuid.UUID      `json:"item_id"`
	Action          MovementAction `json:"action"`
	FromContainerID *uuid.UUID     `json:"from_container_id,omitempty"`
	ToContainerID   *uuid.UUID     `json:"to_container_id,omitempty"`
	FromSlotID      *uuid.UUID     `json:"from_slot_id,omitempty"`
	ToSlotID        *uuid.UUID     `json:"to_slot_id,omitempty"`
	ActorID         *uuid.UUID     `json:"actor_id,omitempty"`
	Note            string         `json:"note,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// MovementEvent is published after a movement commits.
type MovementEvent struct {
	Movement
	ItemName string `json:"item_name"`
}
