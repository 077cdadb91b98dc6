// internal/core/domain/placement.go
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PlacementKind tells where a container physically is.
type PlacementKind string

const (
	PlacementUnplaced PlacementKind = "unplaced"
	PlacementRacked   PlacementKind = "racked"
	PlacementNested   PlacementKind = "nested"
)

// Placement is either Racked(slot), Nested(parent) or Unplaced. The zero value
// is Unplaced. A container can never be racked and nested at the same time
// because only one target is stored.
type Placement struct {
	kind   PlacementKind
	target uuid.UUID
}

// RackedIn places a container in a rack slot.
func RackedIn(slotID uuid.UUID) Placement {
	return Placement{kind: PlacementRacked, target: slotID}
}

// NestedIn places a container inside a parent container.
func NestedIn(parentID uuid.UUID) Placement {
	return Placement{kind: PlacementNested, target: parentID}
}

// Unplaced is a container that is neither racked nor nested.
func Unplaced() Placement {
	return Placement{}
}

// Kind returns the placement kind.
func (p Placement) Kind() PlacementKind {
	if p.kind == "" {
		return PlacementUnplaced
	}
	return p.kind
}

// SlotID returns the slot for racked placements.
func (p Placement) SlotID() (uuid.UUID, bool) {
	if p.kind != PlacementRacked {
		return uuid.Nil, false
	}
	return p.target, true
}

// ParentID returns the parent container for nested placements.
func (p Placement) ParentID() (uuid.UUID, bool) {
	if p.kind != PlacementNested {
		return uuid.Nil, false
	}
	return p.target, true
}

// Columns splits the placement into the two nullable persisted columns
// (current_slot_id, parent_container_id).
func (p Placement) Columns() (slotID, parentID *uuid.UUID) {
	switch p.kind {
	case PlacementRacked:
		id := p.target
		return &id, nil
	case PlacementNested:
		id := p.target
		return nil, &id
	}
	return nil, nil
}

// PlacementFromColumns rebuilds a placement from the persisted columns.
// Both columns being set is a corrupted row.
func PlacementFromColumns(slotID, parentID *uuid.UUID) (Placement, error) {
	switch {
	case slotID != nil && parentID != nil:
		return Placement{}, fmt.Errorf("container is both racked in slot %s and nested in %s", slotID, parentID)
	case slotID != nil:
		return RackedIn(*slotID), nil
	case parentID != nil:
		return NestedIn(*parentID), nil
	}
	return Unplaced(), nil
}

func (p Placement) String() string {
	if p.Kind() == PlacementUnplaced {
		return string(PlacementUnplaced)
	}
	return fmt.Sprintf("%s(%s)", p.kind, p.target)
}

type placementJSON struct {
	Kind              PlacementKind `json:"kind"`
	SlotID            *uuid.UUID    `json:"slot_id,omitempty"`
	ParentContainerID *uuid.UUID    `json:"parent_container_id,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (p Placement) MarshalJSON() ([]byte, error) {
	slotID, parentID := p.Columns()
	return json.Marshal(placementJSON{Kind: p.Kind(), SlotID: slotID, ParentContainerID: parentID})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Placement) UnmarshalJSON(data []byte) error {
	var raw placementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	placement, err := PlacementFromColumns(raw.SlotID, raw.ParentContainerID)
	if err != nil {
		return err
	}
	*p = placement
	return nil
}
