// internal/core/domain/rack.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rack is a rows x cols grid of slots belonging to one location.
// The slot set is created with the rack and never changes afterwards.
type Rack struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	LocationID uuid.UUID `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Slot is one grid cell of a rack. It holds at most one occupant: a
// container or an item acting as a container.
type Slot struct {
	ID          uuid.UUID  `json:"id"`
	RackID      uuid.UUID  `json:"rack_id"`
	Row         int        `json:"row"`
	Col         int        `json:"col"`
	ContainerID *uuid.UUID `json:"container_id,omitempty"`
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	Version     int64      `json:"version"`
}

// IsOccupied reports whether anything currently sits in the slot.
func (s *Slot) IsOccupied() bool {
	return s.ContainerID != nil || s.ItemID != nil
}

// Label returns the human address of the slot, e.g. "R2C3".
func (s *Slot) Label() string {
	return fmt.Sprintf("R%dC%d", s.Row, s.Col)
}

// Validate performs domain validation on the rack
func (r *Rack) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("%w: rows and cols must be at least 1", ErrValidation)
	}
	if r.LocationID == uuid.Nil {
		return fmt.Errorf("%w: location_id is required", ErrValidation)
	}
	return nil
}

// PrepareForStorage sets identity and timestamps
func (r *Rack) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// BuildSlots returns the full, empty slot set for the rack, row-major and
// 1-based.
func (r *Rack) BuildSlots() []Slot {
	slots := make([]Slot, 0, r.Rows*r.Cols)
	for row := 1; row <= r.Rows; row++ {
		for col := 1; col <= r.Cols; col++ {
			slots = append(slots, Slot{
				ID:     uuid.New(),
				RackID: r.ID,
				Row:    row,
				Col:    col,
			})
		}
	}
	return slots
}

// RackGrid is a rack with its slots and the occupants of each slot.
type RackGrid struct {
	Rack     Rack       `json:"rack"`
	Location *Location  `json:"location,omitempty"`
	Cells    []GridCell `json:"cells"`
}

// GridCell is one rendered slot of a rack grid.
type GridCell struct {
	Slot      Slot              `json:"slot"`
	Container *ContainerSummary `json:"container,omitempty"`
	Item      *ItemSummary      `json:"item,omitempty"`
}

// ItemSummary is the short form of a racked container-item.
type ItemSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ContainerSummary is the short form of a container used in listings.
type ContainerSummary struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	Label string    `json:"label"`
}
