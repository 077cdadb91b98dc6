// internal/core/domain/location.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is a named physical site such as "Garage".
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the location
func (l *Location) Validate() error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// PrepareForStorage sets identity and timestamps
func (l *Location) PrepareForStorage() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
}
