// internal/core/domain/container.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContainerStatus represents the lifecycle state of a container
type ContainerStatus string

const (
	ContainerActive   ContainerStatus = "active"
	ContainerArchived ContainerStatus = "archived"
)

// Container is a physical box or tote. Its code is the immutable identity
// printed on its QR label.
type Container struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	Label           string          `json:"label"`
	Description     string          `json:"description,omitempty"`
	Status          ContainerStatus `json:"status"`
	Placement       Placement       `json:"placement"`
	ContainerTypeID *uuid.UUID      `json:"container_type_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the container. A missing code is
// derived from the label.
func (c *Container) Validate() error {
	c.Label = strings.TrimSpace(c.Label)
	if c.Label == "" {
		return fmt.Errorf("%w: label is required", ErrValidation)
	}

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		c.Code = ParseContainerName(c.Label).Code
	}
	if c.Code == "" {
		return fmt.Errorf("%w: code could not be derived from label %q", ErrValidation, c.Label)
	}

	switch c.Status {
	case "":
		c.Status = ContainerActive
	case ContainerActive, ContainerArchived:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, c.Status)
	}

	if parent, ok := c.Placement.ParentID(); ok && parent == c.ID {
		return fmt.Errorf("%w: container cannot be nested in itself", ErrValidation)
	}
	return nil
}

// PrepareForStorage sets identity and timestamps
func (c *Container) PrepareForStorage() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// Summary returns the short listing form of the container.
func (c *Container) Summary() ContainerSummary {
	return ContainerSummary{ID: c.ID, Code: c.Code, Label: c.Label}
}

// ContainerDetail is the full view of one container.
type ContainerDetail struct {
	Container
	Type     *ContainerType     `json:"type,omitempty"`
	Slot     *Slot              `json:"slot,omitempty"`
	Rack     *Rack              `json:"rack,omitempty"`
	Location *Location          `json:"location,omitempty"`
	Parent   *ContainerSummary  `json:"parent,omitempty"`
	Children []ContainerSummary `json:"children"`
	Items    []Item             `json:"items"`
	Fill     FillReport         `json:"fill"`
}

// ContainerFilter holds container listing filters
type ContainerFilter struct {
	Status          ContainerStatus
	ContainerTypeID *uuid.UUID
	LocationID      *uuid.UUID
	Unplaced        bool
	Search          string
	Page            int
	PageSize        int
}

// Normalize applies paging defaults
func (f *ContainerFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 50
	}
}
