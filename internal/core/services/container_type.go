// internal/core/services/container_type.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ContainerTypeService manages the container type catalog. Capacity is
// always derived from the dimensions, never taken from the caller.
type ContainerTypeService struct {
	types  ports.ContainerTypeRepository
	logger *slog.Logger
}

var _ ports.ContainerTypeService = (*ContainerTypeService)(nil)

// NewContainerTypeService creates a new container type service
func NewContainerTypeService(repos Repositories, logger *slog.Logger) *ContainerTypeService {
	return &ContainerTypeService{
		types:  repos.ContainerTypes,
		logger: logger.With(slog.String("service", "container_type")),
	}
}

// Create stores a new type
func (s *ContainerTypeService) Create(ctx context.Context, ct *domain.ContainerType) error {
	if err := ct.Validate(); err != nil {
		return err
	}
	ct.PrepareForStorage()

	if err := s.types.Save(ctx, ct); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "container type created",
		slog.String("type_id", ct.ID.String()),
		slog.String("name", ct.Name),
		slog.Any("capacity", ct.Capacity))
	return nil
}

// Get returns one type
func (s *ContainerTypeService) Get(ctx context.Context, id uuid.UUID) (*domain.ContainerType, error) {
	ct, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get container type: %w", err)
	}
	if ct == nil {
		return nil, notFound("container type", id)
	}
	return ct, nil
}

// Update replaces a type's attributes and recomputes its capacity
func (s *ContainerTypeService) Update(ctx context.Context, id uuid.UUID, ct *domain.ContainerType) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	ct.ID = existing.ID
	ct.CreatedAt = existing.CreatedAt
	if err := ct.Validate(); err != nil {
		return err
	}
	ct.PrepareForStorage()

	return s.types.Update(ctx, ct)
}

// Delete removes a type. Containers of that type become untyped.
func (s *ContainerTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "container type deleted", slog.String("type_id", id.String()))
	return nil
}

// List returns the catalog
func (s *ContainerTypeService) List(ctx context.Context) ([]domain.ContainerType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list container types: %w", err)
	}
	return types, nil
}
