// internal/core/services/container.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ContainerService handles container business logic. Placement changes are
// delegated to the placement service.
type ContainerService struct {
	tx        ports.TxManager
	repos     Repositories
	placement ports.PlacementService
	reads     ports.ReadCache
	cache     ports.CacheInvalidator
	logger    *slog.Logger
}

var _ ports.ContainerService = (*ContainerService)(nil)

// NewContainerService creates a new container service
func NewContainerService(
	tx ports.TxManager,
	repos Repositories,
	placement ports.PlacementService,
	reads ports.ReadCache,
	cache ports.CacheInvalidator,
	logger *slog.Logger,
) *ContainerService {
	return &ContainerService{
		tx:        tx,
		repos:     repos,
		placement: placement,
		reads:     reads,
		cache:     cache,
		logger:    logger.With(slog.String("service", "container")),
	}
}

func (s *ContainerService) checkType(ctx context.Context, typeID *uuid.UUID) (*domain.ContainerType, error) {
	if typeID == nil {
		return nil, nil
	}
	ct, err := s.repos.ContainerTypes.FindByID(ctx, *typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get container type: %w", err)
	}
	if ct == nil {
		return nil, fmt.Errorf("%w: container type %s does not exist", domain.ErrValidation, typeID)
	}
	return ct, nil
}

// Create stores a new container and applies its requested placement in the
// same transaction
func (s *ContainerService) Create(ctx context.Context, c *domain.Container) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.checkType(ctx, c.ContainerTypeID); err != nil {
		return err
	}
	c.PrepareForStorage()

	requested := c.Placement
	c.Placement = domain.Unplaced()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Containers.Save(ctx, c); err != nil {
			return err
		}

		if requested.Kind() == domain.PlacementUnplaced {
			return nil
		}
		placed, err := s.placement.Apply(ctx, c.ID, requested)
		if err != nil {
			return err
		}
		c.Placement = placed.Placement
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "container created",
		slog.String("container_id", c.ID.String()),
		slog.String("code", c.Code),
		slog.String("placement", c.Placement.String()))
	s.cache.InvalidateInventory(ctx, c.Code)
	return nil
}

// UpsertByCode creates the container or refreshes the one with the same
// code. It reports whether a container was created.
func (s *ContainerService) UpsertByCode(ctx context.Context, c *domain.Container) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	c.PrepareForStorage()

	created, err := s.repos.Containers.UpsertByCode(ctx, c)
	if err != nil {
		return false, err
	}
	s.cache.InvalidateInventory(ctx, c.Code)
	return created, nil
}

func (s *ContainerService) find(ctx context.Context, id uuid.UUID) (*domain.Container, error) {
	c, err := s.repos.Containers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get container: %w", err)
	}
	if c == nil {
		return nil, notFound("container", id)
	}
	return c, nil
}

// Get returns the container with its type, breadcrumb, nested containers,
// items and fill report
func (s *ContainerService) Get(ctx context.Context, id uuid.UUID) (*domain.ContainerDetail, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &domain.ContainerDetail{Container: *c}

	if detail.Type, err = s.typeOf(ctx, c); err != nil {
		return nil, err
	}

	if slotID, ok := c.Placement.SlotID(); ok {
		if err := s.loadBreadcrumb(ctx, detail, slotID); err != nil {
			return nil, err
		}
	}
	if parentID, ok := c.Placement.ParentID(); ok {
		parent, err := s.repos.Containers.FindByID(ctx, parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent container: %w", err)
		}
		if parent != nil {
			summary := parent.Summary()
			detail.Parent = &summary
		}
		if err := s.loadNestedBreadcrumb(ctx, detail); err != nil {
			return nil, err
		}
	}

	children, err := s.repos.Containers.ListChildren(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nested containers: %w", err)
	}
	detail.Children = make([]domain.ContainerSummary, 0, len(children))
	for i := range children {
		detail.Children = append(detail.Children, children[i].Summary())
	}

	items, err := s.repos.Items.ListByContainer(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list container items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	detail.Items = items

	detail.Fill = domain.BuildFillReport(items, capacityOf(detail.Type))
	return detail, nil
}

func (s *ContainerService) loadBreadcrumb(ctx context.Context, detail *domain.ContainerDetail, slotID uuid.UUID) error {
	slot, err := s.repos.Slots.FindByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("failed to get slot: %w", err)
	}
	if slot == nil {
		return nil
	}
	detail.Slot = slot

	rack, err := s.repos.Racks.FindByID(ctx, slot.RackID)
	if err != nil {
		return fmt.Errorf("failed to get rack: %w", err)
	}
	if rack == nil {
		return nil
	}
	detail.Rack = rack

	location, err := s.repos.Locations.FindByID(ctx, rack.LocationID)
	if err != nil {
		return fmt.Errorf("failed to get location: %w", err)
	}
	detail.Location = location
	return nil
}

// loadNestedBreadcrumb resolves the slot, rack and location of a nested
// container through its outermost ancestor, the only one that can be racked
func (s *ContainerService) loadNestedBreadcrumb(ctx context.Context, detail *domain.ContainerDetail) error {
	ancestors, err := s.repos.Containers.Ancestors(ctx, detail.ID)
	if err != nil {
		return fmt.Errorf("failed to load parent chain: %w", err)
	}
	if len(ancestors) == 0 {
		return nil
	}
	root, err := s.repos.Containers.FindByID(ctx, ancestors[len(ancestors)-1])
	if err != nil {
		return fmt.Errorf("failed to get outermost container: %w", err)
	}
	if root == nil {
		return nil
	}
	if slotID, ok := root.Placement.SlotID(); ok {
		return s.loadBreadcrumb(ctx, detail, slotID)
	}
	return nil
}

// typeOf returns the container's type, or nil when it has none
func (s *ContainerService) typeOf(ctx context.Context, c *domain.Container) (*domain.ContainerType, error) {
	if c.ContainerTypeID == nil {
		return nil, nil
	}
	ct, err := s.repos.ContainerTypes.FindByID(ctx, *c.ContainerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get container type: %w", err)
	}
	return ct, nil
}

func capacityOf(ct *domain.ContainerType) *decimal.Decimal {
	if ct == nil {
		return nil
	}
	return ct.Capacity
}

// GetByCode looks a container up by its exact code, as printed on its QR
// label
func (s *ContainerService) GetByCode(ctx context.Context, code string) (*domain.Container, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	c, err := s.reads.CachedScan(ctx, code, func() (*domain.Container, error) {
		return s.repos.Containers.FindByCode(ctx, code)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up container code: %w", err)
	}
	if c == nil {
		return nil, notFound("container", code)
	}
	return c, nil
}

// Update changes the descriptive fields of a container. The code is
// immutable and placement only changes through the placement routes.
func (s *ContainerService) Update(ctx context.Context, id uuid.UUID, c *domain.Container) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if c.Code != "" && !strings.EqualFold(strings.TrimSpace(c.Code), existing.Code) {
		return fmt.Errorf("%w: container code is immutable", domain.ErrValidation)
	}

	c.ID = existing.ID
	c.Code = existing.Code
	c.Placement = existing.Placement
	c.CreatedAt = existing.CreatedAt
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.checkType(ctx, c.ContainerTypeID); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()

	if err := s.repos.Containers.Update(ctx, c); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "container updated",
		slog.String("container_id", c.ID.String()),
		slog.String("code", c.Code))
	s.cache.InvalidateInventory(ctx, c.Code)
	return nil
}

// List returns one page of containers
func (s *ContainerService) List(ctx context.Context, filter domain.ContainerFilter) (*ports.ListResult[domain.Container], error) {
	filter.Normalize()
	containers, total, err := s.repos.Containers.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return ports.NewListResult(containers, filter.Page, filter.PageSize, total), nil
}

// Fill reports how full the container is against its type's capacity
func (s *ContainerService) Fill(ctx context.Context, id uuid.UUID) (*domain.FillReport, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	ct, err := s.typeOf(ctx, c)
	if err != nil {
		return nil, err
	}

	items, err := s.repos.Items.ListByContainer(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list container items: %w", err)
	}

	report := domain.BuildFillReport(items, capacityOf(ct))
	return &report, nil
}
