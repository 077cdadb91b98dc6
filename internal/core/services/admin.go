// internal/core/services/admin.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/pkg/auth"
)

const (
	migrateTypesLockKey = "lock:container_types:migrate"
	migrateTypesLockTTL = 10 * time.Minute
)

// AdminService holds maintenance operations
type AdminService struct {
	repos      Repositories
	cache      ports.CacheRepository
	invalidate ports.CacheInvalidator
	production bool
	bcryptCost int
	logger     *slog.Logger
}

var _ ports.AdminService = (*AdminService)(nil)

// AdminOptions configures environment dependent admin behavior
type AdminOptions struct {
	Production bool
	BcryptCost int
}

// NewAdminService creates a new admin service
func NewAdminService(repos Repositories, cache ports.CacheRepository, invalidate ports.CacheInvalidator, opts AdminOptions, logger *slog.Logger) *AdminService {
	return &AdminService{
		repos:      repos,
		cache:      cache,
		invalidate: invalidate,
		production: opts.Production,
		bcryptCost: opts.BcryptCost,
		logger:     logger.With(slog.String("service", "admin")),
	}
}

// SeedContainerTypes inserts the standard catalog. Types whose name already
// exists are left untouched, so reruns are safe.
func (s *AdminService) SeedContainerTypes(ctx context.Context) (*domain.SeedResult, error) {
	result := &domain.SeedResult{}
	for _, ct := range domain.StandardContainerTypes() {
		if err := ct.Validate(); err != nil {
			return nil, err
		}
		ct.PrepareForStorage()

		inserted, err := s.repos.ContainerTypes.InsertIfAbsent(ctx, &ct)
		if err != nil {
			return nil, err
		}
		if inserted {
			result.Created++
			result.Names = append(result.Names, ct.Name)
		} else {
			result.Existing++
		}
	}

	s.logger.InfoContext(ctx, "container types seeded",
		slog.Int("created", result.Created),
		slog.Int("existing", result.Existing))
	return result, nil
}

// MigrateContainerTypes resolves every container's free-text legacy type
// against the catalog. A dry run only reports the matches; otherwise each
// match is applied row by row and failures are counted, not fatal.
func (s *AdminService) MigrateContainerTypes(ctx context.Context, dryRun bool) (*domain.TypeMigrationReport, error) {
	if !dryRun {
		release, err := s.lock(ctx)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	legacy, err := s.repos.Containers.ListLegacyTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy container types: %w", err)
	}
	types, err := s.repos.ContainerTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list container types: %w", err)
	}

	report := &domain.TypeMigrationReport{
		DryRun:  dryRun,
		Total:   len(legacy),
		Entries: make([]domain.TypeMigrationEntry, 0, len(legacy)),
	}
	var codes []string
	for _, l := range legacy {
		entry := domain.TypeMigrationEntry{
			ContainerID: l.ContainerID,
			Code:        l.Code,
			LegacyType:  l.LegacyType,
		}

		ct, strategy := domain.MatchContainerType(l.LegacyType, l.Code, types)
		entry.Strategy = strategy
		if ct == nil {
			report.Unmatched++
			report.Entries = append(report.Entries, entry)
			continue
		}
		report.Matched++
		entry.TypeID = &ct.ID
		entry.TypeName = ct.Name

		if !dryRun {
			if err := s.repos.Containers.SetContainerType(ctx, l.ContainerID, ct.ID); err != nil {
				report.Failed++
				entry.Error = err.Error()
			} else {
				report.Applied++
				entry.Applied = true
				codes = append(codes, l.Code)
			}
		}
		report.Entries = append(report.Entries, entry)
	}

	if len(codes) > 0 {
		s.invalidate.InvalidateInventory(ctx, codes...)
	}
	s.logger.InfoContext(ctx, "container type migration finished",
		slog.Bool("dry_run", dryRun),
		slog.Int("total", report.Total),
		slog.Int("matched", report.Matched),
		slog.Int("applied", report.Applied),
		slog.Int("failed", report.Failed))
	return report, nil
}

// lock keeps two apply runs from interleaving. An unreachable cache does
// not block the run.
func (s *AdminService) lock(ctx context.Context) (func(), error) {
	acquired, err := s.cache.SetNX(ctx, migrateTypesLockKey, time.Now().UTC(), migrateTypesLockTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "migration lock unavailable, continuing without it",
			slog.String("error", err.Error()))
		return func() {}, nil
	}
	if !acquired {
		return nil, fmt.Errorf("%w: a container type migration is already running", domain.ErrConflict)
	}
	return func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), migrateTypesLockKey); err != nil {
			s.logger.WarnContext(ctx, "failed to release migration lock", slog.String("error", err.Error()))
		}
	}, nil
}

// SeedTestAccounts creates or resets the fixed test accounts. It is refused
// in production.
func (s *AdminService) SeedTestAccounts(ctx context.Context) (*domain.SeedResult, error) {
	if s.production {
		return nil, fmt.Errorf("%w: test accounts cannot be seeded in production", domain.ErrForbidden)
	}

	result := &domain.SeedResult{}
	for _, account := range domain.TestAccounts() {
		hash, err := auth.HashPassword(account.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}

		user := &domain.User{
			ID:           uuid.New(),
			Email:        account.Email,
			Name:         account.Name,
			Role:         account.Role,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		created, err := s.repos.Users.UpsertByEmail(ctx, user)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Existing++
		}
		result.Names = append(result.Names, account.Email)
	}

	s.logger.InfoContext(ctx, "test accounts seeded",
		slog.Int("created", result.Created),
		slog.Int("existing", result.Existing))
	return result, nil
}
