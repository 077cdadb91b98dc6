// internal/core/services/admin_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func newAdminService(f *fixture, cache *mocks.MockCacheRepository, production bool) *services.AdminService {
	return services.NewAdminService(f.repos(), cache, f.cache, services.AdminOptions{
		Production: production,
		BcryptCost: 4,
	}, f.logger)
}

func TestAdminService_SeedContainerTypes(t *testing.T) {
	f := newFixture(t)
	cache := mocks.NewMockCacheRepository(gomock.NewController(t))
	standard := domain.StandardContainerTypes()

	var calls int
	f.types.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ct *domain.ContainerType) (bool, error) {
			calls++
			assert.NotEqual(t, uuid.Nil, ct.ID)
			assert.NotNil(t, ct.Capacity, ct.Name)
			return ct.Name != "Bin", nil
		}).
		Times(len(standard))

	result, err := newAdminService(f, cache, false).SeedContainerTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(standard), calls)
	assert.Equal(t, len(standard)-1, result.Created)
	assert.Equal(t, 1, result.Existing)
	assert.NotContains(t, result.Names, "Bin")
}

func TestAdminService_MigrateContainerTypes(t *testing.T) {
	bin := helpers.CreateTestContainerType()
	tote := helpers.CreateTestContainerType(func(ct *domain.ContainerType) {
		ct.Name = "Tote"
		ct.CodePrefix = "TOTE"
	})
	legacy := []domain.LegacyContainerType{
		{ContainerID: uuid.New(), Code: "BIN-01", LegacyType: "bin"},
		{ContainerID: uuid.New(), Code: "TOTE-4", LegacyType: "27 gal tote"},
		{ContainerID: uuid.New(), Code: "MISC", LegacyType: "shoebox"},
	}

	t.Run("dry_run_reports_without_writing", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		f.containers.EXPECT().ListLegacyTypes(gomock.Any()).Return(legacy, nil)
		f.types.EXPECT().List(gomock.Any()).Return([]domain.ContainerType{*bin, *tote}, nil)

		report, err := newAdminService(f, cache, false).MigrateContainerTypes(context.Background(), true)
		require.NoError(t, err)
		assert.True(t, report.DryRun)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Matched)
		assert.Equal(t, 1, report.Unmatched)
		assert.Zero(t, report.Applied)
		assert.Equal(t, domain.MatchExactName, report.Entries[0].Strategy)
		assert.Equal(t, domain.MatchNone, report.Entries[2].Strategy)
		assert.Zero(t, f.flushes)
	})

	t.Run("apply_counts_failures_and_releases_lock", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		cache.EXPECT().SetNX(gomock.Any(), "lock:container_types:migrate", gomock.Any(), gomock.Any()).Return(true, nil)
		cache.EXPECT().Delete(gomock.Any(), "lock:container_types:migrate").Return(nil)
		f.containers.EXPECT().ListLegacyTypes(gomock.Any()).Return(legacy, nil)
		f.types.EXPECT().List(gomock.Any()).Return([]domain.ContainerType{*bin, *tote}, nil)
		f.containers.EXPECT().SetContainerType(gomock.Any(), legacy[0].ContainerID, bin.ID).Return(nil)
		f.containers.EXPECT().SetContainerType(gomock.Any(), legacy[1].ContainerID, tote.ID).Return(errors.New("row locked"))

		report, err := newAdminService(f, cache, false).MigrateContainerTypes(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Applied)
		assert.Equal(t, 1, report.Failed)
		assert.True(t, report.Entries[0].Applied)
		assert.Equal(t, "row locked", report.Entries[1].Error)
		assert.Equal(t, []string{"BIN-01"}, f.invalidated)
	})

	t.Run("concurrent_apply_is_refused", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		cache.EXPECT().SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := newAdminService(f, cache, false).MigrateContainerTypes(context.Background(), false)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unreachable_cache_does_not_block", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		cache.EXPECT().SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("dial tcp: refused"))
		f.containers.EXPECT().ListLegacyTypes(gomock.Any()).Return(nil, nil)
		f.types.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := newAdminService(f, cache, false).MigrateContainerTypes(context.Background(), false)
		require.NoError(t, err)
		assert.Zero(t, report.Total)
		assert.NotNil(t, report.Entries)
	})
}

func TestAdminService_SeedTestAccounts(t *testing.T) {
	t.Run("refused_in_production", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))

		_, err := newAdminService(f, cache, true).SeedTestAccounts(context.Background())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("upserts_hashed_accounts", func(t *testing.T) {
		f := newFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		accounts := domain.TestAccounts()

		f.users.EXPECT().
			UpsertByEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (bool, error) {
				for _, a := range accounts {
					if a.Email == u.Email {
						assert.True(t, auth.VerifyPassword(u.PasswordHash, a.Password))
						assert.Equal(t, a.Role, u.Role)
					}
				}
				return u.Role == domain.RoleAdmin, nil
			}).
			Times(len(accounts))

		result, err := newAdminService(f, cache, false).SeedTestAccounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Existing)
		assert.Len(t, result.Names, len(accounts))
	})
}
