// internal/core/services/fixture_test.go
package services_test

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

// fixture wires every service dependency to a mock. The transaction manager
// runs the callback inline and cache invalidation is always allowed.
type fixture struct {
	tx         *mocks.MockTxManager
	locations  *mocks.MockLocationRepository
	racks      *mocks.MockRackRepository
	slots      *mocks.MockSlotRepository
	containers *mocks.MockContainerRepository
	types      *mocks.MockContainerTypeRepository
	items      *mocks.MockItemRepository
	movements  *mocks.MockMovementRepository
	users      *mocks.MockUserRepository
	cache      *mocks.MockCacheInvalidator
	reads      *mocks.MockReadCache
	logger     *slog.Logger

	// invalidated collects every code passed to InvalidateInventory
	invalidated []string
	flushes     int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		tx:         mocks.NewMockTxManager(ctrl),
		locations:  mocks.NewMockLocationRepository(ctrl),
		racks:      mocks.NewMockRackRepository(ctrl),
		slots:      mocks.NewMockSlotRepository(ctrl),
		containers: mocks.NewMockContainerRepository(ctrl),
		types:      mocks.NewMockContainerTypeRepository(ctrl),
		items:      mocks.NewMockItemRepository(ctrl),
		movements:  mocks.NewMockMovementRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		cache:      mocks.NewMockCacheInvalidator(ctrl),
		reads:      mocks.NewMockReadCache(ctrl),
		logger:     helpers.TestLogger(),
	}

	f.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	f.cache.EXPECT().
		InvalidateInventory(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, codes ...string) {
			f.flushes++
			f.invalidated = append(f.invalidated, codes...)
		}).
		AnyTimes()
	return f
}

func (f *fixture) repos() services.Repositories {
	return services.Repositories{
		Locations:      f.locations,
		Racks:          f.racks,
		Slots:          f.slots,
		Containers:     f.containers,
		ContainerTypes: f.types,
		Items:          f.items,
		Movements:      f.movements,
		Users:          f.users,
	}
}
