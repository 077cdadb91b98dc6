//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/stowage/internal/adapters/db"
	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/test/helpers"
)

type discardInvalidations struct{}

func (discardInvalidations) InvalidateInventory(context.Context, ...string) {}

type RepositoryIntegrationSuite struct {
	suite.Suite
	testDB     *helpers.TestDB
	tx         ports.TxManager
	locations  ports.LocationRepository
	racks      ports.RackRepository
	slots      ports.SlotRepository
	containers ports.ContainerRepository
	types      ports.ContainerTypeRepository
	items      ports.ItemRepository
	movements  ports.MovementRepository
	users      ports.UserRepository
	ctx        context.Context
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	database := s.testDB.Database

	s.tx = database
	s.locations = db.NewLocationRepository(database, logger)
	s.racks = db.NewRackRepository(database, logger)
	s.slots = db.NewSlotRepository(database, logger)
	s.containers = db.NewContainerRepository(database, logger)
	s.types = db.NewContainerTypeRepository(database, logger)
	s.items = db.NewItemRepository(database, logger)
	s.movements = db.NewMovementRepository(database, logger)
	s.users = db.NewUserRepository(database, logger)
	s.ctx = context.Background()
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Database.Close()
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

// rackWithSlots stores a location and a rack with its full slot set
func (s *RepositoryIntegrationSuite) rackWithSlots() (*domain.Rack, []domain.Slot) {
	loc := helpers.CreateTestLocation()
	s.Require().NoError(s.locations.Save(s.ctx, loc))

	rack := helpers.CreateTestRack(loc.ID)
	s.Require().NoError(s.racks.Save(s.ctx, rack))
	s.Require().NoError(s.slots.SaveBatch(s.ctx, rack.BuildSlots()))

	slots, err := s.slots.ListByRack(s.ctx, rack.ID)
	s.Require().NoError(err)
	s.Require().Len(slots, rack.Rows*rack.Cols)
	return rack, slots
}

func (s *RepositoryIntegrationSuite) container(code string) *domain.Container {
	c := helpers.CreateTestContainer(func(c *domain.Container) {
		c.Code = code
		c.Label = code
	})
	s.Require().NoError(s.containers.Save(s.ctx, c))
	return c
}

func (s *RepositoryIntegrationSuite) TestSlotClaim_CompareAndSwap() {
	_, slots := s.rackWithSlots()
	slot := slots[0]
	a := s.container("BIN-01")
	b := s.container("BIN-02")

	s.Require().NoError(s.slots.Claim(s.ctx, slot.ID, a.ID))
	// Re-claiming by the holder is a no-op success
	s.Require().NoError(s.slots.Claim(s.ctx, slot.ID, a.ID))

	err := s.slots.Claim(s.ctx, slot.ID, b.ID)
	s.ErrorIs(err, domain.ErrConflict)

	err = s.slots.Claim(s.ctx, uuid.New(), b.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	got, err := s.slots.FindByID(s.ctx, slot.ID)
	s.Require().NoError(err)
	s.Equal(a.ID, *got.ContainerID)
	s.Equal(int64(1), got.Version, "re-claim by the holder must not bump the version")

	s.ErrorIs(s.slots.Release(s.ctx, slot.ID, b.ID), domain.ErrConflict)
	s.Require().NoError(s.slots.Release(s.ctx, slot.ID, a.ID))

	got, err = s.slots.FindByID(s.ctx, slot.ID)
	s.Require().NoError(err)
	s.Nil(got.ContainerID)
}

func (s *RepositoryIntegrationSuite) TestSlotClaim_ConcurrentSingleWinner() {
	_, slots := s.rackWithSlots()
	slot := slots[1]

	const contenders = 8
	ids := make([]uuid.UUID, contenders)
	for i := range ids {
		ids[i] = s.container("TOTE-" + uuid.NewString()[:8]).ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(containerID uuid.UUID) {
			defer wg.Done()
			err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
				if err := s.slots.Claim(ctx, slot.ID, containerID); err != nil {
					return err
				}
				return s.containers.UpdatePlacement(ctx, containerID, domain.RackedIn(slot.ID))
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				s.T().Errorf("unexpected claim error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(contenders-1, conflicts)

	occupied, err := s.slots.CountOccupied(s.ctx, slot.RackID)
	s.Require().NoError(err)
	s.Equal(int64(1), occupied)
}

func (s *RepositoryIntegrationSuite) TestTransaction_RollsBackClaim() {
	_, slots := s.rackWithSlots()
	c := s.container("CRATE-1")

	boom := errors.New("boom")
	err := s.tx.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.slots.Claim(ctx, slots[2].ID, c.ID); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.slots.FindByID(s.ctx, slots[2].ID)
	s.Require().NoError(err)
	s.Nil(got.ContainerID)
}

func (s *RepositoryIntegrationSuite) TestContainer_PlacementRoundTrip() {
	_, slots := s.rackWithSlots()
	parent := s.container("BIN-10")
	child := s.container("BOOKBOX-1")

	s.Require().NoError(s.slots.Claim(s.ctx, slots[0].ID, parent.ID))
	s.Require().NoError(s.containers.UpdatePlacement(s.ctx, parent.ID, domain.RackedIn(slots[0].ID)))
	s.Require().NoError(s.containers.UpdatePlacement(s.ctx, child.ID, domain.NestedIn(parent.ID)))

	got, err := s.containers.FindByID(s.ctx, parent.ID)
	s.Require().NoError(err)
	slotID, ok := got.Placement.SlotID()
	s.True(ok)
	s.Equal(slots[0].ID, slotID)

	bySlot, err := s.containers.FindBySlot(s.ctx, slots[0].ID)
	s.Require().NoError(err)
	s.Equal(parent.ID, bySlot.ID)

	children, err := s.containers.ListChildren(s.ctx, parent.ID)
	s.Require().NoError(err)
	s.Len(children, 1)

	ancestors, err := s.containers.Ancestors(s.ctx, child.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{parent.ID}, ancestors)

	n, err := s.containers.DetachChildren(s.ctx, parent.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err = s.containers.FindByID(s.ctx, child.ID)
	s.Require().NoError(err)
	s.Equal(domain.PlacementUnplaced, got.Placement.Kind())
}

func (s *RepositoryIntegrationSuite) TestContainer_SelfNestRejectedBySchema() {
	c := s.container("BIN-99")
	err := s.containers.UpdatePlacement(s.ctx, c.ID, domain.NestedIn(c.ID))
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *RepositoryIntegrationSuite) TestContainer_UpsertByCode() {
	c := helpers.CreateTestContainer(func(c *domain.Container) { c.Description = "" })
	created, err := s.containers.UpsertByCode(s.ctx, c)
	s.Require().NoError(err)
	s.True(created)
	firstID := c.ID

	again := helpers.CreateTestContainer(func(c *domain.Container) { c.Description = "Scarves" })
	created, err = s.containers.UpsertByCode(s.ctx, again)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(firstID, again.ID)
	s.Equal("Scarves", again.Description)

	dup := helpers.CreateTestContainer()
	s.ErrorIs(s.containers.Save(s.ctx, dup), domain.ErrConflict)
}

func (s *RepositoryIntegrationSuite) TestSearch_EscapesWildcards() {
	s.container("BIN-01")
	pct := helpers.CreateTestContainer(func(c *domain.Container) {
		c.Code = "BIN-02"
		c.Label = "50% off"
	})
	s.Require().NoError(s.containers.Save(s.ctx, pct))

	got, err := s.containers.Search(s.ctx, "0%", domain.SearchContainerLimit)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("BIN-02", got[0].Code)

	got, err = s.containers.Search(s.ctx, "bin", domain.SearchContainerLimit)
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *RepositoryIntegrationSuite) TestContainerType_InsertIfAbsent() {
	ct := helpers.CreateTestContainerType()
	inserted, err := s.types.InsertIfAbsent(s.ctx, ct)
	s.Require().NoError(err)
	s.True(inserted)

	inserted, err = s.types.InsertIfAbsent(s.ctx, helpers.CreateTestContainerType())
	s.Require().NoError(err)
	s.False(inserted)

	all, err := s.types.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
	s.True(all[0].Capacity.Equal(*ct.Capacity))
}

func (s *RepositoryIntegrationSuite) TestItems_AndMovements() {
	c := s.container("TOTE-7")
	item := helpers.CreateTestItem(func(i *domain.Item) { i.ContainerID = &c.ID })
	s.Require().NoError(s.items.Save(s.ctx, item))

	byContainer, err := s.items.ListByContainer(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().Len(byContainer, 1)
	s.Equal([]string{"winter"}, byContainer[0].Tags)

	m := &domain.Movement{
		ID:              uuid.New(),
		ItemID:          item.ID,
		Action:          domain.ActionCheckOut,
		FromContainerID: &c.ID,
		CreatedAt:       time.Now(),
	}
	s.Require().NoError(s.movements.Append(s.ctx, m))

	last, err := s.movements.LastByItem(s.ctx, item.ID, domain.ActionCheckOut)
	s.Require().NoError(err)
	s.Require().NotNil(last)
	s.Equal(c.ID, *last.FromContainerID)

	_, err = s.testDB.PgxPool.Exec(s.ctx, `UPDATE movements SET note = 'edited' WHERE id = $1`, m.ID)
	s.Error(err, "movements are append-only")

	loose, err := s.items.DetachFromContainer(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().Len(loose, 1)
	s.Equal(item.ID, loose[0].ID)
	s.Nil(loose[0].ContainerID)
}

func (s *RepositoryIntegrationSuite) TestSlotClaimForItem() {
	_, slots := s.rackWithSlots()
	trunk := helpers.CreateTestItem(func(i *domain.Item) { i.IsContainer = true })
	s.Require().NoError(s.items.Save(s.ctx, trunk))
	bin := s.container("BIN-30")

	s.Require().NoError(s.slots.ClaimForItem(s.ctx, slots[0].ID, trunk.ID))
	s.Require().NoError(s.slots.ClaimForItem(s.ctx, slots[0].ID, trunk.ID))
	s.Require().NoError(s.items.UpdateSlot(s.ctx, trunk.ID, &slots[0].ID))

	s.ErrorIs(s.slots.Claim(s.ctx, slots[0].ID, bin.ID), domain.ErrConflict)
	s.Require().NoError(s.slots.Claim(s.ctx, slots[1].ID, bin.ID))
	s.ErrorIs(s.slots.ClaimForItem(s.ctx, slots[1].ID, trunk.ID), domain.ErrConflict)

	got, err := s.slots.FindByID(s.ctx, slots[0].ID)
	s.Require().NoError(err)
	s.Equal(trunk.ID, *got.ItemID)
	s.Equal(int64(1), got.Version)

	occupied, err := s.slots.CountOccupied(s.ctx, slots[0].RackID)
	s.Require().NoError(err)
	s.Equal(int64(2), occupied)

	racked, err := s.items.FindByID(s.ctx, trunk.ID)
	s.Require().NoError(err)
	s.Equal(slots[0].ID, *racked.CurrentSlotID)

	s.ErrorIs(s.slots.ReleaseForItem(s.ctx, slots[0].ID, uuid.New()), domain.ErrConflict)
	s.Require().NoError(s.slots.ReleaseForItem(s.ctx, slots[0].ID, trunk.ID))
}

func (s *RepositoryIntegrationSuite) TestPlacement_ConcurrentOppositeNesting() {
	placement := services.NewPlacementService(s.tx, services.Repositories{
		Slots:      s.slots,
		Containers: s.containers,
		Items:      s.items,
		Movements:  s.movements,
	}, discardInvalidations{}, helpers.TestLogger())

	for round := 0; round < 10; round++ {
		a := s.container("BOX-A" + uuid.NewString()[:6])
		b := s.container("BOX-B" + uuid.NewString()[:6])

		var (
			wg     sync.WaitGroup
			errs   [2]error
			starts = make(chan struct{})
		)
		pairs := [2][2]uuid.UUID{{a.ID, b.ID}, {b.ID, a.ID}}
		for i, pair := range pairs {
			wg.Add(1)
			go func(i int, child, parent uuid.UUID) {
				defer wg.Done()
				<-starts
				_, errs[i] = placement.AssignToParent(s.ctx, child, &parent)
			}(i, pair[0], pair[1])
		}
		close(starts)
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			s.ErrorIs(err, domain.ErrValidation)
		}
		s.Equal(1, wins, "round %d: exactly one nesting must win", round)

		chain, err := s.containers.Ancestors(s.ctx, a.ID)
		s.Require().NoError(err)
		s.LessOrEqual(len(chain), 1)
	}
}

func (s *RepositoryIntegrationSuite) TestUsers_UpsertByEmail() {
	u := &domain.User{ID: uuid.New(), Email: "admin@stowage.test", Name: "Admin", Role: domain.RoleAdmin, PasswordHash: "x", CreatedAt: time.Now()}
	created, err := s.users.UpsertByEmail(s.ctx, u)
	s.Require().NoError(err)
	s.True(created)

	u2 := *u
	u2.ID = uuid.New()
	created, err = s.users.UpsertByEmail(s.ctx, &u2)
	s.Require().NoError(err)
	s.False(created)

	found, err := s.users.FindByEmail(s.ctx, "admin@stowage.test")
	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, found.Role)
}
