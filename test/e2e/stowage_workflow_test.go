//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/suite"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/stowage/internal/adapters/db"
	"github.com/ammerola/stowage/internal/adapters/events"
	redis_a "github.com/ammerola/stowage/internal/adapters/redis_adapter"
	"github.com/ammerola/stowage/internal/adapters/storage"
	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/internal/handlers/middleware"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/workers"
	"github.com/ammerola/stowage/test/helpers"
)

// inlineQueue runs enqueued tasks synchronously through the worker mux.
type inlineQueue struct {
	mux *asynq.ServeMux
}

func (q *inlineQueue) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if err := q.mux.ProcessTask(context.Background(), task); err != nil {
		return nil, err
	}
	return &asynq.TaskInfo{ID: uuid.NewString(), Type: task.Type(), Queue: "default"}, nil
}

type StowageE2ESuite struct {
	suite.Suite
	server  *httptest.Server
	client  *http.Client
	baseURL string
	testDB  *helpers.TestDB
	tokens  *auth.TokenManager
	admin   string
}

func (s *StowageE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	testRedis := helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer(testRedis)
	s.client = &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	s.baseURL = s.server.URL + "/api/v1"

	token, _, err := s.tokens.Issue(&domain.User{ID: uuid.New(), Email: "admin@stowage.test", Role: domain.RoleAdmin})
	s.Require().NoError(err)
	s.admin = "Bearer " + token
}

func (s *StowageE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *StowageE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *StowageE2ESuite) startTestServer(testRedis *helpers.TestRedis) *httptest.Server {
	logger := helpers.TestLogger()
	database := s.testDB.Database

	cache := redis_a.NewCache(testRedis.Client, time.Minute, logger)
	cacheManager := redis_a.NewCacheManager(cache, time.Minute, time.Minute, logger)
	jobs := redis_a.NewJobTracker(cache, redis_a.DefaultJobTTL, logger)

	repos := services.Repositories{
		Locations:      db.NewLocationRepository(database, logger),
		Racks:          db.NewRackRepository(database, logger),
		Slots:          db.NewSlotRepository(database, logger),
		Containers:     db.NewContainerRepository(database, logger),
		ContainerTypes: db.NewContainerTypeRepository(database, logger),
		Items:          db.NewItemRepository(database, logger),
		Movements:      db.NewMovementRepository(database, logger),
		Users:          db.NewUserRepository(database, logger),
	}

	placement := services.NewPlacementService(database, repos, cacheManager, logger)
	containerService := services.NewContainerService(database, repos, placement, cacheManager, cacheManager, logger)
	photos := storage.NewLocalStorage(s.T().TempDir(), "/files/", logger)
	itemService := services.NewItemService(database, repos, photos, events.NoopPublisher{}, cacheManager, "photos", logger)
	adminService := services.NewAdminService(repos, cache, cacheManager, services.AdminOptions{BcryptCost: 4}, logger)
	importService := services.NewImportService(database, repos, cacheManager, logger)

	taskMux := asynq.NewServeMux()
	importProcessor := workers.NewImportProcessor(importService, jobs, logger)
	taskMux.HandleFunc(workers.TypeImportCSV, importProcessor.ProcessCSV)
	taskMux.HandleFunc(workers.TypeImportXLSX, importProcessor.ProcessXLSX)
	migrateProcessor := workers.NewMigrateProcessor(adminService, jobs, logger)
	taskMux.HandleFunc(workers.TypeMigrateTypes, migrateProcessor.ProcessMigrate)
	queue := &inlineQueue{mux: taskMux}

	router := &handlers.Router{
		Locations:      handlers.NewLocationHandler(services.NewLocationService(repos, cacheManager, logger), logger),
		Racks:          handlers.NewRackHandler(services.NewRackService(database, repos, logger), logger),
		ContainerTypes: handlers.NewContainerTypeHandler(services.NewContainerTypeService(repos, logger), logger),
		Containers:     handlers.NewContainerHandler(containerService, placement, logger),
		Items:          handlers.NewItemHandler(itemService, placement, 1<<20, logger),
		Search:         handlers.NewSearchHandler(services.NewSearchService(repos, cacheManager, logger), containerService, "http://ui.test", logger),
		Import:         handlers.NewImportHandler(jobs, queue, 1<<20, s.T().TempDir(), logger),
		Export:         handlers.NewExportHandler(containerService, itemService, logger),
		Admin:          handlers.NewAdminHandler(adminService, jobs, queue, logger),
	}

	s.tokens = auth.NewTokenManager("e2e-secret-e2e-secret-e2e-secret", "stowage-e2e", time.Hour)
	mux := http.NewServeMux()
	router.Register(mux, middleware.RequireRole(domain.RoleAdmin, true))

	return httptest.NewServer(middleware.Chain(mux,
		middleware.RequestID("X-Request-ID"),
		middleware.Recovery(logger),
		middleware.Authenticate(s.tokens, false, logger),
	))
}

func (s *StowageE2ESuite) TestRackPlacementWorkflow() {
	// 1. Location and a 2x2 rack
	var location domain.Location
	resp := s.makeRequest(http.MethodPost, "/locations", map[string]any{"name": "Garage"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &location)

	var grid domain.RackGrid
	resp = s.makeRequest(http.MethodPost, "/racks", map[string]any{
		"name": "Shelf A", "rows": 2, "cols": 2, "location_id": location.ID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &grid)
	s.Require().Len(grid.Cells, 4)
	slotID := grid.Cells[0].Slot.ID

	// 2. A racked crate and a bin nested inside it
	var crate domain.Container
	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Crate #1", "slot_id": slotID})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &crate)
	s.Equal("CRATE-1", crate.Code)
	s.Equal(domain.PlacementRacked, crate.Placement.Kind())

	var bin domain.Container
	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Bin #2", "parent_container_id": crate.ID})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &bin)

	// 3. The occupied slot refuses a second container
	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Tote #3", "slot_id": slotID})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 4. The crate cannot be nested inside its own child
	resp = s.makeRequest(http.MethodPut, fmt.Sprintf("/containers/%s/parent", crate.ID), map[string]any{"parent_container_id": bin.ID})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 5. The grid shows the crate in its slot
	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/racks/%s", grid.Rack.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &grid)
	s.Require().NotNil(grid.Cells[0].Container)
	s.Equal("CRATE-1", grid.Cells[0].Container.Code)

	// 6. Detail resolves the location through the parent chain
	var detail domain.ContainerDetail
	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/containers/%s", bin.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &detail)
	s.Require().NotNil(detail.Parent)
	s.Equal(crate.ID, detail.Parent.ID)
	s.Require().NotNil(detail.Slot)
	s.Equal(slotID, detail.Slot.ID)
	s.Require().NotNil(detail.Location)
	s.Equal("Garage", detail.Location.Name)

	// 7. Scanning the code redirects to the container page
	resp = s.makeRequest(http.MethodGet, "/scan/CRATE-1", nil)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("http://ui.test/containers/"+crate.ID.String(), resp.Header.Get("Location"))
	resp.Body.Close()

	// 8. Unplacing frees the slot
	resp = s.makeRequest(http.MethodDelete, fmt.Sprintf("/containers/%s/placement", crate.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Tote #3", "slot_id": slotID})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func (s *StowageE2ESuite) TestItemMovementWorkflow() {
	var garage, attic domain.Container
	resp := s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Bin #1"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &garage)
	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Bin #2"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &attic)

	var item domain.Item
	resp = s.makeRequest(http.MethodPost, "/items", map[string]any{
		"name": "Cordless drill", "category": "tools", "quantity": 1, "container_id": garage.ID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &item)

	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/items/%s/check-out", item.ID), map[string]any{"note": "deck repair"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Checking out twice is a conflict
	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/items/%s/check-out", item.ID), map[string]any{})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/items/%s/check-in", item.ID), map[string]any{"container_id": attic.ID})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var history []domain.Movement
	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/items/%s/movements", item.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &history)
	s.Require().Len(history, 2)
	s.Equal(domain.ActionCheckIn, history[0].Action)
	s.Equal(domain.ActionCheckOut, history[1].Action)

	var results domain.SearchResults
	resp = s.makeRequest(http.MethodGet, "/search?q=drill", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &results)
	s.Require().Len(results.Items, 1)
	s.Require().NotNil(results.Items[0].ContainerID)
	s.Equal(attic.ID, *results.Items[0].ContainerID)

	// Deleting the container leaves the item loose
	resp = s.makeRequest(http.MethodDelete, fmt.Sprintf("/containers/%s", attic.ID), nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/items/%s", item.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &item)
	s.Nil(item.ContainerID)

	// and records where it came from
	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/items/%s/movements", item.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &history)
	s.Require().Len(history, 3)
	s.Equal(domain.ActionMove, history[0].Action)
	s.Require().NotNil(history[0].FromContainerID)
	s.Equal(attic.ID, *history[0].FromContainerID)
	s.Nil(history[0].ToContainerID)
}

func (s *StowageE2ESuite) TestContainerItemRackWorkflow() {
	var location domain.Location
	resp := s.makeRequest(http.MethodPost, "/locations", map[string]any{"name": "Basement"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &location)

	var grid domain.RackGrid
	resp = s.makeRequest(http.MethodPost, "/racks", map[string]any{
		"name": "Shelf B", "rows": 1, "cols": 2, "location_id": location.ID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &grid)
	slotID := grid.Cells[0].Slot.ID

	var trunk domain.Item
	resp = s.makeRequest(http.MethodPost, "/items", map[string]any{"name": "Steamer trunk", "is_container": true})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.decodeResponse(resp, &trunk)

	resp = s.makeRequest(http.MethodPut, fmt.Sprintf("/items/%s/slot", trunk.ID), map[string]any{"slot_id": slotID})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &trunk)
	s.Require().NotNil(trunk.CurrentSlotID)
	s.Equal(slotID, *trunk.CurrentSlotID)

	// The slot now refuses a container
	resp = s.makeRequest(http.MethodPost, "/containers", map[string]any{"label": "Tote #9", "slot_id": slotID})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/racks/%s", grid.Rack.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &grid)
	s.Require().NotNil(grid.Cells[0].Item)
	s.Equal("Steamer trunk", grid.Cells[0].Item.Name)

	resp = s.makeRequest(http.MethodDelete, fmt.Sprintf("/items/%s/slot", trunk.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var history []domain.Movement
	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/items/%s/movements", trunk.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &history)
	s.Require().Len(history, 2)
	s.Equal(&slotID, history[0].FromSlotID)
	s.Equal(&slotID, history[1].ToSlotID)
}

func (s *StowageE2ESuite) TestImportAndExportWorkflow() {
	csvData := []byte(`Timestamp,Tote Number,Tote Description,Tote Location,Item Name,Category,Condition or Status,QTY,Expiration Date if One,Item Photo
1/2/2024 10:00:00,Bin #1,Winter,Garage,Scarf,Clothing,Good,2,,
,Bin #1,,,Hat,,,,,
,,,,Orphan,,,,,
`)

	resp := s.uploadFile("/import/csv?expand_quantity=true", "intake.csv", csvData)
	s.Require().Equal(http.StatusAccepted, resp.StatusCode)
	var queued map[string]any
	s.decodeResponse(resp, &queued)
	jobID := queued["job_id"].(string)

	var job domain.Job
	resp = s.makeRequest(http.MethodGet, "/jobs/"+jobID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &job)
	s.Equal(domain.JobCompleted, job.State)

	var items ports.ListResult[domain.Item]
	resp = s.makeRequest(http.MethodGet, "/items?q=scarf", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &items)
	s.EqualValues(2, items.TotalCount)

	resp = s.makeRequest(http.MethodGet, "/export/xlsx", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)

	file, err := xlsx.OpenBinary(body)
	s.Require().NoError(err)
	sheet, ok := file.Sheet["Containers"]
	s.Require().True(ok)
	cell, err := sheet.Cell(1, 0)
	s.Require().NoError(err)
	s.Equal("BIN-1", cell.Value)
}

func (s *StowageE2ESuite) TestAdminWorkflow() {
	resp := s.makeRequest(http.MethodPost, "/admin/container-types/seed", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeAdminRequest(http.MethodPost, "/admin/container-types/seed", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var seeded domain.SeedResult
	s.decodeResponse(resp, &seeded)
	s.Equal(len(domain.StandardContainerTypes()), seeded.Created)

	// Reseeding only reports existing types
	resp = s.makeAdminRequest(http.MethodPost, "/admin/container-types/seed", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &seeded)
	s.Equal(0, seeded.Created)

	resp = s.makeAdminRequest(http.MethodPost, "/admin/container-types/migrate?mode=dry-run", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var report domain.TypeMigrationReport
	s.decodeResponse(resp, &report)
	s.True(report.DryRun)
}

// Helper methods

func (s *StowageE2ESuite) makeRequest(method, path string, body any) *http.Response {
	return s.do(method, path, body, "")
}

func (s *StowageE2ESuite) makeAdminRequest(method, path string, body any) *http.Response {
	return s.do(method, path, body, s.admin)
}

func (s *StowageE2ESuite) do(method, path string, body any, authorization string) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *StowageE2ESuite) uploadFile(path, filename string, content []byte) *http.Response {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *StowageE2ESuite) decodeResponse(resp *http.Response, v any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func TestStowageE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(StowageE2ESuite))
}
