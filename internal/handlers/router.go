// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/ammerola/stowage/internal/handlers/middleware"
)

const apiV1 = "/api/v1"

// Router groups the handlers mounted on the API mux
type Router struct {
	Locations      *LocationHandler
	Racks          *RackHandler
	ContainerTypes *ContainerTypeHandler
	Containers     *ContainerHandler
	Items          *ItemHandler
	Search         *SearchHandler
	Import         *ImportHandler
	Export         *ExportHandler
	Admin          *AdminHandler
	Dashboard      *DashboardHandler
	Health         *HealthHandler
}

// Register mounts every route on mux using Go 1.22 method patterns. Admin
// routes are wrapped in adminOnly.
func (rt *Router) Register(mux *http.ServeMux, adminOnly middleware.Middleware) {
	if rt.Health != nil {
		mux.HandleFunc("GET /health", rt.Health.Health)
		mux.HandleFunc("GET /ready", rt.Health.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", rt.Health.Health)
	}

	mux.HandleFunc("GET "+apiV1+"/locations", rt.Locations.ListLocations)
	mux.HandleFunc("POST "+apiV1+"/locations", rt.Locations.CreateLocation)
	mux.HandleFunc("GET "+apiV1+"/locations/{id}", rt.Locations.GetLocation)
	mux.HandleFunc("PUT "+apiV1+"/locations/{id}", rt.Locations.UpdateLocation)
	mux.HandleFunc("DELETE "+apiV1+"/locations/{id}", rt.Locations.DeleteLocation)
	mux.HandleFunc("GET "+apiV1+"/locations/{id}/racks", rt.Locations.ListLocationRacks)

	mux.HandleFunc("POST "+apiV1+"/racks", rt.Racks.CreateRack)
	mux.HandleFunc("GET "+apiV1+"/racks/{id}", rt.Racks.GetRack)
	mux.HandleFunc("DELETE "+apiV1+"/racks/{id}", rt.Racks.DeleteRack)

	mux.HandleFunc("GET "+apiV1+"/container-types", rt.ContainerTypes.ListContainerTypes)
	mux.HandleFunc("POST "+apiV1+"/container-types", rt.ContainerTypes.CreateContainerType)
	mux.HandleFunc("GET "+apiV1+"/container-types/{id}", rt.ContainerTypes.GetContainerType)
	mux.HandleFunc("PUT "+apiV1+"/container-types/{id}", rt.ContainerTypes.UpdateContainerType)
	mux.HandleFunc("DELETE "+apiV1+"/container-types/{id}", rt.ContainerTypes.DeleteContainerType)

	mux.HandleFunc("GET "+apiV1+"/containers", rt.Containers.ListContainers)
	mux.HandleFunc("POST "+apiV1+"/containers", rt.Containers.CreateContainer)
	mux.HandleFunc("GET "+apiV1+"/containers/{id}", rt.Containers.GetContainer)
	mux.HandleFunc("PUT "+apiV1+"/containers/{id}", rt.Containers.UpdateContainer)
	mux.HandleFunc("DELETE "+apiV1+"/containers/{id}", rt.Containers.DeleteContainer)
	mux.HandleFunc("PUT "+apiV1+"/containers/{id}/slot", rt.Containers.AssignSlot)
	mux.HandleFunc("PUT "+apiV1+"/containers/{id}/parent", rt.Containers.AssignParent)
	mux.HandleFunc("DELETE "+apiV1+"/containers/{id}/placement", rt.Containers.Unplace)
	mux.HandleFunc("GET "+apiV1+"/containers/{id}/fill", rt.Containers.GetFill)

	mux.HandleFunc("GET "+apiV1+"/items", rt.Items.ListItems)
	mux.HandleFunc("POST "+apiV1+"/items", rt.Items.CreateItem)
	mux.HandleFunc("GET "+apiV1+"/items/{id}", rt.Items.GetItem)
	mux.HandleFunc("PUT "+apiV1+"/items/{id}", rt.Items.UpdateItem)
	mux.HandleFunc("DELETE "+apiV1+"/items/{id}", rt.Items.DeleteItem)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/check-out", rt.Items.CheckOut)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/check-in", rt.Items.CheckIn)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/move", rt.Items.Move)
	mux.HandleFunc("PUT "+apiV1+"/items/{id}/slot", rt.Items.AssignItemSlot)
	mux.HandleFunc("DELETE "+apiV1+"/items/{id}/slot", rt.Items.UnrackItem)
	mux.HandleFunc("GET "+apiV1+"/items/{id}/movements", rt.Items.ListMovements)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/photos", rt.Items.UploadPhoto)

	mux.HandleFunc("GET "+apiV1+"/search", rt.Search.Search)
	mux.HandleFunc("GET "+apiV1+"/scan/{code}", rt.Search.Scan)

	mux.HandleFunc("POST "+apiV1+"/import/csv", rt.Import.ImportCSV)
	mux.HandleFunc("POST "+apiV1+"/import/xlsx", rt.Import.ImportXLSX)
	mux.HandleFunc("GET "+apiV1+"/import/status/{jobId}", rt.Import.ImportStatus)
	mux.HandleFunc("GET "+apiV1+"/jobs/{jobId}", rt.Import.ImportStatus)

	mux.HandleFunc("GET "+apiV1+"/export/xlsx", rt.Export.ExportXLSX)

	if rt.Dashboard != nil {
		mux.HandleFunc("GET "+apiV1+"/dashboard", rt.Dashboard.GetDashboard)
	}

	admin := func(h http.HandlerFunc) http.Handler {
		return adminOnly(h)
	}
	mux.Handle("POST "+apiV1+"/admin/container-types/seed", admin(rt.Admin.SeedContainerTypes))
	mux.Handle("POST "+apiV1+"/admin/container-types/migrate", admin(rt.Admin.MigrateContainerTypes))
	mux.Handle("POST "+apiV1+"/admin/test-accounts", admin(rt.Admin.SeedTestAccounts))
}
