// internal/handlers/search.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// SearchHandler serves global search and QR scan deep links
type SearchHandler struct {
	responder
	search       ports.SearchService
	containers   ports.ContainerService
	redirectBase string
}

// NewSearchHandler creates a new search handler. Scans of a known code
// redirect to redirectBase + /containers/{id}.
func NewSearchHandler(search ports.SearchService, containers ports.ContainerService, redirectBase string, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		responder:    responder{logger: logger.With(slog.String("handler", "search"))},
		search:       search,
		containers:   containers,
		redirectBase: strings.TrimRight(redirectBase, "/"),
	}
}

// Search handles GET /api/v1/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondServiceError(w, r, err, "search")
		return
	}
	h.respondJSON(w, http.StatusOK, results)
}

// Scan handles GET /api/v1/scan/{code}
func (h *SearchHandler) Scan(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	container, err := h.containers.GetByCode(r.Context(), code)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusNotFound, "Container not found")
		return
	case err != nil:
		h.respondServiceError(w, r, err, "look up container")
		return
	}

	if wantsJSON(r) {
		h.respondJSON(w, http.StatusOK, container)
		return
	}
	http.Redirect(w, r, h.redirectBase+"/containers/"+container.ID.String(), http.StatusFound)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
