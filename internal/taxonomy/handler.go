package taxonomy

import (
	"log/slog"
	"net/http"

	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler provides HTTP endpoints for taxonomy reference data.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "taxonomy"),
	}
}

// Routes returns the route group definition for taxonomy endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/categories", Handler: h.Categories},
			{Method: "GET", Pattern: "/locations", Handler: h.Locations},
		},
	}
}

// Categories returns all item categories ordered by name.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.sys.Categories(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, categories)
}

// Locations returns all known locations ordered by name.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.sys.Locations(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, locations)
}
