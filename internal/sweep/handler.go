package sweep

import (
	"log/slog"
	"net/http"

	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler provides the HTTP endpoint for on-demand sweep execution.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sweep"),
	}
}

// Routes returns the route group definition for the sweep endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/matches",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/sweep", Handler: h.Run},
		},
	}
}

// Run executes a sweep pass and returns its counters.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Run(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
