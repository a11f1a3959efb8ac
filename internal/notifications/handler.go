package notifications

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler exposes notification operations over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given system.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "notifications"),
	}
}

// Routes returns the notification route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/notifications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{userId}", Handler: h.ListForUser},
			{Method: "POST", Pattern: "/{id}/read", Handler: h.MarkRead},
		},
	}
}

// ListForUser handles GET /notifications/{userId}. The unread query flag
// restricts the result to unread notifications.
func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	result, err := h.sys.ListForUser(r.Context(), userID, unreadOnly)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// MarkRead handles POST /notifications/{id}/read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	result, err := h.sys.MarkRead(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
