package matches

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/middleware"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler provides HTTP endpoints for matching engine operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and request
// body size limit.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "matches"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for match endpoints. Saved
// matches hang off the item they belong to; generation and status
// transitions live under the matches prefix.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/matches/lost/{id}", Handler: h.FindForLost},
			{Method: "GET", Pattern: "/matches/found/{id}", Handler: h.FindForFound},
			{Method: "POST", Pattern: "/matches/{id}/status", Handler: h.SetStatus},
			{Method: "GET", Pattern: "/items/{itemType}/{id}/matches", Handler: h.ListForItem},
		},
	}
}

// FindForLost generates, persists, and returns match suggestions for an
// approved lost item.
func (h *Handler) FindForLost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	suggestions, err := h.sys.FindForLost(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, suggestions)
}

// FindForFound generates, persists, and returns match suggestions for an
// approved found item.
func (h *Handler) FindForFound(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	suggestions, err := h.sys.FindForFound(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, suggestions)
}

// ListForItem returns the saved matches for an item, optionally filtered
// by match status.
func (h *Handler) ListForItem(w http.ResponseWriter, r *http.Request) {
	t, err := items.ParseItemType(r.PathValue("itemType"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		parsed, err := ParseStatus(s)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		status = &parsed
	}

	list, err := h.sys.ListForItem(r.Context(), t, id, status)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// SetStatus confirms or dismisses a suggestion on behalf of the acting
// user identified by the X-User-ID header.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	actor, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoActor)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var cmd StatusCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrRequestTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	m, err := h.sys.SetStatus(r.Context(), id, actor, cmd.Status)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, m)
}
