package claims

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler provides HTTP endpoints for claim operations.
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
		logger:      logger.With("handler", "claims"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for claim endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/claims",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.File},
			{Method: "GET", Pattern: "/found/{id}", Handler: h.ListByFoundItem},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

// File creates a new claim against a found item from a JSON body.
func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var cmd FileCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrRequestTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := h.sys.File(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, c)
}

// ListByFoundItem returns all claims filed against a found item.
func (h *Handler) ListByFoundItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidClaim)
		return
	}

	claims, err := h.sys.ListByFoundItem(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, claims)
}

// Approve accepts a pending claim.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.sys.Approve)
}

// Reject declines a pending claim.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.sys.Reject)
}

func (h *Handler) review(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*Claim, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidClaim)
		return
	}

	c, err := fn(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}
