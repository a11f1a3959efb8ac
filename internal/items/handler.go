package items

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/handlers"
	"github.com/reclaim-app/reclaim/pkg/pagination"
	"github.com/reclaim-app/reclaim/pkg/routes"
)

// Handler provides HTTP endpoints for item report operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	maxBodySize int64
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, pagination
// config, and request body size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxBodySize int64,
) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "items"),
		pagination:  pagination,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for item endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{itemType}", Handler: h.List},
			{Method: "GET", Pattern: "/{itemType}/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/{itemType}", Handler: h.Report},
			{Method: "POST", Pattern: "/{itemType}/search", Handler: h.Search},
			{Method: "POST", Pattern: "/{itemType}/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{itemType}/{id}/reject", Handler: h.Reject},
			{Method: "POST", Pattern: "/{itemType}/{id}/resolve", Handler: h.Resolve},
			{Method: "POST", Pattern: "/{itemType}/{id}/archive", Handler: h.Archive},
		},
	}
}

// List returns a paginated list of items with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	t, err := ParseItemType(r.PathValue("itemType"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), t, page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single item by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	t, id, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	item, err := h.sys.Find(r.Context(), t, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// Report files a new lost or found report from a JSON body.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	t, err := ParseItemType(r.PathValue("itemType"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd ReportCommand
	if !h.decode(w, r, &cmd) {
		return
	}

	item, err := h.sys.Report(r.Context(), t, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching items.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	t, err := ParseItemType(r.PathValue("itemType"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var req SearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), t, req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Approve moves a pending item into the approved pool.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sys.Approve)
}

// Reject declines a pending item.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sys.Reject)
}

// Resolve marks an item as returned to its owner.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sys.Resolve)
}

// Archive retires an item from active circulation.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sys.Archive)
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, ItemType, uuid.UUID) (*Item, error),
) {
	t, id, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	item, err := fn(r.Context(), t, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request) (ItemType, uuid.UUID, bool) {
	t, err := ParseItemType(r.PathValue("itemType"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return "", uuid.Nil, false
	}

	return t, id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrRequestTooLarge)
			return false
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return false
	}

	return true
}
