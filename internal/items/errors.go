package items

import (
	"errors"
	"net/http"
)

// Domain errors for item report operations.
var (
	ErrNotFound          = errors.New("item not found")
	ErrDuplicate         = errors.New("item already exists")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrInvalidStatus     = errors.New("invalid item status")
	ErrInvalidID         = errors.New("invalid item id")
	ErrInvalidReport     = errors.New("invalid item report")
	ErrInvalidTransition = errors.New("item status does not allow this transition")
	ErrRequestTooLarge   = errors.New("request body exceeds maximum size")
)

// MapHTTPStatus maps item domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidTransition) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrRequestTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidItemType) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidReport) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
