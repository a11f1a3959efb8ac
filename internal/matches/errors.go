package matches

import (
	"errors"
	"net/http"
)

// Domain errors for match operations.
var (
	ErrNotFound          = errors.New("match not found")
	ErrDuplicate         = errors.New("match already recorded for this item pair")
	ErrItemNotFound      = errors.New("item not found")
	ErrItemNotEligible   = errors.New("item is not approved for matching")
	ErrForbidden         = errors.New("user does not own either matched item")
	ErrNoActor           = errors.New("missing or invalid X-User-ID header")
	ErrInvalidStatus     = errors.New("invalid match status")
	ErrInvalidScore      = errors.New("similarity score outside valid range")
	ErrInvalidID         = errors.New("invalid match id")
	ErrInvalidTransition = errors.New("match status does not allow this transition")
	ErrRequestTooLarge   = errors.New("request body exceeds maximum size")
)

// MapHTTPStatus maps match domain errors to appropriate HTTP status codes.
// Ineligible anchors map to 404 alongside missing ones so callers cannot
// probe for unapproved reports.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrItemNotEligible) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidTransition) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrRequestTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidScore) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrNoActor) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
