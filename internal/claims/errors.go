package claims

import (
	"errors"
	"net/http"
)

// Domain errors for claim operations.
var (
	ErrNotFound          = errors.New("claim not found")
	ErrDuplicate         = errors.New("claim already exists")
	ErrItemNotFound      = errors.New("found item not found")
	ErrNotClaimable      = errors.New("found item is not open to claims")
	ErrInvalidClaim      = errors.New("invalid claim")
	ErrInvalidTransition = errors.New("claim status does not allow this transition")
	ErrRequestTooLarge   = errors.New("request body exceeds maximum size")
)

// MapHTTPStatus maps claim domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrItemNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNotClaimable) ||
		errors.Is(err, ErrInvalidTransition) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrRequestTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidClaim) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
