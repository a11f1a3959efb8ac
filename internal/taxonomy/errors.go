package taxonomy

import (
	"errors"
	"net/http"
)

// Domain errors for taxonomy lookups.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrDuplicate        = errors.New("taxonomy entry already exists")
)

// MapHTTPStatus maps taxonomy domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrLocationNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
