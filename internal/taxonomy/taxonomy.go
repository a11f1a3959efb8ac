// Package taxonomy provides the category and location reference data used
// to classify lost and found reports. Both sets are seeded by migrations
// and read-only at runtime.
package taxonomy

import "github.com/google/uuid"

// Category is an item category such as electronics or keys.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Location is a named place where items are reported lost or found.
type Location struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
