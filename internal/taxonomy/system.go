package taxonomy

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for taxonomy lookups.
type System interface {
	Handler() *Handler

	Categories(ctx context.Context) ([]Category, error)
	Locations(ctx context.Context) ([]Location, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	FindLocation(ctx context.Context, id uuid.UUID) (*Location, error)
}
