package items

import (
	"context"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/pagination"
)

// System defines the public contract for item report operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	List(
		ctx context.Context,
		t ItemType,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Item], error)

	Find(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error)
	Report(ctx context.Context, t ItemType, cmd ReportCommand) (*Item, error)
	Approve(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error)
	Reject(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error)
	Resolve(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error)
	Archive(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error)
}
