package claims

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for claim operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	File(ctx context.Context, cmd FileCommand) (*Claim, error)
	Find(ctx context.Context, id uuid.UUID) (*Claim, error)
	ListByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]Claim, error)
	Approve(ctx context.Context, id uuid.UUID) (*Claim, error)
	Reject(ctx context.Context, id uuid.UUID) (*Claim, error)
}
