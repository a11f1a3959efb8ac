package notifications

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for notification operations.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand) (*Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error)
}
