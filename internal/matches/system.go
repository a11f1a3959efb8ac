package matches

import (
	"context"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/events"
	"github.com/reclaim-app/reclaim/internal/items"
)

// Publisher publishes match lifecycle events.
type Publisher interface {
	Publish(topic string, evt events.MatchEvent) error
}

// System defines the public contract for matching engine operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	FindForLost(ctx context.Context, lostItemID uuid.UUID) ([]Suggestion, error)
	FindForFound(ctx context.Context, foundItemID uuid.UUID) ([]Suggestion, error)

	// AutoMatch generates candidates for an approved lost item and persists
	// only the strongest few. Returns the number of newly created suggestions.
	AutoMatch(ctx context.Context, lostItemID uuid.UUID) (int, error)

	Save(ctx context.Context, cmd SaveCommand) (*Match, bool, error)
	Find(ctx context.Context, id uuid.UUID) (*Match, error)
	ListForItem(
		ctx context.Context,
		t items.ItemType,
		itemID uuid.UUID,
		status *Status,
	) ([]Match, error)
	SetStatus(ctx context.Context, id, actor uuid.UUID, status Status) (*Match, error)
}
