// Package notifications records per-user notices for match lifecycle
// events. A subscriber consumes the event bus and writes one row per
// recipient; delivery to external channels stays outside this service.
package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies the match lifecycle event a notification reports.
type Kind string

// Notification kinds.
const (
	KindMatchSuggested Kind = "match_suggested"
	KindMatchConfirmed Kind = "match_confirmed"
	KindMatchDismissed Kind = "match_dismissed"
)

// Notification is a recorded notice for a single user.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	MatchID   *uuid.UUID `json:"match_id"`
	Kind      Kind       `json:"kind"`
	Body      string     `json:"body"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateCommand carries the data needed to record a notification.
type CreateCommand struct {
	UserID  uuid.UUID
	MatchID *uuid.UUID
	Kind    Kind
	Body    string
}
