// Package matches implements the matching engine surface for Reclaim:
// candidate generation over approved reports, idempotent match
// persistence, and the suggested to confirmed/dismissed lifecycle.
package matches

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/internal/scoring"
)

// Status represents the lifecycle state of a match suggestion.
type Status string

// Match lifecycle states. Suggested matches await user action; confirmed
// and dismissed are terminal.
const (
	StatusSuggested Status = "suggested"
	StatusConfirmed Status = "confirmed"
	StatusDismissed Status = "dismissed"
)

var statuses = []Status{StatusSuggested, StatusConfirmed, StatusDismissed}

// ParseStatus validates a string as a known match status.
// Returns ErrInvalidStatus if the value is not recognized.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(statuses, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Status(raw)
	if !slices.Contains(statuses, v) {
		return ErrInvalidStatus
	}
	*s = v
	return nil
}

// ItemSummary is the joined item context displayed with a match.
type ItemSummary struct {
	ID           uuid.UUID    `json:"id"`
	ReporterID   uuid.UUID    `json:"reporter_id"`
	Title        string       `json:"title"`
	CategoryName string       `json:"category_name"`
	EventDate    time.Time    `json:"event_date"`
	Status       items.Status `json:"status"`
}

// Match represents a persisted pairing of a lost and a found item with
// its similarity score and lifecycle state.
type Match struct {
	ID              uuid.UUID   `json:"id"`
	LostItemID      uuid.UUID   `json:"lost_item_id"`
	FoundItemID     uuid.UUID   `json:"found_item_id"`
	SimilarityScore int         `json:"similarity_score"`
	MatchReason     string      `json:"match_reason"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	ActionDate      *time.Time  `json:"action_date"`
	Lost            ItemSummary `json:"lost_item"`
	Found           ItemSummary `json:"found_item"`
}

// SaveCommand carries a scored item pair for persistence.
type SaveCommand struct {
	LostItemID  uuid.UUID
	FoundItemID uuid.UUID
	Score       int
	Reason      string
}

// StatusCommand is the request body for acting on a suggestion.
type StatusCommand struct {
	Status Status `json:"status"`
}

// Suggestion is a scored candidate returned by the generator. Item is the
// counterpart report: found candidates for a lost anchor and vice versa.
type Suggestion struct {
	MatchID    uuid.UUID          `json:"match_id"`
	Item       ItemSummary        `json:"item"`
	Score      int                `json:"score"`
	Confidence scoring.Confidence `json:"confidence"`
	Reason     string             `json:"reason"`
	Status     Status             `json:"status"`
}
