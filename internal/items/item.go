// Package items implements the lost and found report domain for Reclaim.
// It provides types, data access, and the approval workflow surface for
// item reports. Lost and found reports share one entity shape; the item
// type selects the backing table and the meaning of the event date
// (last seen for lost items, date found for found items).
package items

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ItemType discriminates lost reports from found reports.
type ItemType string

// Valid item types.
const (
	TypeLost  ItemType = "lost"
	TypeFound ItemType = "found"
)

var itemTypes = []ItemType{TypeLost, TypeFound}

// ParseItemType validates a string as a known item type.
// Returns ErrInvalidItemType if the value is not recognized.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !slices.Contains(itemTypes, t) {
		return "", ErrInvalidItemType
	}
	return t, nil
}

// Status represents the lifecycle state of an item report.
type Status string

// Item lifecycle states. Matched applies to lost items only; claimed
// applies to found items only.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusMatched  Status = "matched"
	StatusClaimed  Status = "claimed"
	StatusResolved Status = "resolved"
	StatusArchived Status = "archived"
)

var lostStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusMatched,
	StatusResolved,
	StatusArchived,
}

var foundStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusClaimed,
	StatusResolved,
	StatusArchived,
}

// Statuses returns the valid lifecycle states for the item type.
func (t ItemType) Statuses() []Status {
	if t == TypeFound {
		return foundStatuses
	}
	return lostStatuses
}

// settledStatus is the state a report enters when a match is confirmed.
func (t ItemType) settledStatus() Status {
	if t == TypeFound {
		return StatusClaimed
	}
	return StatusMatched
}

// ParseStatus validates a string as a lifecycle state of the given item type.
// Returns ErrInvalidStatus if the value is not recognized.
func ParseStatus(t ItemType, s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(t.Statuses(), v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known status value.
// Per-type validity is checked where the item type is known.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Status(raw)
	if !slices.Contains(lostStatuses, v) && !slices.Contains(foundStatuses, v) {
		return ErrInvalidStatus
	}
	*s = v
	return nil
}

// Item represents a lost or found report with joined taxonomy names.
// EventDate is the last-seen date for lost items and the date found for
// found items.
type Item struct {
	ID                uuid.UUID  `json:"id"`
	Type              ItemType   `json:"type"`
	ReporterID        uuid.UUID  `json:"reporter_id"`
	CategoryID        uuid.UUID  `json:"category_id"`
	LocationID        *uuid.UUID `json:"location_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	UniqueIdentifiers *string    `json:"unique_identifiers"`
	EventDate         time.Time  `json:"event_date"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CategoryName      string     `json:"category_name"`
	LocationName      *string    `json:"location_name"`
}

// ReportCommand carries the data needed to file a new lost or found report.
// New reports always enter the pending state and await moderation.
type ReportCommand struct {
	ReporterID        uuid.UUID  `json:"reporter_id"`
	CategoryID        uuid.UUID  `json:"category_id"`
	LocationID        *uuid.UUID `json:"location_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	UniqueIdentifiers *string    `json:"unique_identifiers"`
	EventDate         time.Time  `json:"event_date"`
}
