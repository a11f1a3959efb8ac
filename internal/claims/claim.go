// Package claims implements ownership claims against found items.
// A claim records that a user asserts a found item belongs to them;
// approved claims take the item out of candidate generation.
package claims

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the review state of a claim.
type Status string

// Claim review states.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Claim links a claimant to a found item.
type Claim struct {
	ID          uuid.UUID  `json:"id"`
	FoundItemID uuid.UUID  `json:"found_item_id"`
	ClaimantID  uuid.UUID  `json:"claimant_id"`
	Note        string     `json:"note"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ActionDate  *time.Time `json:"action_date"`
}

// FileCommand carries the data needed to file a new claim.
// New claims always enter the pending state.
type FileCommand struct {
	FoundItemID uuid.UUID `json:"found_item_id"`
	ClaimantID  uuid.UUID `json:"claimant_id"`
	Note        string    `json:"note"`
}
