package claims

import (
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "claims", "cl").
	Project("id", "ID").
	Project("found_item_id", "FoundItemID").
	Project("claimant_id", "ClaimantID").
	Project("note", "Note").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("action_date", "ActionDate")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanClaim(s repository.Scanner) (Claim, error) {
	var c Claim
	err := s.Scan(
		&c.ID,
		&c.FoundItemID,
		&c.ClaimantID,
		&c.Note,
		&c.Status,
		&c.CreatedAt,
		&c.ActionDate,
	)
	return c, err
}
