package matches

import (
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "matches", "m").
	Project("id", "ID").
	Project("lost_item_id", "LostItemID").
	Project("found_item_id", "FoundItemID").
	Project("similarity_score", "SimilarityScore").
	Project("match_reason", "MatchReason").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("action_date", "ActionDate").
	Join("public", "lost_items", "li", "INNER JOIN", "m.lost_item_id = li.id").
	Project("reporter_id", "LostReporterID").
	Project("title", "LostTitle").
	Project("last_seen_date", "LostEventDate").
	Project("status", "LostStatus").
	Join("public", "categories", "lc", "INNER JOIN", "li.category_id = lc.id").
	Project("name", "LostCategoryName").
	Join("public", "found_items", "fi", "INNER JOIN", "m.found_item_id = fi.id").
	Project("reporter_id", "FoundReporterID").
	Project("title", "FoundTitle").
	Project("found_date", "FoundEventDate").
	Project("status", "FoundStatus").
	Join("public", "categories", "fc", "INNER JOIN", "fi.category_id = fc.id").
	Project("name", "FoundCategoryName")

var defaultSort = []query.SortField{
	{Field: "SimilarityScore", Descending: true},
	{Field: "CreatedAt", Descending: true},
}

func scanMatch(s repository.Scanner) (Match, error) {
	var m Match
	err := s.Scan(
		&m.ID,
		&m.LostItemID,
		&m.FoundItemID,
		&m.SimilarityScore,
		&m.MatchReason,
		&m.Status,
		&m.CreatedAt,
		&m.ActionDate,
		&m.Lost.ReporterID,
		&m.Lost.Title,
		&m.Lost.EventDate,
		&m.Lost.Status,
		&m.Lost.CategoryName,
		&m.Found.ReporterID,
		&m.Found.Title,
		&m.Found.EventDate,
		&m.Found.Status,
		&m.Found.CategoryName,
	)
	m.Lost.ID = m.LostItemID
	m.Found.ID = m.FoundItemID
	return m, err
}

// scanMatchRow scans a bare matches row without joined item context,
// as returned by INSERT/UPDATE ... RETURNING.
func scanMatchRow(s repository.Scanner) (Match, error) {
	var m Match
	err := s.Scan(
		&m.ID,
		&m.LostItemID,
		&m.FoundItemID,
		&m.SimilarityScore,
		&m.MatchReason,
		&m.Status,
		&m.CreatedAt,
		&m.ActionDate,
	)
	return m, err
}
