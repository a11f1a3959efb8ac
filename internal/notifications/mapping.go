package notifications

import (
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "notifications", "n").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("match_id", "MatchID").
	Project("kind", "Kind").
	Project("body", "Body").
	Project("read", "Read").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	err := s.Scan(
		&n.ID,
		&n.UserID,
		&n.MatchID,
		&n.Kind,
		&n.Body,
		&n.Read,
		&n.CreatedAt,
	)
	return n, err
}
