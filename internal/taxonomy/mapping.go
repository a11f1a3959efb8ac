package taxonomy

import (
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

var categoryProjection = query.
	NewProjectionMap("public", "categories", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description")

var locationProjection = query.
	NewProjectionMap("public", "locations", "l").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description")

var nameSort = query.SortField{Field: "Name"}

func scanCategory(s repository.Scanner) (Category, error) {
	var c Category
	err := s.Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func scanLocation(s repository.Scanner) (Location, error) {
	var l Location
	err := s.Scan(&l.ID, &l.Name, &l.Description)
	return l, err
}
