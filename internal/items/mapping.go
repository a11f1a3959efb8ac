package items

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

// Lost and found reports share one projection shape; only the backing
// table and the event date column differ.
var lostProjection = itemProjection("lost_items", "last_seen_date")

var foundProjection = itemProjection("found_items", "found_date")

func itemProjection(table, dateColumn string) *query.ProjectionMap {
	return query.
		NewProjectionMap("public", table, "i").
		Project("id", "ID").
		Project("reporter_id", "ReporterID").
		Project("category_id", "CategoryID").
		Project("location_id", "LocationID").
		Project("title", "Title").
		Project("description", "Description").
		Project("unique_identifiers", "UniqueIdentifiers").
		Project(dateColumn, "EventDate").
		Project("status", "Status").
		Project("created_at", "CreatedAt").
		Project("updated_at", "UpdatedAt").
		Join("public", "categories", "c", "INNER JOIN", "i.category_id = c.id").
		Project("name", "CategoryName").
		Join("public", "locations", "l", "LEFT JOIN", "i.location_id = l.id").
		Project("name", "LocationName")
}

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func (t ItemType) projection() *query.ProjectionMap {
	if t == TypeFound {
		return foundProjection
	}
	return lostProjection
}

func (t ItemType) table() string {
	if t == TypeFound {
		return "found_items"
	}
	return "lost_items"
}

func (t ItemType) dateColumn() string {
	if t == TypeFound {
		return "found_date"
	}
	return "last_seen_date"
}

// Filters contains optional filtering criteria for item queries.
// Nil fields are ignored. Status, CategoryID, LocationID, and ReporterID
// use exact matching. Title uses case-insensitive contains matching.
type Filters struct {
	Status     *string    `json:"status,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	ReporterID *uuid.UUID `json:"reporter_id,omitempty"`
	Title      *string    `json:"title,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("CategoryID", f.CategoryID).
		WhereEquals("LocationID", f.LocationID).
		WhereEquals("ReporterID", f.ReporterID).
		WhereContains("Title", f.Title)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if c := values.Get("category_id"); c != "" {
		if v, err := uuid.Parse(c); err == nil {
			f.CategoryID = &v
		}
	}

	if l := values.Get("location_id"); l != "" {
		if v, err := uuid.Parse(l); err == nil {
			f.LocationID = &v
		}
	}

	if rep := values.Get("reporter_id"); rep != "" {
		if v, err := uuid.Parse(rep); err == nil {
			f.ReporterID = &v
		}
	}

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}

	return f
}

func (t ItemType) scanFunc() repository.ScanFunc[Item] {
	return func(s repository.Scanner) (Item, error) {
		var i Item
		err := s.Scan(
			&i.ID,
			&i.ReporterID,
			&i.CategoryID,
			&i.LocationID,
			&i.Title,
			&i.Description,
			&i.UniqueIdentifiers,
			&i.EventDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CategoryName,
			&i.LocationName,
		)
		i.Type = t
		return i, err
	}
}

// scanRowFunc scans a bare table row without the joined taxonomy names,
// as returned by INSERT/UPDATE ... RETURNING.
func (t ItemType) scanRowFunc() repository.ScanFunc[Item] {
	return func(s repository.Scanner) (Item, error) {
		var i Item
		err := s.Scan(
			&i.ID,
			&i.ReporterID,
			&i.CategoryID,
			&i.LocationID,
			&i.Title,
			&i.Description,
			&i.UniqueIdentifiers,
			&i.EventDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		)
		i.Type = t
		return i, err
	}
}
