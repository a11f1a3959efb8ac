package api

import (
	"net/http"

	"github.com/reclaim-app/reclaim/internal/config"
	"github.com/reclaim-app/reclaim/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the API module. Paths are
// relative to the module base path, which is published as the server URL.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(domainSchemas())

	addTaxonomyPaths(spec)
	addItemPaths(spec)
	addClaimPaths(spec)
	addMatchPaths(spec)
	addNotificationPaths(spec)

	return spec
}

func domainSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Category": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string", Example: "Electronics"},
				"description": {Type: "string"},
			},
		},
		"Location": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string", Example: "Central Station"},
				"description": {Type: "string"},
			},
		},
		"Item": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string", Format: "uuid"},
				"type":               {Type: "string", Enum: []any{"lost", "found"}},
				"reporter_id":        {Type: "string", Format: "uuid"},
				"category_id":        {Type: "string", Format: "uuid"},
				"location_id":        {Type: "string", Format: "uuid"},
				"title":              {Type: "string", Example: "Black leather wallet"},
				"description":        {Type: "string"},
				"unique_identifiers": {Type: "string", Description: "Serial numbers, engravings, or other distinguishing marks"},
				"event_date":         {Type: "string", Format: "date-time", Description: "Last-seen date for lost items, date found for found items"},
				"status":             {Type: "string", Enum: []any{"pending", "approved", "rejected", "matched", "claimed", "resolved", "archived"}},
				"created_at":         {Type: "string", Format: "date-time"},
				"updated_at":         {Type: "string", Format: "date-time"},
				"category_name":      {Type: "string"},
				"location_name":      {Type: "string"},
			},
		},
		"ReportCommand": {
			Type:     "object",
			Required: []string{"reporter_id", "category_id", "title", "event_date"},
			Properties: map[string]*openapi.Schema{
				"reporter_id":        {Type: "string", Format: "uuid"},
				"category_id":        {Type: "string", Format: "uuid"},
				"location_id":        {Type: "string", Format: "uuid"},
				"title":              {Type: "string"},
				"description":        {Type: "string"},
				"unique_identifiers": {Type: "string"},
				"event_date":         {Type: "string", Format: "date-time"},
			},
		},
		"Claim": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"found_item_id": {Type: "string", Format: "uuid"},
				"claimant_id":   {Type: "string", Format: "uuid"},
				"note":          {Type: "string"},
				"status":        {Type: "string", Enum: []any{"pending", "approved", "rejected"}},
				"created_at":    {Type: "string", Format: "date-time"},
				"action_date":   {Type: "string", Format: "date-time"},
			},
		},
		"FileCommand": {
			Type:     "object",
			Required: []string{"found_item_id", "claimant_id"},
			Properties: map[string]*openapi.Schema{
				"found_item_id": {Type: "string", Format: "uuid"},
				"claimant_id":   {Type: "string", Format: "uuid"},
				"note":          {Type: "string"},
			},
		},
		"ItemSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"reporter_id":   {Type: "string", Format: "uuid"},
				"title":         {Type: "string"},
				"category_name": {Type: "string"},
				"event_date":    {Type: "string", Format: "date-time"},
				"status":        {Type: "string"},
			},
		},
		"Match": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":               {Type: "string", Format: "uuid"},
				"lost_item_id":     {Type: "string", Format: "uuid"},
				"found_item_id":    {Type: "string", Format: "uuid"},
				"similarity_score": {Type: "integer", Description: "Weighted similarity score from 0 to 100"},
				"match_reason":     {Type: "string", Description: "Human-readable factor breakdown"},
				"status":           {Type: "string", Enum: []any{"suggested", "confirmed", "dismissed"}},
				"created_at":       {Type: "string", Format: "date-time"},
				"action_date":      {Type: "string", Format: "date-time"},
				"lost_item":        openapi.SchemaRef("ItemSummary"),
				"found_item":       openapi.SchemaRef("ItemSummary"),
			},
		},
		"Suggestion": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"match_id":   {Type: "string", Format: "uuid", Description: "Set when the pair is already persisted"},
				"item":       openapi.SchemaRef("ItemSummary"),
				"score":      {Type: "integer"},
				"confidence": {Type: "string", Enum: []any{"excellent", "good", "possible", "poor"}},
				"reason":     {Type: "string"},
				"status":     {Type: "string"},
			},
		},
		"StatusCommand": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Enum: []any{"confirmed", "dismissed"}},
			},
		},
		"SweepResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"processed":     {Type: "integer", Description: "Lost items examined"},
				"matches_found": {Type: "integer", Description: "New suggestions persisted"},
				"errors":        {Type: "integer"},
			},
		},
		"Notification": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"user_id":    {Type: "string", Format: "uuid"},
				"match_id":   {Type: "string", Format: "uuid"},
				"kind":       {Type: "string", Enum: []any{"match_suggested", "match_confirmed", "match_dismissed"}},
				"body":       {Type: "string"},
				"read":       {Type: "boolean"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
	}
}

func addTaxonomyPaths(spec *openapi.Spec) {
	spec.Paths["/categories"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List item categories",
			Tags:    []string{"taxonomy"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: listResponse("Categories", "Category"),
			},
		},
	}

	spec.Paths["/locations"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List known locations",
			Tags:    []string{"taxonomy"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: listResponse("Locations", "Location"),
			},
		},
	}
}

func addItemPaths(spec *openapi.Spec) {
	itemType := &openapi.Parameter{
		Name:        "itemType",
		In:          "path",
		Required:    true,
		Description: "Report type: lost or found",
		Schema:      &openapi.Schema{Type: "string", Enum: []any{"lost", "found"}},
	}

	spec.Paths["/items/{itemType}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List item reports",
			Tags:       []string{"items"},
			Parameters: []*openapi.Parameter{itemType},
			Responses: map[int]*openapi.Response{
				http.StatusOK:         pageResponse("Item"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Report a lost or found item",
			Tags:        []string{"items"},
			Parameters:  []*openapi.Parameter{itemType},
			RequestBody: openapi.RequestBodyJSON("ReportCommand", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created report", "Item"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/items/{itemType}/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search item reports with filters and pagination",
			Tags:        []string{"items"},
			Parameters:  []*openapi.Parameter{itemType},
			RequestBody: openapi.RequestBodyJSON("PageRequest", false),
			Responses: map[int]*openapi.Response{
				http.StatusOK:         pageResponse("Item"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/items/{itemType}/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find an item report",
			Tags:       []string{"items"},
			Parameters: []*openapi.Parameter{itemType, openapi.PathParam("id", "Item ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Item report", "Item"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	transitions := []struct {
		path    string
		summary string
	}{
		{"approve", "Approve a pending report"},
		{"reject", "Reject a pending report"},
		{"resolve", "Mark a report resolved"},
		{"archive", "Archive a report"},
	}
	for _, tr := range transitions {
		spec.Paths["/items/{itemType}/{id}/"+tr.path] = &openapi.PathItem{
			Post: &openapi.Operation{
				Summary:    tr.summary,
				Tags:       []string{"items"},
				Parameters: []*openapi.Parameter{itemType, openapi.PathParam("id", "Item ID")},
				Responses: map[int]*openapi.Response{
					http.StatusOK:       openapi.ResponseJSON("Updated report", "Item"),
					http.StatusNotFound: openapi.ResponseRef("NotFound"),
					http.StatusConflict: openapi.ResponseRef("Conflict"),
				},
			},
		}
	}

	spec.Paths["/items/{itemType}/{id}/matches"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List saved matches for an item",
			Tags:       []string{"matches"},
			Parameters: []*openapi.Parameter{itemType, openapi.PathParam("id", "Item ID"), openapi.QueryParam("status", "string", "Filter by match status", false)},
			Responses: map[int]*openapi.Response{
				http.StatusOK:         listResponse("Saved matches", "Match"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}
}

func addClaimPaths(spec *openapi.Spec) {
	spec.Paths["/claims"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "File a claim against a found item",
			Tags:        []string{"claims"},
			RequestBody: openapi.RequestBodyJSON("FileCommand", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Filed claim", "Claim"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
				http.StatusNotFound:   openapi.ResponseRef("NotFound"),
				http.StatusConflict:   openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/claims/found/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List claims filed against a found item",
			Tags:       []string{"claims"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Found item ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK: listResponse("Claims", "Claim"),
			},
		},
	}

	for _, action := range []string{"approve", "reject"} {
		spec.Paths["/claims/{id}/"+action] = &openapi.PathItem{
			Post: &openapi.Operation{
				Summary:    "Review a pending claim: " + action,
				Tags:       []string{"claims"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Claim ID")},
				Responses: map[int]*openapi.Response{
					http.StatusOK:       openapi.ResponseJSON("Reviewed claim", "Claim"),
					http.StatusNotFound: openapi.ResponseRef("NotFound"),
					http.StatusConflict: openapi.ResponseRef("Conflict"),
				},
			},
		}
	}
}

func addMatchPaths(spec *openapi.Spec) {
	spec.Paths["/matches/lost/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Generate match suggestions for a lost item",
			Description: "Scores approved found reports in the same category against the lost item and returns candidates at or above the minimum score.",
			Tags:        []string{"matches"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Lost item ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       listResponse("Ranked suggestions", "Suggestion"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/matches/found/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Generate match suggestions for a found item",
			Tags:       []string{"matches"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Found item ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       listResponse("Ranked suggestions", "Suggestion"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/matches/{id}/status"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Confirm or dismiss a suggested match",
			Description: "Only a reporter on either side of the match may act. Requires the X-User-ID header.",
			Tags:        []string{"matches"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Match ID")},
			RequestBody: openapi.RequestBodyJSON("StatusCommand", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:        openapi.ResponseJSON("Updated match", "Match"),
				http.StatusForbidden: openapi.ResponseRef("Forbidden"),
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
				http.StatusConflict:  openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/matches/sweep"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Run the auto-match sweep",
			Description: "Scans approved lost items without a strong suggestion and persists new high-scoring matches.",
			Tags:        []string{"matches"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Sweep counters", "SweepResult"),
			},
		},
	}
}

func addNotificationPaths(spec *openapi.Spec) {
	spec.Paths["/notifications/{userId}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List notifications for a user",
			Tags:       []string{"notifications"},
			Parameters: []*openapi.Parameter{openapi.PathParam("userId", "User ID"), openapi.QueryParam("unread", "boolean", "Only unread notifications", false)},
			Responses: map[int]*openapi.Response{
				http.StatusOK: listResponse("Notifications", "Notification"),
			},
		},
	}

	spec.Paths["/notifications/{id}/read"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Mark a notification read",
			Tags:       []string{"notifications"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Notification ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Updated notification", "Notification"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func listResponse(description, schemaName string) *openapi.Response {
	return &openapi.Response{
		Description: description,
		Content: map[string]*openapi.MediaType{
			"application/json": {
				Schema: &openapi.Schema{
					Type:  "array",
					Items: openapi.SchemaRef(schemaName),
				},
			},
		},
	}
}

func pageResponse(schemaName string) *openapi.Response {
	return &openapi.Response{
		Description: "Paged results",
		Content: map[string]*openapi.MediaType{
			"application/json": {
				Schema: &openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"data":        {Type: "array", Items: openapi.SchemaRef(schemaName)},
						"total":       {Type: "integer"},
						"page":        {Type: "integer"},
						"page_size":   {Type: "integer"},
						"total_pages": {Type: "integer"},
					},
				},
			},
		},
	}
}
