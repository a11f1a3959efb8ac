package matches

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/internal/metrics"
	"github.com/reclaim-app/reclaim/internal/scoring"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

// Candidate windows. A lost item can be found well after it was last seen,
// so the lost anchor looks ahead; a found item was usually lost shortly
// before it was picked up, so the found anchor looks back a short span.
const (
	lostLookaheadDays = 60
	foundLookbackDays = 7

	// autoMatchLimit caps how many suggestions a sweep persists per item.
	autoMatchLimit = 5
)

// foundCandidatesQuery selects approved found reports in the same category
// whose find date falls inside the forward window from the lost anchor's
// last-seen date. Found items under an approved claim are excluded.
const foundCandidatesQuery = `
	SELECT i.id, i.reporter_id, i.category_id, i.location_id, i.title,
	       i.description, i.unique_identifiers, i.found_date, i.status, c.name
	FROM found_items i
	INNER JOIN categories c ON i.category_id = c.id
	WHERE i.category_id = $1
	  AND i.status = 'approved'
	  AND i.found_date >= $2
	  AND i.found_date <= $3
	  AND NOT EXISTS (
	      SELECT 1 FROM claims cl
	      WHERE cl.found_item_id = i.id AND cl.status = 'approved'
	  )`

const lostCandidatesQuery = `
	SELECT i.id, i.reporter_id, i.category_id, i.location_id, i.title,
	       i.description, i.unique_identifiers, i.last_seen_date, i.status, c.name
	FROM lost_items i
	INNER JOIN categories c ON i.category_id = c.id
	WHERE i.category_id = $1
	  AND i.status = 'approved'
	  AND i.last_seen_date >= $2
	  AND i.last_seen_date <= $3`

type candidate struct {
	ID           uuid.UUID
	ReporterID   uuid.UUID
	CategoryID   uuid.UUID
	LocationID   *uuid.UUID
	Title        string
	Description  string
	Identifiers  *string
	EventDate    time.Time
	Status       items.Status
	CategoryName string
}

type scored struct {
	cand   candidate
	result scoring.Result
}

func (r *repo) FindForLost(ctx context.Context, lostItemID uuid.UUID) ([]Suggestion, error) {
	anchor, err := r.anchor(ctx, items.TypeLost, lostItemID)
	if err != nil {
		return nil, err
	}
	return r.suggest(ctx, anchor)
}

func (r *repo) FindForFound(ctx context.Context, foundItemID uuid.UUID) ([]Suggestion, error) {
	anchor, err := r.anchor(ctx, items.TypeFound, foundItemID)
	if err != nil {
		return nil, err
	}
	return r.suggest(ctx, anchor)
}

func (r *repo) AutoMatch(ctx context.Context, lostItemID uuid.UUID) (int, error) {
	anchor, err := r.anchor(ctx, items.TypeLost, lostItemID)
	if err != nil {
		return 0, err
	}

	results, err := r.generate(ctx, anchor)
	if err != nil {
		return 0, err
	}

	if len(results) > autoMatchLimit {
		results = results[:autoMatchLimit]
	}

	created := 0
	for _, sc := range results {
		_, isNew, err := r.Save(ctx, saveCommand(anchor, sc))
		if err != nil {
			return created, fmt.Errorf("persist suggestion: %w", err)
		}
		if isNew {
			created++
		}
	}

	return created, nil
}

// anchor loads the item a lookup pivots on. Only approved reports
// participate in matching; everything else reads as absent.
func (r *repo) anchor(ctx context.Context, t items.ItemType, id uuid.UUID) (*items.Item, error) {
	item, err := r.items.Find(ctx, t, id)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.Status != items.StatusApproved {
		return nil, ErrItemNotEligible
	}

	return item, nil
}

// suggest generates, persists, and returns every retained candidate for
// an interactive lookup.
func (r *repo) suggest(ctx context.Context, anchor *items.Item) ([]Suggestion, error) {
	results, err := r.generate(ctx, anchor)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, sc := range results {
		saved, _, err := r.Save(ctx, saveCommand(anchor, sc))
		if err != nil {
			return nil, fmt.Errorf("persist suggestion: %w", err)
		}
		suggestions = append(suggestions, suggestion(sc, saved))
	}

	r.logger.Info("suggestions generated",
		"item_id", anchor.ID,
		"type", anchor.Type,
		"count", len(suggestions),
	)
	return suggestions, nil
}

// generate queries the window-constrained candidate pool, scores every
// candidate against the anchor, drops weak pairs, and orders the rest by
// score, then candidate date, both descending.
func (r *repo) generate(ctx context.Context, anchor *items.Item) ([]scored, error) {
	var (
		q    string
		from time.Time
		to   time.Time
	)

	switch anchor.Type {
	case items.TypeFound:
		q = lostCandidatesQuery
		from = anchor.EventDate.AddDate(0, 0, -foundLookbackDays)
		to = anchor.EventDate
	default:
		q = foundCandidatesQuery
		from = anchor.EventDate
		to = anchor.EventDate.AddDate(0, 0, lostLookaheadDays)
	}

	candidates, err := repository.QueryMany(ctx, r.db, q,
		[]any{anchor.CategoryID, from, to}, scanCandidate)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	anchorInput := itemInput(anchor)
	results := make([]scored, 0, len(candidates))

	for _, cand := range candidates {
		var res scoring.Result
		if anchor.Type == items.TypeFound {
			res = r.scorer.Score(candidateInput(cand), anchorInput)
		} else {
			res = r.scorer.Score(anchorInput, candidateInput(cand))
		}
		metrics.ScoresComputed.Inc()

		if res.Score < scoring.MinimumScore {
			continue
		}
		results = append(results, scored{cand: cand, result: res})
	}

	slices.SortFunc(results, func(a, b scored) int {
		if a.result.Score != b.result.Score {
			return b.result.Score - a.result.Score
		}
		return b.cand.EventDate.Compare(a.cand.EventDate)
	})

	return results, nil
}

func scanCandidate(s repository.Scanner) (candidate, error) {
	var c candidate
	err := s.Scan(
		&c.ID,
		&c.ReporterID,
		&c.CategoryID,
		&c.LocationID,
		&c.Title,
		&c.Description,
		&c.Identifiers,
		&c.EventDate,
		&c.Status,
		&c.CategoryName,
	)
	return c, err
}

func saveCommand(anchor *items.Item, sc scored) SaveCommand {
	cmd := SaveCommand{Score: sc.result.Score, Reason: sc.result.Reason}
	if anchor.Type == items.TypeFound {
		cmd.LostItemID = sc.cand.ID
		cmd.FoundItemID = anchor.ID
	} else {
		cmd.LostItemID = anchor.ID
		cmd.FoundItemID = sc.cand.ID
	}
	return cmd
}

func suggestion(sc scored, saved *Match) Suggestion {
	return Suggestion{
		MatchID: saved.ID,
		Item: ItemSummary{
			ID:           sc.cand.ID,
			ReporterID:   sc.cand.ReporterID,
			Title:        sc.cand.Title,
			CategoryName: sc.cand.CategoryName,
			EventDate:    sc.cand.EventDate,
			Status:       sc.cand.Status,
		},
		Score:      sc.result.Score,
		Confidence: scoring.Band(sc.result.Score),
		Reason:     sc.result.Reason,
		Status:     saved.Status,
	}
}

func itemInput(i *items.Item) scoring.Input {
	return scoring.Input{
		CategoryID:  i.CategoryID,
		LocationID:  i.LocationID,
		Title:       i.Title,
		Description: i.Description,
		Identifiers: deref(i.UniqueIdentifiers),
		Date:        i.EventDate,
	}
}

func candidateInput(c candidate) scoring.Input {
	return scoring.Input{
		CategoryID:  c.CategoryID,
		LocationID:  c.LocationID,
		Title:       c.Title,
		Description: c.Description,
		Identifiers: deref(c.Identifiers),
		Date:        c.EventDate,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
