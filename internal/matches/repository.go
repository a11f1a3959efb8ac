package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/events"
	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/internal/metrics"
	"github.com/reclaim-app/reclaim/internal/scoring"
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

type repo struct {
	db     *sql.DB
	items  items.System
	bus    Publisher
	scorer *scoring.Scorer
	logger *slog.Logger
}

// New creates a match repository implementing the System interface.
func New(
	db *sql.DB,
	items items.System,
	bus Publisher,
	weights scoring.Weights,
	logger *slog.Logger,
) System {
	return &repo{
		db:     db,
		items:  items,
		bus:    bus,
		scorer: scoring.New(weights),
		logger: logger.With("system", "matches"),
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, maxBodySize)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Match, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMatch)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) ListForItem(
	ctx context.Context,
	t items.ItemType,
	itemID uuid.UUID,
	status *Status,
) ([]Match, error) {
	field := "LostItemID"
	if t == items.TypeFound {
		field = "FoundItemID"
	}

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals(field, itemID)

	if status != nil {
		qb.WhereEquals("Status", string(*status))
	}

	q, args := qb.Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanMatch)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	return list, nil
}

type saveOutcome struct {
	match   Match
	created bool
}

// Save records a scored pair, keyed on the unique (lost, found) item
// combination. Rescoring an existing pair updates score and reason but
// never touches status; a first-time pair is inserted as suggested.
// The created flag reports which path was taken.
func (r *repo) Save(ctx context.Context, cmd SaveCommand) (*Match, bool, error) {
	if err := validateSave(cmd); err != nil {
		return nil, false, err
	}

	updateQ := `
		UPDATE matches
		SET similarity_score = $1, match_reason = $2
		WHERE lost_item_id = $3 AND found_item_id = $4
		RETURNING id, lost_item_id, found_item_id, similarity_score, match_reason, status, created_at, action_date`

	insertQ := `
		INSERT INTO matches(id, lost_item_id, found_item_id, similarity_score, match_reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, lost_item_id, found_item_id, similarity_score, match_reason, status, created_at, action_date`

	outcome, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (saveOutcome, error) {
		m, err := repository.QueryOne(ctx, tx, updateQ,
			[]any{cmd.Score, cmd.Reason, cmd.LostItemID, cmd.FoundItemID},
			scanMatchRow,
		)
		if err == nil {
			return saveOutcome{match: m}, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return saveOutcome{}, err
		}

		m, err = repository.QueryOne(ctx, tx, insertQ,
			[]any{uuid.New(), cmd.LostItemID, cmd.FoundItemID, cmd.Score, cmd.Reason},
			scanMatchRow,
		)
		if err != nil {
			return saveOutcome{}, err
		}
		return saveOutcome{match: m, created: true}, nil
	})
	if err != nil {
		return nil, false, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	full, err := r.Find(ctx, outcome.match.ID)
	if err != nil {
		return nil, false, err
	}

	if outcome.created {
		metrics.MatchesSuggested.Inc()
		r.publish(events.TopicMatchSuggested, full, nil)
		r.logger.Info("match suggested",
			"id", full.ID,
			"lost_item_id", full.LostItemID,
			"found_item_id", full.FoundItemID,
			"score", full.SimilarityScore,
		)
	}

	return full, outcome.created, nil
}

// SetStatus acts on a suggestion. The actor must own one of the two items.
// Only suggested matches accept a transition; the update is guarded so a
// concurrent action on the same match cannot apply twice. Confirming also
// settles both items, but only from approved; reports that have moved on
// are left untouched.
func (r *repo) SetStatus(ctx context.Context, id, actor uuid.UUID, status Status) (*Match, error) {
	if status != StatusConfirmed && status != StatusDismissed {
		return nil, fmt.Errorf("%w: target must be confirmed or dismissed", ErrInvalidStatus)
	}

	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor != m.Lost.ReporterID && actor != m.Found.ReporterID {
		return nil, ErrForbidden
	}

	if m.Status != StatusSuggested {
		return nil, ErrInvalidTransition
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE matches SET status = $1, action_date = NOW() WHERE id = $2 AND status = 'suggested'",
			string(status), id,
		); err != nil {
			return struct{}{}, err
		}

		if status == StatusConfirmed {
			if _, err := tx.ExecContext(
				ctx,
				"UPDATE lost_items SET status = 'matched', updated_at = NOW() WHERE id = $1 AND status = 'approved'",
				m.LostItemID,
			); err != nil {
				return struct{}{}, fmt.Errorf("settle lost item: %w", err)
			}

			if _, err := tx.ExecContext(
				ctx,
				"UPDATE found_items SET status = 'claimed', updated_at = NOW() WHERE id = $1 AND status = 'approved'",
				m.FoundItemID,
			); err != nil {
				return struct{}{}, fmt.Errorf("settle found item: %w", err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidTransition
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	updated, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.MatchTransitions.WithLabelValues(string(status)).Inc()

	topic := events.TopicMatchDismissed
	if status == StatusConfirmed {
		topic = events.TopicMatchConfirmed
	}
	r.publish(topic, updated, &actor)

	r.logger.Info("match status changed", "id", id, "status", status, "actor", actor)
	return updated, nil
}

func (r *repo) publish(topic string, m *Match, actor *uuid.UUID) {
	if r.bus == nil {
		return
	}

	evt := events.MatchEvent{
		MatchID:         m.ID,
		LostItemID:      m.LostItemID,
		FoundItemID:     m.FoundItemID,
		LostReporterID:  m.Lost.ReporterID,
		FoundReporterID: m.Found.ReporterID,
		Score:           m.SimilarityScore,
		Actor:           actor,
	}

	if err := r.bus.Publish(topic, evt); err != nil {
		r.logger.Warn("publish match event failed", "topic", topic, "match_id", m.ID, "error", err)
	}
}

func validateSave(cmd SaveCommand) error {
	if cmd.LostItemID == uuid.Nil || cmd.FoundItemID == uuid.Nil {
		return fmt.Errorf("%w: both item ids are required", ErrInvalidID)
	}
	if cmd.Score < 0 || cmd.Score > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, cmd.Score)
	}
	return nil
}
