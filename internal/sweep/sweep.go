// Package sweep implements the periodic auto-matching pass over the
// lost item backlog. Each run selects approved lost items that still
// lack a strong suggestion and funnels them through the matching engine
// with bounded concurrency.
package sweep

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/reclaim-app/reclaim/internal/matches"
	"github.com/reclaim-app/reclaim/internal/metrics"
	"github.com/reclaim-app/reclaim/internal/scoring"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

// Result reports the outcome of one sweep execution.
type Result struct {
	Processed    int `json:"processed"`
	MatchesFound int `json:"matches_found"`
	Errors       int `json:"errors"`
}

// System defines the public contract for sweep execution.
type System interface {
	Handler() *Handler
	Run(ctx context.Context) (Result, error)
}

// backlogQuery selects approved lost items with no live suggestion at or
// above the excellent threshold. Dismissed matches do not count: a user
// who rejected a suggestion keeps the item in the backlog, and the pair
// itself stays recorded so it is never re-suggested.
const backlogQuery = `
	SELECT i.id
	FROM lost_items i
	WHERE i.status = 'approved'
	  AND NOT EXISTS (
	      SELECT 1 FROM matches m
	      WHERE m.lost_item_id = i.id
	        AND m.similarity_score >= $1
	        AND m.status <> 'dismissed'
	  )
	ORDER BY i.created_at`

type runner struct {
	db      *sql.DB
	matches matches.System
	workers int
	logger  *slog.Logger
}

// New creates a sweep runner implementing the System interface.
// workers caps sweep concurrency; zero or negative means one per CPU.
func New(db *sql.DB, matches matches.System, workers int, logger *slog.Logger) System {
	return &runner{
		db:      db,
		matches: matches,
		workers: workers,
		logger:  logger.With("system", "sweep"),
	}
}

func (r *runner) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Run executes one sweep pass. Per-item failures are counted and logged
// but never abort the pass; only context cancellation stops it early.
func (r *runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	ids, err := r.backlog(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("select sweep backlog: %w", err)
	}

	var found, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(r.workers, len(ids)))

	for _, id := range ids {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			created, err := r.matches.AutoMatch(gctx, id)
			if err != nil {
				failed.Add(1)
				r.logger.Warn("sweep item failed", "lost_item_id", id, "error", err)
				return nil
			}

			found.Add(int64(created))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{
		Processed:    len(ids),
		MatchesFound: int(found.Load()),
		Errors:       int(failed.Load()),
	}

	metrics.ObserveSweep(result.Processed, result.Errors, time.Since(start))

	r.logger.Info("sweep complete",
		"processed", result.Processed,
		"matches_found", result.MatchesFound,
		"errors", result.Errors,
		"duration", time.Since(start),
	)
	return result, nil
}

func (r *runner) backlog(ctx context.Context) ([]uuid.UUID, error) {
	return repository.QueryMany(ctx, r.db, backlogQuery,
		[]any{scoring.ExcellentScore}, scanID)
}

func scanID(s repository.Scanner) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.Scan(&id)
	return id, err
}

func workerCount(configured, n int) int {
	limit := configured
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return max(min(limit, n), 1)
}
