package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/taxonomy"
	"github.com/reclaim-app/reclaim/pkg/pagination"
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

type repo struct {
	db         *sql.DB
	taxonomy   taxonomy.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an item repository implementing the System interface.
func New(
	db *sql.DB,
	taxonomy taxonomy.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		taxonomy:   taxonomy,
		logger:     logger.With("system", "items"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxBodySize)
}

func (r *repo) List(
	ctx context.Context,
	t ItemType,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Item], error) {
	page.Normalize(r.pagination)

	if filters.Status != nil {
		if _, err := ParseStatus(t, *filters.Status); err != nil {
			return nil, err
		}
	}

	qb := query.
		NewBuilder(t.projection(), defaultSort).
		WhereSearch(page.Search, "Title", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count %s items: %w", t, err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	rows, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, t.scanFunc())
	if err != nil {
		return nil, fmt.Errorf("query %s items: %w", t, err)
	}

	result := pagination.NewPageResult(rows, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error) {
	q, args := query.NewBuilder(t.projection()).BuildSingle("ID", id)

	item, err := repository.QueryOne(ctx, r.db, q, args, t.scanFunc())
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &item, nil
}

func (r *repo) Report(ctx context.Context, t ItemType, cmd ReportCommand) (*Item, error) {
	if err := validateReport(cmd); err != nil {
		return nil, err
	}
	if err := r.validateTaxonomy(ctx, cmd); err != nil {
		return nil, err
	}

	id := uuid.New()
	q := fmt.Sprintf(`
		INSERT INTO %s(id, reporter_id, category_id, location_id, title, description, unique_identifiers, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, reporter_id, category_id, location_id, title, description, unique_identifiers, %s, status, created_at, updated_at`,
		t.table(), t.dateColumn(), t.dateColumn(),
	)

	insertArgs := []any{
		id,
		cmd.ReporterID,
		cmd.CategoryID,
		cmd.LocationID,
		strings.TrimSpace(cmd.Title),
		cmd.Description,
		cmd.UniqueIdentifiers,
		cmd.EventDate,
	}

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Item, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, t.scanRowFunc())
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("item reported", "type", t, "id", created.ID, "title", created.Title)
	return r.Find(ctx, t, created.ID)
}

func (r *repo) Approve(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error) {
	return r.transition(ctx, t, id, []Status{StatusPending}, StatusApproved)
}

func (r *repo) Reject(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error) {
	return r.transition(ctx, t, id, []Status{StatusPending}, StatusRejected)
}

func (r *repo) Resolve(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error) {
	return r.transition(ctx, t, id, []Status{StatusApproved, t.settledStatus()}, StatusResolved)
}

func (r *repo) Archive(ctx context.Context, t ItemType, id uuid.UUID) (*Item, error) {
	from := make([]Status, 0, len(t.Statuses()))
	for _, s := range t.Statuses() {
		if s != StatusArchived {
			from = append(from, s)
		}
	}
	return r.transition(ctx, t, id, from, StatusArchived)
}

// transition applies a guarded status update. The update only matches rows
// currently in one of the from states; zero affected rows on an existing
// item means the transition is not allowed from its current state.
func (r *repo) transition(
	ctx context.Context,
	t ItemType,
	id uuid.UUID,
	from []Status,
	to Status,
) (*Item, error) {
	q := fmt.Sprintf(
		"UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2 AND status IN (%s)",
		t.table(), statusSet(from),
	)

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, string(to), id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, findErr := r.Find(ctx, t, id); findErr != nil {
				return nil, findErr
			}
			return nil, ErrInvalidTransition
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("item status changed", "type", t, "id", id, "status", to)
	return r.Find(ctx, t, id)
}

func (r *repo) validateTaxonomy(ctx context.Context, cmd ReportCommand) error {
	if _, err := r.taxonomy.FindCategory(ctx, cmd.CategoryID); err != nil {
		if errors.Is(err, taxonomy.ErrCategoryNotFound) {
			return fmt.Errorf("%w: unknown category %s", ErrInvalidReport, cmd.CategoryID)
		}
		return err
	}

	if cmd.LocationID != nil {
		if _, err := r.taxonomy.FindLocation(ctx, *cmd.LocationID); err != nil {
			if errors.Is(err, taxonomy.ErrLocationNotFound) {
				return fmt.Errorf("%w: unknown location %s", ErrInvalidReport, *cmd.LocationID)
			}
			return err
		}
	}

	return nil
}

func validateReport(cmd ReportCommand) error {
	if cmd.ReporterID == uuid.Nil {
		return fmt.Errorf("%w: reporter_id is required", ErrInvalidReport)
	}
	if cmd.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: category_id is required", ErrInvalidReport)
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidReport)
	}
	if cmd.EventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", ErrInvalidReport)
	}
	return nil
}

// statusSet renders a status slice as a SQL IN list. Values come from the
// package constants, never from request input.
func statusSet(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = "'" + string(s) + "'"
	}
	return strings.Join(parts, ", ")
}
