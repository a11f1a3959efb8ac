package taxonomy

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a taxonomy repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "taxonomy"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Categories(ctx context.Context) ([]Category, error) {
	q, args := query.NewBuilder(categoryProjection, nameSort).Build()

	categories, err := repository.QueryMany(ctx, r.db, q, args, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return categories, nil
}

func (r *repo) Locations(ctx context.Context) ([]Location, error) {
	q, args := query.NewBuilder(locationProjection, nameSort).Build()

	locations, err := repository.QueryMany(ctx, r.db, q, args, scanLocation)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	return locations, nil
}

func (r *repo) FindCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	q, args := query.NewBuilder(categoryProjection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCategory)
	if err != nil {
		return nil, repository.MapError(err, ErrCategoryNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) FindLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	q, args := query.NewBuilder(locationProjection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLocation)
	if err != nil {
		return nil, repository.MapError(err, ErrLocationNotFound, ErrDuplicate)
	}
	return &l, nil
}
