package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/metrics"
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a notification repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "notifications"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Notification, error) {
	q := `
		INSERT INTO notifications(id, user_id, match_id, kind, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, match_id, kind, body, read, created_at`

	insertArgs := []any{uuid.New(), cmd.UserID, cmd.MatchID, string(cmd.Kind), cmd.Body}

	n, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Notification, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanNotification)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	metrics.NotificationsCreated.Inc()
	return &n, nil
}

func (r *repo) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserID", userID)

	if unreadOnly {
		qb.WhereEquals("Read", false)
	}

	q, args := qb.Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	return list, nil
}

func (r *repo) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	q := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1
		RETURNING id, user_id, match_id, kind, body, read, created_at`

	n, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Notification, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanNotification)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &n, nil
}
