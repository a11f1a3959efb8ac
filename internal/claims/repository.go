package claims

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/items"
	"github.com/reclaim-app/reclaim/pkg/query"
	"github.com/reclaim-app/reclaim/pkg/repository"
)

type repo struct {
	db     *sql.DB
	items  items.System
	logger *slog.Logger
}

// New creates a claim repository implementing the System interface.
func New(db *sql.DB, items items.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		items:  items,
		logger: logger.With("system", "claims"),
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, maxBodySize)
}

func (r *repo) File(ctx context.Context, cmd FileCommand) (*Claim, error) {
	if err := validateFile(cmd); err != nil {
		return nil, err
	}

	item, err := r.items.Find(ctx, items.TypeFound, cmd.FoundItemID)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.Status != items.StatusApproved {
		return nil, ErrNotClaimable
	}

	q := `
		INSERT INTO claims(id, found_item_id, claimant_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, found_item_id, claimant_id, note, status, created_at, action_date`

	insertArgs := []any{uuid.New(), cmd.FoundItemID, cmd.ClaimantID, cmd.Note}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Claim, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanClaim)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("claim filed", "id", c.ID, "found_item_id", c.FoundItemID, "claimant_id", c.ClaimantID)
	return &c, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Claim, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanClaim)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) ListByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]Claim, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("FoundItemID", foundItemID).
		Build()

	claims, err := repository.QueryMany(ctx, r.db, q, args, scanClaim)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	return claims, nil
}

func (r *repo) Approve(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return r.review(ctx, id, StatusApproved)
}

func (r *repo) Reject(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return r.review(ctx, id, StatusRejected)
}

// review applies a guarded pending-only status update, stamping the
// action date when the claim leaves pending.
func (r *repo) review(ctx context.Context, id uuid.UUID, to Status) (*Claim, error) {
	q := `
		UPDATE claims
		SET status = $1, action_date = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING id, found_item_id, claimant_id, note, status, created_at, action_date`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Claim, error) {
		return repository.QueryOne(ctx, tx, q, []any{string(to), id}, scanClaim)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, findErr := r.Find(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, ErrInvalidTransition
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("claim reviewed", "id", c.ID, "status", c.Status)
	return &c, nil
}

func validateFile(cmd FileCommand) error {
	if cmd.FoundItemID == uuid.Nil {
		return fmt.Errorf("%w: found_item_id is required", ErrInvalidClaim)
	}
	if cmd.ClaimantID == uuid.Nil {
		return fmt.Errorf("%w: claimant_id is required", ErrInvalidClaim)
	}
	return nil
}
