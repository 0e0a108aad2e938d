// Package badge implements status badge persistence using PostgreSQL.
// A badge is a row in the plan_badges join table; its primary key on
// (plan_id, label_id) guarantees at most one badge per pair.
package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new badge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type badgeRow struct {
	PlanID  uuid.UUID  `db:"plan_id"`
	LabelID uuid.UUID  `db:"label_id"`
	AddedBy *uuid.UUID `db:"added_by"`
	AddedAt time.Time  `db:"added_at"`
}

func (r badgeRow) toDomain() domain.Badge {
	return domain.Badge{PlanID: r.PlanID, LabelID: r.LabelID, AddedBy: r.AddedBy, AddedAt: r.AddedAt}
}

func toDomainBadges(rows []badgeRow) []domain.Badge {
	out := make([]domain.Badge, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const (
	deleteSQL = `
DELETE FROM plan_badges
WHERE plan_id = $1 AND label_id = $2
RETURNING plan_id, label_id, added_by, added_at`

	insertSQL = `
INSERT INTO plan_badges (plan_id, label_id, added_by)
VALUES ($1, $2, $3)
RETURNING plan_id, label_id, added_by, added_at`

	listByPlanSQL = `
SELECT plan_id, label_id, added_by, added_at
FROM plan_badges
WHERE plan_id = $1
ORDER BY seq`

	listByPlanIDsSQL = `
SELECT plan_id, label_id, added_by, added_at
FROM plan_badges
WHERE plan_id = ANY($1::uuid[])
ORDER BY plan_id, seq`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// LockPair serializes toggles of one (plan, label) pair for the rest of the
// surrounding transaction. Must be called inside TxManager.RunInTx.
func (r *Repo) LockPair(ctx context.Context, planID, labelID uuid.UUID) error {
	return postgres.AdvisoryXactLock(ctx, r.pool, "plan_badge:"+planID.String()+":"+labelID.String())
}

// Delete removes the badge and reports whether a row existed.
func (r *Repo) Delete(ctx context.Context, planID, labelID uuid.UUID) (bool, error) {
	var rows []badgeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, deleteSQL, planID, labelID); err != nil {
		return false, postgres.MapError(err, "plan_badge", planID)
	}
	return len(rows) > 0, nil
}

// Insert creates the badge. Returns domain.ErrNotFound when the plan or the
// label does not exist, domain.ErrAlreadyExists if the pair is already present.
func (r *Repo) Insert(ctx context.Context, planID, labelID uuid.UUID, addedBy *uuid.UUID) (domain.Badge, error) {
	var row badgeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, insertSQL, planID, labelID, addedBy); err != nil {
		return domain.Badge{}, postgres.MapError(err, "plan_badge", planID)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByPlan returns a plan's badges in insertion order.
// Returns an empty slice (not nil) when the plan has none.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error) {
	var rows []badgeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, listByPlanSQL, planID); err != nil {
		return nil, fmt.Errorf("list plan_badges: %w", err)
	}
	return toDomainBadges(rows), nil
}

// ListByPlanIDs returns badges for many plans (batch for the dataloader),
// grouped by plan id and kept in insertion order.
func (r *Repo) ListByPlanIDs(ctx context.Context, planIDs []uuid.UUID) ([]domain.Badge, error) {
	if len(planIDs) == 0 {
		return []domain.Badge{}, nil
	}

	var rows []badgeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, listByPlanIDsSQL, planIDs); err != nil {
		return nil, fmt.Errorf("list plan_badges by plan_ids: %w", err)
	}
	return toDomainBadges(rows), nil
}

