// Package history implements the append-only plan transition log using PostgreSQL.
package history

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

// Repo provides transition history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type transitionRow struct {
	ID            uuid.UUID  `db:"id"`
	PlanID        uuid.UUID  `db:"plan_id"`
	FromState     string     `db:"from_state"`
	ToState       string     `db:"to_state"`
	Reason        *string    `db:"reason"`
	ReopenSubtype *string    `db:"reopen_subtype"`
	ActorID       *uuid.UUID `db:"actor_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r transitionRow) toDomain() domain.PlanTransition {
	t := domain.PlanTransition{
		ID:        r.ID,
		PlanID:    r.PlanID,
		FromState: domain.PlanState(r.FromState),
		ToState:   domain.PlanState(r.ToState),
		Reason:    r.Reason,
		ActorID:   r.ActorID,
		CreatedAt: r.CreatedAt,
	}
	if r.ReopenSubtype != nil {
		s := domain.ReopenSubtype(*r.ReopenSubtype)
		t.ReopenSubtype = &s
	}
	return t
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO plan_transitions (id, plan_id, from_state, to_state, reason, reopen_subtype, actor_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, plan_id, from_state, to_state, reason, reopen_subtype, actor_id, created_at`

// Create appends a transition record and returns it with its timestamp.
func (r *Repo) Create(ctx context.Context, t domain.PlanTransition) (domain.PlanTransition, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	var subtype *string
	if t.ReopenSubtype != nil {
		s := string(*t.ReopenSubtype)
		subtype = &s
	}

	var row transitionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, createSQL,
		t.ID, t.PlanID, string(t.FromState), string(t.ToState), t.Reason, subtype, t.ActorID)
	if err != nil {
		return domain.PlanTransition{}, postgres.MapError(err, "plan_transition", t.PlanID)
	}

	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listByPlanSQL = `
SELECT id, plan_id, from_state, to_state, reason, reopen_subtype, actor_id, created_at
FROM plan_transitions
WHERE plan_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

// ListByPlan returns the newest transitions of a plan first, at most limit rows.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID, limit int) ([]domain.PlanTransition, error) {
	var rows []transitionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, listByPlanSQL, planID, limit); err != nil {
		return nil, fmt.Errorf("list plan_transitions: %w", err)
	}

	out := make([]domain.PlanTransition, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
