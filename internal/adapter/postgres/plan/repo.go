// Package plan implements the treatment plan repository using PostgreSQL.
// Reads join the reference tables so that every plan carries display labels.
package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type planRow struct {
	ID            uuid.UUID  `db:"id"`
	BusinessID    string     `db:"business_id"`
	Label         string     `db:"label"`
	State         string     `db:"state"`
	Urgent        bool       `db:"urgent"`
	PatientID     uuid.UUID  `db:"patient_id"`
	PatientName   string     `db:"patient_name"`
	ClinicID      uuid.UUID  `db:"clinic_id"`
	ClinicName    string     `db:"clinic_name"`
	DoctorID      *uuid.UUID `db:"doctor_id"`
	DoctorName    *string    `db:"doctor_name"`
	WorkTypeID    uuid.UUID  `db:"work_type_id"`
	WorkTypeName  string     `db:"work_type_name"`
	PhasesDone    int        `db:"phases_done"`
	PhasesTotal   int        `db:"phases_total"`
	LastReason    *string    `db:"last_reason"`
	ReopenSubtype *string    `db:"reopen_subtype"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r planRow) toDomain() domain.Plan {
	p := domain.Plan{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Label:      r.Label,
		State:      domain.PlanState(r.State),
		Urgent:     r.Urgent,
		Patient:    domain.Ref{ID: r.PatientID, Label: r.PatientName},
		Clinic:     domain.Ref{ID: r.ClinicID, Label: r.ClinicName},
		WorkType:   domain.Ref{ID: r.WorkTypeID, Label: r.WorkTypeName},
		Progress:   domain.Progress{Done: r.PhasesDone, Total: r.PhasesTotal},
		LastReason: r.LastReason,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.DoctorID != nil {
		name := ""
		if r.DoctorName != nil {
			name = *r.DoctorName
		}
		p.Doctor = &domain.Ref{ID: *r.DoctorID, Label: name}
	}
	if r.ReopenSubtype != nil {
		s := domain.ReopenSubtype(*r.ReopenSubtype)
		p.ReopenSubtype = &s
	}
	return p
}

func selectPlans() sq.SelectBuilder {
	return psql.Select(
		"p.id", "p.business_id", "p.label", "p.state", "p.urgent",
		"p.patient_id", "pa.full_name AS patient_name",
		"p.clinic_id", "c.name AS clinic_name",
		"p.doctor_id", "d.name AS doctor_name",
		"p.work_type_id", "w.name AS work_type_name",
		"p.phases_done", "p.phases_total",
		"p.last_reason", "p.reopen_subtype",
		"p.created_at", "p.updated_at",
	).
		From("treatment_plans p").
		Join("patients pa ON pa.id = p.patient_id").
		Join("clinics c ON c.id = p.clinic_id").
		LeftJoin("doctors d ON d.id = p.doctor_id").
		Join("work_types w ON w.id = p.work_type_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a plan by primary key.
// Returns domain.ErrNotFound if the plan does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	return r.get(ctx, selectPlans().Where(sq.Eq{"p.id": id}), id)
}

// GetForUpdate returns a plan and holds a row lock on it until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("plan %s: lock requires a transaction", id)
	}
	return r.get(ctx, selectPlans().Where(sq.Eq{"p.id": id}).Suffix("FOR UPDATE OF p"), id)
}

func (r *Repo) get(ctx context.Context, q sq.SelectBuilder, id uuid.UUID) (*domain.Plan, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build plan query: %w", err)
	}

	var row planRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan", id)
	}

	p := row.toDomain()
	return &p, nil
}

// List returns plans matching filter, urgent first then newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PlanFilter) ([]domain.Plan, error) {
	q := applyFilter(selectPlans(), filter).
		OrderBy("p.urgent DESC", "p.created_at DESC", "p.id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build plan list query: %w", err)
	}

	var rows []planRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	plans := make([]domain.Plan, len(rows))
	for i, row := range rows {
		plans[i] = row.toDomain()
	}
	return plans, nil
}

// applyFilter adds WHERE clauses for every set filter field.
func applyFilter(q sq.SelectBuilder, f domain.PlanFilter) sq.SelectBuilder {
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, s := range f.States {
			states[i] = string(s)
		}
		q = q.Where(sq.Eq{"p.state": states})
	}
	if f.ClinicID != nil {
		q = q.Where(sq.Eq{"p.clinic_id": *f.ClinicID})
	}
	if f.DoctorID != nil {
		q = q.Where(sq.Eq{"p.doctor_id": *f.DoctorID})
	}
	if f.WorkTypeID != nil {
		q = q.Where(sq.Eq{"p.work_type_id": *f.WorkTypeID})
	}
	if f.UrgentOnly {
		q = q.Where(sq.Eq{"p.urgent": true})
	}
	if f.Search != nil {
		if term := domain.NormalizeSearch(*f.Search); term != "" {
			pattern := "%" + escapeLike(term) + "%"
			q = q.Where(sq.Or{
				sq.ILike{"pa.full_name": pattern},
				sq.ILike{"p.business_id": pattern},
				sq.ILike{"p.label": pattern},
			})
		}
	}
	return q
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

const queueCountsSQL = `
SELECT
    count(*)                         AS total,
    count(*) FILTER (WHERE urgent)   AS urgent
FROM treatment_plans
WHERE state IN ('active', 'reopened')`

// QueueCounts returns the size of the lab work queue and how many of those
// plans are urgent.
func (r *Repo) QueueCounts(ctx context.Context) (domain.QueueCounts, error) {
	var c domain.QueueCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, queueCountsSQL).Scan(&c.Total, &c.Urgent)
	if err != nil {
		return domain.QueueCounts{}, fmt.Errorf("queue counts: %w", err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const updateStateSQL = `
UPDATE treatment_plans
SET state          = $2,
    last_reason    = $3,
    reopen_subtype = COALESCE($4, reopen_subtype),
    updated_at     = GREATEST(updated_at, now())
WHERE id = $1`

// UpdateState writes the new state and audit fields and returns the
// re-read plan. updated_at never moves backwards.
func (r *Repo) UpdateState(ctx context.Context, change domain.StateChange) (*domain.Plan, error) {
	var subtype *string
	if change.ReopenSubtype != nil {
		s := string(*change.ReopenSubtype)
		subtype = &s
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateStateSQL,
		change.PlanID, string(change.To), change.Reason, subtype)
	if err != nil {
		return nil, postgres.MapError(err, "plan", change.PlanID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("plan %s: %w", change.PlanID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, change.PlanID)
}
