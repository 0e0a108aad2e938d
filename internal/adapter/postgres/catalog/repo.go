// Package catalog implements read and seed access to the status label catalog.
package catalog

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type categoryRow struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Color    string    `db:"color"`
	Emoji    string    `db:"emoji"`
	Position int       `db:"position"`
}

type labelRow struct {
	ID         uuid.UUID `db:"id"`
	CategoryID uuid.UUID `db:"category_id"`
	Name       string    `db:"name"`
	Position   int       `db:"position"`
}

const (
	listCategoriesSQL = `SELECT id, name, color, emoji, position FROM label_categories ORDER BY position, name`
	listLabelsSQL     = `SELECT id, category_id, name, position FROM status_labels ORDER BY category_id, position, name`

	upsertCategorySQL = `
INSERT INTO label_categories (name, color, emoji, position)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
SET color = EXCLUDED.color, emoji = EXCLUDED.emoji, position = EXCLUDED.position
RETURNING id`

	upsertLabelSQL = `
INSERT INTO status_labels (category_id, name, position)
VALUES ($1, $2, $3)
ON CONFLICT (category_id, name) DO UPDATE
SET position = EXCLUDED.position
RETURNING id`
)

// Load returns the full catalog: categories and labels ordered by position.
func (r *Repo) Load(ctx context.Context) (domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var cats []categoryRow
	if err := pgxscan.Select(ctx, q, &cats, listCategoriesSQL); err != nil {
		return domain.Catalog{}, fmt.Errorf("list label_categories: %w", err)
	}

	var labels []labelRow
	if err := pgxscan.Select(ctx, q, &labels, listLabelsSQL); err != nil {
		return domain.Catalog{}, fmt.Errorf("list status_labels: %w", err)
	}

	out := domain.Catalog{
		Categories: make([]domain.LabelCategory, len(cats)),
		Labels:     make([]domain.StatusLabel, len(labels)),
	}
	for i, c := range cats {
		out.Categories[i] = domain.LabelCategory(c)
	}
	for i, l := range labels {
		out.Labels[i] = domain.StatusLabel(l)
	}
	return out, nil
}

// UpsertCategory creates or updates a category by name and returns its id.
func (r *Repo) UpsertCategory(ctx context.Context, c domain.LabelCategory) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, upsertCategorySQL, c.Name, c.Color, c.Emoji, c.Position).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "label_category", c.ID)
	}
	return id, nil
}

// UpsertLabel creates or updates a label by (category, name) and returns its id.
func (r *Repo) UpsertLabel(ctx context.Context, l domain.StatusLabel) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, upsertLabelSQL, l.CategoryID, l.Name, l.Position).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "status_label", l.CategoryID)
	}
	return id, nil
}
