package catalogseed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

//go:generate moq -out catalogseed_mock_test.go -pkg catalogseed . catalogWriter txManager

type catalogWriter interface {
	UpsertCategory(ctx context.Context, c domain.LabelCategory) (uuid.UUID, error)
	UpsertLabel(ctx context.Context, l domain.StatusLabel) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts what a run wrote.
type Result struct {
	Categories int
	Labels     int
}

// Seeder upserts a catalog file in a single transaction.
type Seeder struct {
	repo catalogWriter
	tx   txManager
	log  *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(log *slog.Logger, repo catalogWriter, tx txManager) *Seeder {
	return &Seeder{repo: repo, tx: tx, log: log.With("service", "catalog-seed")}
}

// Run upserts every category and label of f. With dryRun nothing is written
// and the counts describe what would be.
func (s *Seeder) Run(ctx context.Context, f *File, dryRun bool) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}

	if dryRun {
		res := Result{Categories: len(f.Categories), Labels: f.LabelCount()}
		s.log.InfoContext(ctx, "dry run",
			slog.Int("categories", res.Categories),
			slog.Int("labels", res.Labels),
		)
		return res, nil
	}

	var res Result
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}
		for i, c := range f.Categories {
			catID, err := s.repo.UpsertCategory(ctx, domain.LabelCategory{
				Name:     strings.TrimSpace(c.Name),
				Color:    strings.ToLower(c.Color),
				Emoji:    c.Emoji,
				Position: i,
			})
			if err != nil {
				return fmt.Errorf("upsert category %q: %w", c.Name, err)
			}
			res.Categories++

			for j, name := range c.Labels {
				if _, err := s.repo.UpsertLabel(ctx, domain.StatusLabel{
					CategoryID: catID,
					Name:       strings.TrimSpace(name),
					Position:   j,
				}); err != nil {
					return fmt.Errorf("upsert label %q in %q: %w", name, c.Name, err)
				}
				res.Labels++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "catalog seeded",
		slog.Int("categories", res.Categories),
		slog.Int("labels", res.Labels),
	)
	return res, nil
}
