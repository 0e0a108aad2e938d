package badge_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/badge"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/testhelper"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func newRepo(t *testing.T) (*badge.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return badge.New(pool), pool
}

func TestRepo_InsertDeleteList(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	cat := testhelper.SeedCatalog(t, pool, 3)
	actor := uuid.New()

	for _, l := range cat.Labels {
		if _, err := repo.Insert(ctx, p.ID, l.ID, &actor); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := repo.ListByPlan(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByPlan: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 badges, got %d", len(got))
	}
	for i, b := range got {
		if b.LabelID != cat.Labels[i].ID {
			t.Errorf("badge %d out of insertion order", i)
		}
		if b.AddedBy == nil || *b.AddedBy != actor {
			t.Errorf("AddedBy: got %v, want %s", b.AddedBy, actor)
		}
	}

	deleted, err := repo.Delete(ctx, p.ID, cat.Labels[1].ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, p.ID, cat.Labels[1].ID)
	if err != nil || deleted {
		t.Fatalf("second Delete: deleted=%v err=%v, want false nil", deleted, err)
	}
}

func TestRepo_Insert_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	p := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	cat := testhelper.SeedCatalog(t, pool, 1)

	if _, err := repo.Insert(ctx, p.ID, cat.Labels[0].ID, nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	_, err := repo.Insert(ctx, p.ID, cat.Labels[0].ID, nil)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_Insert_MissingLabel(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)

	p := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	_, err := repo.Insert(context.Background(), p.ID, uuid.New(), nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListByPlanIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	p1 := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	p2 := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	cat := testhelper.SeedCatalog(t, pool, 2)

	for _, l := range cat.Labels {
		if _, err := repo.Insert(ctx, p1.ID, l.ID, nil); err != nil {
			t.Fatalf("Insert p1: %v", err)
		}
	}
	if _, err := repo.Insert(ctx, p2.ID, cat.Labels[0].ID, nil); err != nil {
		t.Fatalf("Insert p2: %v", err)
	}

	got, err := repo.ListByPlanIDs(ctx, []uuid.UUID{p1.ID, p2.ID, uuid.New()})
	if err != nil {
		t.Fatalf("ListByPlanIDs: %v", err)
	}
	counts := map[uuid.UUID]int{}
	for _, b := range got {
		counts[b.PlanID]++
	}
	if counts[p1.ID] != 2 || counts[p2.ID] != 1 {
		t.Errorf("counts: got %v", counts)
	}

	empty, err := repo.ListByPlanIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty ids: got %v, %v", empty, err)
	}
}

// Concurrent lock-delete-insert sequences on one pair must never leave two rows.
func TestRepo_LockPair_SerializesToggles(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	tm := postgres.NewTxManager(pool)

	p := testhelper.SeedPlan(t, pool, testhelper.PlanSeed{})
	label := testhelper.SeedCatalog(t, pool, 1).Labels[0]

	toggle := func() error {
		return tm.RunInTx(ctx, func(ctx context.Context) error {
			if err := repo.LockPair(ctx, p.ID, label.ID); err != nil {
				return err
			}
			deleted, err := repo.Delete(ctx, p.ID, label.ID)
			if err != nil || deleted {
				return err
			}
			_, err = repo.Insert(ctx, p.ID, label.ID, nil)
			return err
		})
	}

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- toggle()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	var count int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM plan_badges WHERE plan_id = $1 AND label_id = $2`, p.ID, label.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("after %d toggles expected 0 rows, got %d", n, count)
	}
}
