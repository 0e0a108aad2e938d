package boardsync

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/client"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// fakeServer is an in-memory backend applying the real transition policy.
type fakeServer struct {
	mu     sync.Mutex
	plans  map[uuid.UUID]domain.Plan
	badges map[uuid.UUID][]domain.Badge
	counts domain.QueueCounts

	// gate, when set, blocks Transition and ToggleBadge until closed.
	gate          chan struct{}
	transitionErr error
	toggleErr     error
	listErr       error
	countsErr     error

	listCalls       int
	transitionCalls int
	listBadgeCalls  int
	countCalls      int
}

func newFakeServer(plans ...domain.Plan) *fakeServer {
	f := &fakeServer{
		plans:  make(map[uuid.UUID]domain.Plan),
		badges: make(map[uuid.UUID][]domain.Badge),
	}
	for _, p := range plans {
		f.plans[p.ID] = p
	}
	return f
}

func (f *fakeServer) wait(ctx context.Context) error {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeServer) ListPlans(ctx context.Context, q client.ListQuery) ([]api.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]api.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		wp := api.FromPlan(p)
		if q.IncludeBadges {
			wp.Badges = api.FromBadgeSummary(domain.SummarizeBadges(p.ID, f.badges[p.ID], 3))
		}
		out = append(out, wp)
	}
	slices.SortFunc(out, func(a, b api.Plan) int { return slices.Compare(a.ID[:], b.ID[:]) })
	return out, nil
}

func (f *fakeServer) Transition(ctx context.Context, planID uuid.UUID, to domain.PlanState, reason *string, subtype *domain.ReopenSubtype) (*domain.Plan, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitionCalls++
	if f.transitionErr != nil {
		return nil, f.transitionErr
	}
	p, ok := f.plans[planID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := domain.CheckTransition(p.State, to, reason, subtype); err != nil {
		return nil, err
	}
	p.State = to
	p.LastReason = reason
	if subtype != nil {
		p.ReopenSubtype = subtype
	}
	p.UpdatedAt = p.UpdatedAt.Add(time.Second)
	f.plans[planID] = p
	return &p, nil
}

func (f *fakeServer) ListBadges(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listBadgeCalls++
	return slices.Clone(f.badges[planID]), nil
}

func (f *fakeServer) ToggleBadge(ctx context.Context, planID, labelID uuid.UUID) (bool, error) {
	if err := f.wait(ctx); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	cur := f.badges[planID]
	if i := slices.IndexFunc(cur, func(b domain.Badge) bool { return b.LabelID == labelID }); i >= 0 {
		f.badges[planID] = slices.Delete(cur, i, i+1)
		return false, nil
	}
	f.badges[planID] = append(cur, domain.Badge{PlanID: planID, LabelID: labelID})
	return true, nil
}

func (f *fakeServer) Catalog(ctx context.Context) (domain.Catalog, error) {
	return domain.Catalog{Categories: []domain.LabelCategory{{ID: uuid.New(), Name: "Lab"}}}, nil
}

func (f *fakeServer) QueueCounts(ctx context.Context) (domain.QueueCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	if f.countsErr != nil {
		return domain.QueueCounts{}, f.countsErr
	}
	return f.counts, nil
}

func (f *fakeServer) set(fn func(f *fakeServer)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeServer) state(id uuid.UUID) domain.PlanState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plans[id].State
}

// memPrefs is an in-memory prefsStore.
type memPrefs struct {
	mu      sync.Mutex
	saved   map[string]domain.BoardPreferences
	saveErr error
}

func newMemPrefs() *memPrefs {
	return &memPrefs{saved: make(map[string]domain.BoardPreferences)}
}

func (m *memPrefs) Load(_ context.Context, userID string) domain.BoardPreferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[userID].Clone()
}

func (m *memPrefs) Save(_ context.Context, userID string, p domain.BoardPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[userID] = p.Clone()
	return nil
}

func (m *memPrefs) Reset(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved, userID)
	return nil
}
