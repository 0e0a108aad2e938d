// Package boardsync keeps a client's view of the board in step with the
// server. Moves and badge toggles are applied to the local view at once and
// confirmed or rolled back when the server answers. A failed move reloads the
// whole plan set rather than patching the one plan back.
package boardsync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/client"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

type backend interface {
	ListPlans(ctx context.Context, q client.ListQuery) ([]api.Plan, error)
	Transition(ctx context.Context, planID uuid.UUID, to domain.PlanState, reason *string, subtype *domain.ReopenSubtype) (*domain.Plan, error)
	ListBadges(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error)
	ToggleBadge(ctx context.Context, planID, labelID uuid.UUID) (bool, error)
	Catalog(ctx context.Context) (domain.Catalog, error)
	QueueCounts(ctx context.Context) (domain.QueueCounts, error)
}

type prefsStore interface {
	Load(ctx context.Context, userID string) domain.BoardPreferences
	Save(ctx context.Context, userID string, prefs domain.BoardPreferences) error
	Reset(ctx context.Context, userID string) error
}

const (
	defaultInlineCap    = 3
	defaultNotifyBuffer = 32
)

// Option configures a Session.
type Option func(*Session)

// WithInlineCap sets how many badges a plan's summary shows inline.
func WithInlineCap(n int) Option {
	return func(s *Session) { s.inlineCap = n }
}

// WithOnChange registers a callback invoked with the new board after every
// local change. It runs without the session lock held.
func WithOnChange(fn func(board.Board)) Option {
	return func(s *Session) { s.onChange = fn }
}

// Session is one operator's live board.
type Session struct {
	api       backend
	prefs     prefsStore
	userID    string
	inlineCap int
	onChange  func(board.Board)
	now       func() time.Time
	log       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	notifications chan Notification

	mu           sync.Mutex
	plans        []domain.Plan
	badges       map[uuid.UUID][]domain.Badge
	summaries    map[uuid.UUID]domain.BadgeSummary
	catalog      domain.Catalog
	counts       domain.QueueCounts
	preferences  domain.BoardPreferences
	view         board.Board
	pending      map[uuid.UUID]*Move
	badgePending map[badgeKey]bool
	closed       bool
}

type badgeKey struct{ plan, label uuid.UUID }

// NewSession creates a session for userID. Call Load before use and Close
// when done.
func NewSession(log *slog.Logger, remote backend, prefs prefsStore, userID string, opts ...Option) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		api:           remote,
		prefs:         prefs,
		userID:        userID,
		inlineCap:     defaultInlineCap,
		now:           time.Now,
		log:           log.With("component", "boardsync", "user", userID),
		ctx:           ctx,
		cancel:        cancel,
		notifications: make(chan Notification, defaultNotifyBuffer),
		badges:        make(map[uuid.UUID][]domain.Badge),
		summaries:     make(map[uuid.UUID]domain.BadgeSummary),
		pending:       make(map[uuid.UUID]*Move),
		badgePending:  make(map[badgeKey]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.view = board.Project(nil, domain.DefaultBoardPreferences())
	return s
}

// Load fetches plans, the badge catalog and queue counters concurrently and
// restores the user's saved preferences.
func (s *Session) Load(ctx context.Context) error {
	var (
		plans   []api.Plan
		catalog domain.Catalog
		counts  domain.QueueCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plans, err = s.api.ListPlans(gctx, client.ListQuery{IncludeBadges: true})
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = s.api.Catalog(gctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = s.api.QueueCounts(gctx)
		if err != nil {
			return fmt.Errorf("queue counts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	prefs := s.prefs.Load(ctx, s.userID)

	s.mu.Lock()
	s.catalog = catalog
	s.counts = counts
	s.preferences = prefs
	s.replacePlansLocked(plans)
	b := s.reprojectLocked()
	s.mu.Unlock()

	s.publish(b)
	s.log.InfoContext(ctx, "board loaded", slog.Int("plans", len(plans)))
	return nil
}

// Reload refetches the plan set. Outstanding optimistic moves stay applied.
func (s *Session) Reload(ctx context.Context) error {
	plans, err := s.api.ListPlans(ctx, client.ListQuery{IncludeBadges: true})
	if err != nil {
		return fmt.Errorf("list plans: %w", err)
	}

	s.mu.Lock()
	s.replacePlansLocked(plans)
	b := s.reprojectLocked()
	s.mu.Unlock()

	s.publish(b)
	return nil
}

// replacePlansLocked installs a fresh plan set and re-applies every move that
// is still waiting for the server.
func (s *Session) replacePlansLocked(plans []api.Plan) {
	s.plans = make([]domain.Plan, len(plans))
	s.summaries = make(map[uuid.UUID]domain.BadgeSummary, len(plans))
	for i, p := range plans {
		s.plans[i] = p.ToDomain()
		if p.Badges != nil {
			s.summaries[p.ID] = domain.BadgeSummary{
				PlanID:   p.ID,
				Inline:   api.BadgesToDomain(p.Badges.Inline),
				Overflow: p.Badges.Overflow,
			}
		}
	}
	// Full badge sets are refetched on demand.
	s.badges = make(map[uuid.UUID][]domain.Badge)

	for id, m := range s.pending {
		if m.state != MoveApplied {
			continue
		}
		if i := s.indexLocked(id); i >= 0 {
			m.overlay(&s.plans[i])
		}
	}
}

func (s *Session) indexLocked(planID uuid.UUID) int {
	for i := range s.plans {
		if s.plans[i].ID == planID {
			return i
		}
	}
	return -1
}

func (s *Session) reprojectLocked() board.Board {
	s.view = board.Project(s.plans, s.preferences)
	return s.view
}

func (s *Session) publish(b board.Board) {
	if s.onChange != nil {
		s.onChange(b)
	}
}

// Board returns the current projection. The result must not be modified.
func (s *Session) Board() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Plan returns the local copy of a plan.
func (s *Session) Plan(planID uuid.UUID) (domain.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(planID); i >= 0 {
		return s.plans[i].Clone(), true
	}
	return domain.Plan{}, false
}

// BadgeSummary returns the compact badge view of a plan.
func (s *Session) BadgeSummary(planID uuid.UUID) domain.BadgeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sum, ok := s.summaries[planID]; ok {
		return sum
	}
	return domain.BadgeSummary{PlanID: planID}
}

// Catalog returns the status label catalog loaded with the board.
func (s *Session) Catalog() domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Counts returns the last fetched queue counters.
func (s *Session) Counts() domain.QueueCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

// Notifications delivers transient failure notices. Notices are dropped when
// nobody drains the channel.
func (s *Session) Notifications() <-chan Notification {
	return s.notifications
}

func (s *Session) notify(n Notification) {
	n.At = s.now()
	select {
	case s.notifications <- n:
	default:
		s.log.Warn("notification dropped", slog.String("kind", string(n.Kind)))
	}
}

// Wait blocks until every in-flight server call has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close abandons in-flight calls and waits for their goroutines to exit.
// Abandoned calls are not retried. Moves still waiting for a reason are
// cancelled.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	for _, m := range s.pending {
		if m.state == MoveAwaitingReason {
			s.finishLocked(m, MoveCancelled, nil)
		}
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Session) goAsync(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}
