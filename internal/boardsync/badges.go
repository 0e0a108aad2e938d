package boardsync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// BadgeSet returns the full badge list of a plan, fetching it on first use.
func (s *Session) BadgeSet(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error) {
	s.mu.Lock()
	cached, ok := s.badges[planID]
	s.mu.Unlock()
	if ok {
		return slices.Clone(cached), nil
	}

	badges, err := s.api.ListBadges(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	s.mu.Lock()
	s.setBadgesLocked(planID, badges)
	s.mu.Unlock()
	return slices.Clone(badges), nil
}

func (s *Session) setBadgesLocked(planID uuid.UUID, badges []domain.Badge) {
	s.badges[planID] = badges
	s.summaries[planID] = domain.SummarizeBadges(planID, badges, s.inlineCap)
}

// ToggleBadge flips a badge on the local view and sends the toggle to the
// server. It returns the optimistic membership. When the server fails or
// disagrees, the plan's badge list is refetched; failures also raise a
// notification.
func (s *Session) ToggleBadge(ctx context.Context, planID, labelID uuid.UUID) (bool, error) {
	if _, err := s.BadgeSet(ctx, planID); err != nil {
		return false, err
	}

	key := badgeKey{plan: planID, label: labelID}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, context.Canceled
	}
	if s.badgePending[key] {
		s.mu.Unlock()
		return false, fmt.Errorf("badge toggle in progress: %w", domain.ErrConflict)
	}

	current := s.badges[planID]
	idx := slices.IndexFunc(current, func(b domain.Badge) bool { return b.LabelID == labelID })
	var next []domain.Badge
	added := idx < 0
	if added {
		next = append(slices.Clone(current), domain.Badge{PlanID: planID, LabelID: labelID, AddedAt: s.now()})
	} else {
		next = slices.Delete(slices.Clone(current), idx, idx+1)
	}
	s.setBadgesLocked(planID, next)
	s.badgePending[key] = true
	b := s.view
	s.goAsync(func(ctx context.Context) { s.sendToggle(ctx, key, added, current) })
	s.mu.Unlock()

	s.publish(b)
	return added, nil
}

func (s *Session) sendToggle(ctx context.Context, key badgeKey, expected bool, prev []domain.Badge) {
	defer func() {
		s.mu.Lock()
		delete(s.badgePending, key)
		s.mu.Unlock()
	}()

	added, err := s.api.ToggleBadge(ctx, key.plan, key.label)
	if err == nil && added == expected {
		return
	}
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		s.log.WarnContext(ctx, "badge toggle failed, refetching",
			slog.String("plan_id", key.plan.String()),
			slog.String("label_id", key.label.String()),
			slog.String("error", err.Error()),
		)
		s.notify(Notification{Kind: NotifyBadgeFailed, PlanID: key.plan, Message: "could not update badge", Err: err})
	}

	// Another operator toggled the same pair concurrently, or the call failed:
	// the server list is the truth.
	badges, lerr := s.api.ListBadges(ctx, key.plan)
	if lerr != nil {
		s.log.WarnContext(ctx, "badge refetch failed", slog.String("error", lerr.Error()))
		if err == nil {
			return
		}
		s.mu.Lock()
		s.setBadgesLocked(key.plan, prev)
		b := s.view
		s.mu.Unlock()
		s.publish(b)
		return
	}

	s.mu.Lock()
	s.setBadgesLocked(key.plan, badges)
	b := s.view
	s.mu.Unlock()
	s.publish(b)
}
