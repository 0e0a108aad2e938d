package boardsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Preferences returns a copy of the active preferences.
func (s *Session) Preferences() domain.BoardPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences.Clone()
}

// SetFilter replaces the board filter.
func (s *Session) SetFilter(ctx context.Context, f domain.BoardFilter) error {
	return s.updatePreferences(ctx, func(p *domain.BoardPreferences) error {
		p.Filter = f
		return nil
	})
}

// SetModuleOrder replaces the saved column/module order.
func (s *Session) SetModuleOrder(ctx context.Context, order []string) error {
	return s.updatePreferences(ctx, func(p *domain.BoardPreferences) error {
		p.ModuleOrder = append([]string(nil), order...)
		return nil
	})
}

// Reorder moves a plan to position index within its column and saves the
// resulting manual order for that column.
func (s *Session) Reorder(ctx context.Context, planID uuid.UUID, index int) error {
	return s.updatePreferences(ctx, func(p *domain.BoardPreferences) error {
		state, ok := s.view.Locate(planID)
		if !ok {
			return fmt.Errorf("plan %s not on board: %w", planID, domain.ErrNotFound)
		}
		col := s.view.Column(state)
		current := make([]uuid.UUID, len(col.Plans))
		for i, pl := range col.Plans {
			current[i] = pl.ID
		}
		if p.ManualOrder == nil {
			p.ManualOrder = make(map[domain.PlanState][]uuid.UUID)
		}
		p.ManualOrder[state] = board.Reorder(current, planID, index)
		return nil
	})
}

// ResetPreferences restores the defaults and deletes the saved copy.
func (s *Session) ResetPreferences(ctx context.Context) error {
	s.mu.Lock()
	s.preferences = domain.DefaultBoardPreferences()
	b := s.reprojectLocked()
	s.mu.Unlock()
	s.publish(b)

	if err := s.prefs.Reset(ctx, s.userID); err != nil {
		s.log.WarnContext(ctx, "reset preferences failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// updatePreferences applies fn under the session lock, re-projects and then
// persists. A persistence error is returned but the change stays in effect.
func (s *Session) updatePreferences(ctx context.Context, fn func(p *domain.BoardPreferences) error) error {
	s.mu.Lock()
	next := s.preferences.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.preferences = next
	b := s.reprojectLocked()
	s.mu.Unlock()
	s.publish(b)

	return s.prefs.Save(ctx, s.userID, next)
}
