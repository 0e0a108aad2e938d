package boardsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// MoveState is the stage of a pending move.
type MoveState string

// A guarded move starts in MoveAwaitingReason. MoveApplied means the local
// board shows the target column while the server call is in flight.
// MoveRollingBack means the server refused the move and the board is being
// reloaded; the plan stays locked against new moves until that finishes.
const (
	MoveAwaitingReason MoveState = "awaiting_reason"
	MoveApplied        MoveState = "applied"
	MoveRollingBack    MoveState = "rolling_back"
	MoveConfirmed      MoveState = "confirmed"
	MoveRolledBack     MoveState = "rolled_back"
	MoveCancelled      MoveState = "cancelled"
)

// Terminal reports whether the move has finished.
func (s MoveState) Terminal() bool {
	return s == MoveConfirmed || s == MoveRolledBack || s == MoveCancelled
}

// ErrMoveNotAwaiting is returned by Confirm on a move that is not waiting for
// a reason.
var ErrMoveNotAwaiting = errors.New("move is not awaiting a reason")

// Move is one drag or quick action on a plan. At most one move per plan is
// outstanding in a session.
type Move struct {
	PlanID uuid.UUID
	From   domain.PlanState
	To     domain.PlanState
	Rule   domain.TransitionRule

	s      *Session
	state  MoveState
	err    error
	done   chan struct{}
	reason *string
	sub    *domain.ReopenSubtype
	prev   domain.Plan
}

// State returns the current stage of the move.
func (m *Move) State() MoveState {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.state
}

// Err returns the server error of a rolled back move.
func (m *Move) Err() error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.err
}

// Done is closed once the move reaches a terminal state.
func (m *Move) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until the move finishes and returns its error, if any.
func (m *Move) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return m.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Move starts moving a plan to another column. Denied moves fail at once with
// domain.ErrIllegalTransition and change nothing. Direct moves are applied
// immediately; guarded moves are returned in MoveAwaitingReason and take
// effect only after Confirm.
func (s *Session) Move(planID uuid.UUID, to domain.PlanState) (*Move, error) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return nil, context.Canceled
	}
	i := s.indexLocked(planID)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}
	if _, busy := s.pending[planID]; busy {
		s.mu.Unlock()
		return nil, fmt.Errorf("plan %s has a move in progress: %w", planID, domain.ErrConflict)
	}

	from := s.plans[i].State
	rule := domain.LookupTransition(from, to)
	if !rule.Allowed() {
		s.mu.Unlock()
		return nil, &domain.TransitionError{From: from, To: to, Err: domain.ErrIllegalTransition}
	}

	m := &Move{PlanID: planID, From: from, To: to, Rule: rule, s: s, done: make(chan struct{})}
	s.pending[planID] = m

	if rule == domain.TransitionReasonRequired {
		m.state = MoveAwaitingReason
		s.mu.Unlock()
		return m, nil
	}

	b := s.applyLocked(m)
	s.mu.Unlock()
	s.publish(b)
	return m, nil
}

// Confirm supplies the reason (and for a reopen the subtype) of a guarded
// move and applies it. A blank reason fails with domain.ErrReasonRequired
// and leaves the move waiting.
func (m *Move) Confirm(reason string, subtype *domain.ReopenSubtype) error {
	s := m.s
	s.mu.Lock()

	if m.state != MoveAwaitingReason {
		s.mu.Unlock()
		return ErrMoveNotAwaiting
	}
	if s.closed {
		s.mu.Unlock()
		return context.Canceled
	}
	if err := domain.CheckTransition(m.From, m.To, &reason, subtype); err != nil {
		s.mu.Unlock()
		return err
	}

	m.reason = &reason
	if domain.RequiresReopenSubtype(m.From, m.To) {
		sub := *subtype
		m.sub = &sub
	}

	b := s.applyLocked(m)
	s.mu.Unlock()
	s.publish(b)
	return nil
}

// Cancel abandons a move that is still waiting for its reason. The plan is
// left untouched. Cancel on any other move is a no-op.
func (m *Move) Cancel() {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.state != MoveAwaitingReason {
		return
	}
	m.state = MoveCancelled
	delete(s.pending, m.PlanID)
	close(m.done)
}

// applyLocked shows the move on the local board and sends it to the server.
func (s *Session) applyLocked(m *Move) board.Board {
	if i := s.indexLocked(m.PlanID); i >= 0 {
		m.prev = s.plans[i].Clone()
		m.overlay(&s.plans[i])
	}
	m.state = MoveApplied
	b := s.reprojectLocked()

	s.goAsync(func(ctx context.Context) { s.sendMove(ctx, m) })
	return b
}

// overlay writes the optimistic result of the move onto p.
func (m *Move) overlay(p *domain.Plan) {
	p.State = m.To
	p.LastReason = m.reason
	if m.sub != nil {
		p.ReopenSubtype = m.sub
	}
}

func (s *Session) sendMove(ctx context.Context, m *Move) {
	updated, err := s.api.Transition(ctx, m.PlanID, m.To, m.reason, m.sub)
	if err == nil {
		s.mu.Lock()
		if i := s.indexLocked(m.PlanID); i >= 0 {
			s.plans[i] = *updated
		}
		s.finishLocked(m, MoveConfirmed, nil)
		b := s.reprojectLocked()
		s.mu.Unlock()
		s.publish(b)
		return
	}

	s.log.WarnContext(ctx, "move failed, rolling back",
		slog.String("plan_id", m.PlanID.String()),
		slog.String("from", string(m.From)),
		slog.String("to", string(m.To)),
		slog.String("error", err.Error()),
	)

	if ctx.Err() != nil {
		// Session closed: no reload, the next Load recovers.
		s.mu.Lock()
		s.finishLocked(m, MoveRolledBack, err)
		s.mu.Unlock()
		return
	}

	// The move keeps its pending slot until the reload lands, so no new move
	// on the plan is accepted meanwhile. The plan shows its pre-move snapshot
	// and the reload no longer overlays the move.
	s.mu.Lock()
	m.state = MoveRollingBack
	if i := s.indexLocked(m.PlanID); i >= 0 {
		s.plans[i] = m.prev.Clone()
	}
	b := s.reprojectLocked()
	s.mu.Unlock()
	s.publish(b)

	if rerr := s.Reload(ctx); rerr != nil {
		s.notify(Notification{Kind: NotifyReloadFailed, PlanID: m.PlanID, Message: "board reload failed", Err: rerr})
	}

	s.mu.Lock()
	s.finishLocked(m, MoveRolledBack, err)
	s.mu.Unlock()

	s.notify(Notification{
		Kind:    NotifyTransitionFailed,
		PlanID:  m.PlanID,
		Message: fmt.Sprintf("could not move plan to %s", m.To),
		Err:     err,
	})
}

func (s *Session) finishLocked(m *Move, state MoveState, err error) {
	if m.state.Terminal() {
		return
	}
	m.state = state
	m.err = err
	if s.pending[m.PlanID] == m {
		delete(s.pending, m.PlanID)
	}
	close(m.done)
}
