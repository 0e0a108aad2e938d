package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
	"github.com/asymdl-hash/AsymLAB-sub000/pkg/ctxutil"
)

// RequestTransition moves a plan to input.To and returns the plan as stored.
//
// Errors: *domain.ValidationError for a malformed request or missing reopen
// subtype, domain.ErrNotFound, and *domain.TransitionError wrapping
// domain.ErrIllegalTransition or domain.ErrReasonRequired. Nothing is written
// when an error is returned.
func (s *Service) RequestTransition(ctx context.Context, input TransitionInput) (*domain.Plan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var from domain.PlanState
	var updated *domain.Plan

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.plans.GetForUpdate(txCtx, input.PlanID)
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		from = current.State

		if err := domain.CheckTransition(from, input.To, input.Reason, input.ReopenSubtype); err != nil {
			return err
		}

		change := domain.StateChange{PlanID: input.PlanID, To: input.To}
		if !domain.IsBlank(input.Reason) {
			change.Reason = input.Reason
		}
		if domain.RequiresReopenSubtype(from, input.To) {
			change.ReopenSubtype = input.ReopenSubtype
		}

		updated, err = s.plans.UpdateState(txCtx, change)
		if err != nil {
			return fmt.Errorf("update plan state: %w", err)
		}

		if _, err := s.history.Create(txCtx, domain.PlanTransition{
			PlanID:        input.PlanID,
			FromState:     from,
			ToState:       input.To,
			Reason:        change.Reason,
			ReopenSubtype: change.ReopenSubtype,
			ActorID:       ctxutil.ActorIDPtr(ctx),
		}); err != nil {
			return fmt.Errorf("record transition: %w", err)
		}

		return nil
	})

	s.metrics.RecordTransition(ctx, from, input.To, err, time.Since(start))

	if err != nil {
		var te *domain.TransitionError
		if errors.As(err, &te) {
			s.log.InfoContext(ctx, "transition rejected",
				slog.String("plan_id", input.PlanID.String()),
				slog.String("from", string(te.From)),
				slog.String("to", string(te.To)),
				slog.String("reason", te.Err.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "plan transitioned",
		slog.String("plan_id", input.PlanID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.State)),
	)

	return updated, nil
}

// History returns the newest transitions of a plan first. A limit outside
// (0, configured limit] falls back to the configured limit.
func (s *Service) History(ctx context.Context, planID uuid.UUID, limit int) ([]domain.PlanTransition, error) {
	if planID == uuid.Nil {
		return nil, domain.NewValidationError("plan_id", "required")
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	items, err := s.history.ListByPlan(ctx, planID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	return items, nil
}
