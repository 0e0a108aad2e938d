package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asymdl-hash/AsymLAB-sub000/pkg/ctxutil"
)

// Toggle removes the badge if present, otherwise adds it.
// Returns domain.ErrNotFound when the plan or label does not exist.
func (s *Service) Toggle(ctx context.Context, input ToggleInput) (*ToggleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := input.ActorID
	if actor == nil {
		actor = ctxutil.ActorIDPtr(ctx)
	}

	var result ToggleResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.badges.LockPair(txCtx, input.PlanID, input.LabelID); err != nil {
			return fmt.Errorf("lock badge: %w", err)
		}

		removed, err := s.badges.Delete(txCtx, input.PlanID, input.LabelID)
		if err != nil {
			return fmt.Errorf("delete badge: %w", err)
		}
		if removed {
			result = ToggleResult{Added: false}
			return nil
		}

		b, err := s.badges.Insert(txCtx, input.PlanID, input.LabelID, actor)
		if err != nil {
			return fmt.Errorf("insert badge: %w", err)
		}
		result = ToggleResult{Added: true, Current: &b}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordBadgeToggle(ctx, result.Added)
	s.log.InfoContext(ctx, "badge toggled",
		slog.String("plan_id", input.PlanID.String()),
		slog.String("label_id", input.LabelID.String()),
		slog.Bool("added", result.Added),
	)

	return &result, nil
}
