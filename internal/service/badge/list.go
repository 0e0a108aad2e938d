package badge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// ListForPlan returns a plan's badges in insertion order.
func (s *Service) ListForPlan(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error) {
	if planID == uuid.Nil {
		return nil, domain.NewValidationError("plan_id", "required")
	}

	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	badges, err := s.badges.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return badges, nil
}

// Catalog returns every label category and status label.
func (s *Service) Catalog(ctx context.Context) (domain.Catalog, error) {
	c, err := s.catalog.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// Summaries returns one capped summary per requested plan id, in request
// order. Plans without badges get an empty summary.
func (s *Service) Summaries(ctx context.Context, planIDs []uuid.UUID) ([]domain.BadgeSummary, error) {
	if len(planIDs) > maxSummaryPlans {
		return nil, domain.NewValidationError("plan_ids", fmt.Sprintf("max %d", maxSummaryPlans))
	}

	badges, err := s.badges.ListByPlanIDs(ctx, planIDs)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	byPlan := make(map[uuid.UUID][]domain.Badge, len(planIDs))
	for _, b := range badges {
		byPlan[b.PlanID] = append(byPlan[b.PlanID], b)
	}

	out := make([]domain.BadgeSummary, len(planIDs))
	for i, id := range planIDs {
		out[i] = domain.SummarizeBadges(id, byPlan[id], s.inlineCap)
	}
	return out, nil
}
