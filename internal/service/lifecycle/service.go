// Package lifecycle applies plan state transitions. Each request is
// re-evaluated against the transition table while holding the plan's row lock,
// so concurrent requests on one plan serialize and the later one sees the
// earlier one's result.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/telemetry"
)

//go:generate moq -out lifecycle_mock_test.go -pkg lifecycle . planRepo historyRepo txManager

type planRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	UpdateState(ctx context.Context, change domain.StateChange) (*domain.Plan, error)
}

type historyRepo interface {
	Create(ctx context.Context, t domain.PlanTransition) (domain.PlanTransition, error)
	ListByPlan(ctx context.Context, planID uuid.UUID, limit int) ([]domain.PlanTransition, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultHistoryLimit applies when the caller passes no limit.
const DefaultHistoryLimit = 50

// Service provides plan lifecycle operations.
type Service struct {
	plans        planRepo
	history      historyRepo
	tx           txManager
	metrics      *telemetry.Metrics
	historyLimit int
	log          *slog.Logger
}

// NewService creates a new lifecycle service. metrics may be nil.
func NewService(
	log *slog.Logger,
	plans planRepo,
	history historyRepo,
	tx txManager,
	metrics *telemetry.Metrics,
	historyLimit int,
) *Service {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Service{
		plans:        plans,
		history:      history,
		tx:           tx,
		metrics:      metrics,
		historyLimit: historyLimit,
		log:          log.With("service", "lifecycle"),
	}
}
