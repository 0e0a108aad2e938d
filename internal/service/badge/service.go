// Package badge manages status badges on plans. Toggling a (plan, label)
// pair is an atomic add-or-remove: concurrent toggles on the same pair are
// serialized by a transaction-scoped lock and never produce two rows.
package badge

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/telemetry"
)

//go:generate moq -out badge_mock_test.go -pkg badge . badgeRepo catalogRepo planRepo txManager

type badgeRepo interface {
	LockPair(ctx context.Context, planID, labelID uuid.UUID) error
	Delete(ctx context.Context, planID, labelID uuid.UUID) (bool, error)
	Insert(ctx context.Context, planID, labelID uuid.UUID, addedBy *uuid.UUID) (domain.Badge, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error)
	ListByPlanIDs(ctx context.Context, planIDs []uuid.UUID) ([]domain.Badge, error)
}

type catalogRepo interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultInlineCap is the number of badges shown inline when not configured.
const DefaultInlineCap = 3

// Service provides badge operations.
type Service struct {
	badges    badgeRepo
	catalog   catalogRepo
	plans     planRepo
	tx        txManager
	metrics   *telemetry.Metrics
	inlineCap int
	log       *slog.Logger
}

// NewService creates a new badge service. A negative inlineCap falls back to
// DefaultInlineCap; metrics may be nil.
func NewService(
	log *slog.Logger,
	badges badgeRepo,
	catalog catalogRepo,
	plans planRepo,
	tx txManager,
	metrics *telemetry.Metrics,
	inlineCap int,
) *Service {
	if inlineCap < 0 {
		inlineCap = DefaultInlineCap
	}
	return &Service{
		badges:    badges,
		catalog:   catalog,
		plans:     plans,
		tx:        tx,
		metrics:   metrics,
		inlineCap: inlineCap,
		log:       log.With("service", "badge"),
	}
}

// InlineCap returns the number of badges a summary shows inline.
func (s *Service) InlineCap() int {
	return s.inlineCap
}
