// Package plan serves read-side plan queries: the filtered board list and the
// lightweight queue counters polled by clients.
package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

//go:generate moq -out plan_mock_test.go -pkg plan . planRepo

type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	List(ctx context.Context, filter domain.PlanFilter) ([]domain.Plan, error)
	QueueCounts(ctx context.Context) (domain.QueueCounts, error)
}

const (
	DefaultMaxLimit = 1000
	maxSearchLength = 200
)

// Service provides plan read operations.
type Service struct {
	plans    planRepo
	maxLimit int
	log      *slog.Logger
}

// NewService creates a new plan query service.
func NewService(log *slog.Logger, plans planRepo, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Service{
		plans:    plans,
		maxLimit: maxLimit,
		log:      log.With("service", "plan"),
	}
}

// ListInput holds list filter parameters. Zero values mean "no constraint".
type ListInput struct {
	States     []domain.PlanState
	ClinicID   *uuid.UUID
	DoctorID   *uuid.UUID
	WorkTypeID *uuid.UUID
	UrgentOnly bool
	Search     string
	Limit      int
	Offset     int
}

// Page is one window of a plan list. HasMore reports that rows exist past it.
type Page struct {
	Plans   []domain.Plan
	HasMore bool
}

func (i ListInput) Validate() error {
	var errs []domain.FieldError

	for _, s := range i.States {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "state", Message: fmt.Sprintf("unknown state %q", s)})
			break
		}
	}
	if len(i.Search) > maxSearchLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns one page of plans matching the input, urgent first then newest
// first. The page never exceeds maxLimit; callers follow HasMore with Offset.
func (s *Service) List(ctx context.Context, input ListInput) (Page, error) {
	if err := input.Validate(); err != nil {
		return Page{}, err
	}

	limit := input.Limit
	if limit == 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	filter := domain.PlanFilter{
		States:     input.States,
		ClinicID:   input.ClinicID,
		DoctorID:   input.DoctorID,
		WorkTypeID: input.WorkTypeID,
		UrgentOnly: input.UrgentOnly,
		Limit:      limit + 1,
		Offset:     input.Offset,
	}
	if q := strings.TrimSpace(input.Search); q != "" {
		filter.Search = &q
	}

	plans, err := s.plans.List(ctx, filter)
	if err != nil {
		return Page{}, fmt.Errorf("list plans: %w", err)
	}
	if len(plans) > limit {
		return Page{Plans: plans[:limit], HasMore: true}, nil
	}
	return Page{Plans: plans}, nil
}

// Get returns a single plan.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// QueueCounts returns the number of queued plans and how many are urgent.
func (s *Service) QueueCounts(ctx context.Context) (domain.QueueCounts, error) {
	c, err := s.plans.QueueCounts(ctx)
	if err != nil {
		return domain.QueueCounts{}, fmt.Errorf("queue counts: %w", err)
	}
	return c, nil
}
