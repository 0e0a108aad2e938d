package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Transition outcomes recorded on plans.transitions.
const (
	OutcomeApplied        = "applied"
	OutcomeIllegal        = "illegal"
	OutcomeReasonRequired = "reason_required"
	OutcomeNotFound       = "not_found"
	OutcomeInvalid        = "invalid"
	OutcomeError          = "error"
)

// Metrics holds the lifecycle and badge instruments. A nil *Metrics records nothing.
type Metrics struct {
	transitions metric.Int64Counter
	duration    metric.Float64Histogram
	toggles     metric.Int64Counter
}

// NewMetrics creates the instruments on m.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	transitions, err := m.Int64Counter("plans.transitions",
		metric.WithDescription("Transition requests by source state, target state and outcome"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := m.Float64Histogram("plans.transition.duration",
		metric.WithDescription("Transition request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	toggles, err := m.Int64Counter("plans.badge_toggles",
		metric.WithDescription("Badge toggles by resulting presence"),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{transitions: transitions, duration: duration, toggles: toggles}, nil
}

// TransitionOutcome classifies a transition error for the outcome attribute.
func TransitionOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, domain.ErrIllegalTransition):
		return OutcomeIllegal
	case errors.Is(err, domain.ErrReasonRequired):
		return OutcomeReasonRequired
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// RecordTransition counts one transition request.
func (m *Metrics) RecordTransition(ctx context.Context, from, to domain.PlanState, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
		attribute.String("outcome", TransitionOutcome(err)),
	)
	m.transitions.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}

// RecordBadgeToggle counts one successful toggle.
func (m *Metrics) RecordBadgeToggle(ctx context.Context, added bool) {
	if m == nil {
		return
	}
	m.toggles.Add(ctx, 1, metric.WithAttributes(attribute.Bool("added", added)))
}
