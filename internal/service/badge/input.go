package badge

import (
	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// ToggleInput identifies the badge to flip. ActorID defaults to the actor
// carried by the request context.
type ToggleInput struct {
	PlanID  uuid.UUID
	LabelID uuid.UUID
	ActorID *uuid.UUID
}

func (i ToggleInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.LabelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "label_id", Message: "required"})
	}
	if i.ActorID != nil && *i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleResult reports the pair's membership after the toggle. Current is the
// inserted badge when Added, nil otherwise.
type ToggleResult struct {
	Added   bool
	Current *domain.Badge
}

// maxSummaryPlans bounds one Summaries batch.
const maxSummaryPlans = 1000
