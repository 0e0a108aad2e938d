package lifecycle

import (
	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

const maxReasonLength = 1000

// TransitionInput holds the parameters of a transition request.
type TransitionInput struct {
	PlanID        uuid.UUID
	To            domain.PlanState
	Reason        *string
	ReopenSubtype *domain.ReopenSubtype
}

// Validate checks the request shape. Policy checks happen later, against the
// locked current state.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.To == "" {
		errs = append(errs, domain.FieldError{Field: "to_state", Message: "required"})
	} else if !i.To.IsValid() {
		errs = append(errs, domain.FieldError{Field: "to_state", Message: "unknown state"})
	}
	if i.Reason != nil && len(*i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if i.ReopenSubtype != nil && !i.ReopenSubtype.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reopen_subtype", Message: "must be correction or remake"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
