package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ref is a reference to a related record together with its display label.
type Ref struct {
	ID    uuid.UUID
	Label string
}

// Progress tracks completed work phases. 0 <= Done <= Total.
type Progress struct {
	Done  int
	Total int
}

// Plan is a treatment plan moving through the operational lifecycle.
type Plan struct {
	ID            uuid.UUID
	BusinessID    string
	Label         string
	State         PlanState
	Urgent        bool
	Patient       Ref
	Clinic        Ref
	Doctor        *Ref
	WorkType      Ref
	Progress      Progress
	LastReason    *string
	ReopenSubtype *ReopenSubtype
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	if p.Doctor != nil {
		d := *p.Doctor
		out.Doctor = &d
	}
	if p.LastReason != nil {
		r := *p.LastReason
		out.LastReason = &r
	}
	if p.ReopenSubtype != nil {
		s := *p.ReopenSubtype
		out.ReopenSubtype = &s
	}
	return out
}

// StateChange is a validated transition ready to be written.
type StateChange struct {
	PlanID        uuid.UUID
	To            PlanState
	Reason        *string
	ReopenSubtype *ReopenSubtype
}

// PlanTransition is an append-only history record of a successful state change.
type PlanTransition struct {
	ID            uuid.UUID
	PlanID        uuid.UUID
	FromState     PlanState
	ToState       PlanState
	Reason        *string
	ReopenSubtype *ReopenSubtype
	ActorID       *uuid.UUID
	CreatedAt     time.Time
}

// QueueCounts summarises the lab work queue: plans in active or reopened state.
type QueueCounts struct {
	Total  int
	Urgent int
}
