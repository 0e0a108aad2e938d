package domain

// PlanState is the operational lifecycle state of a treatment plan.
type PlanState string

const (
	PlanStateActive    PlanState = "active"
	PlanStatePaused    PlanState = "paused"
	PlanStateCompleted PlanState = "completed"
	PlanStateCancelled PlanState = "cancelled"
	PlanStateReopened  PlanState = "reopened"
)

// PlanStates lists every state in canonical board order.
func PlanStates() []PlanState {
	return []PlanState{
		PlanStateActive,
		PlanStatePaused,
		PlanStateReopened,
		PlanStateCompleted,
		PlanStateCancelled,
	}
}

func (s PlanState) String() string { return string(s) }

func (s PlanState) IsValid() bool {
	switch s {
	case PlanStateActive, PlanStatePaused, PlanStateCompleted, PlanStateCancelled, PlanStateReopened:
		return true
	}
	return false
}

// InQueue reports whether plans in this state count towards the lab work queue.
func (s PlanState) InQueue() bool {
	return s == PlanStateActive || s == PlanStateReopened
}

// ReopenSubtype classifies why a completed plan was reopened.
type ReopenSubtype string

const (
	ReopenSubtypeCorrection ReopenSubtype = "correction"
	ReopenSubtypeRemake     ReopenSubtype = "remake"
)

func (r ReopenSubtype) String() string { return string(r) }

func (r ReopenSubtype) IsValid() bool {
	switch r {
	case ReopenSubtypeCorrection, ReopenSubtypeRemake:
		return true
	}
	return false
}

// TransitionRule is the policy decision for a (from, to) state pair.
type TransitionRule string

const (
	TransitionDenied         TransitionRule = "denied"
	TransitionDirect         TransitionRule = "direct"
	TransitionReasonRequired TransitionRule = "reason_required"
)

func (r TransitionRule) String() string { return string(r) }

// Allowed reports whether the rule permits the transition at all.
func (r TransitionRule) Allowed() bool {
	return r == TransitionDirect || r == TransitionReasonRequired
}
