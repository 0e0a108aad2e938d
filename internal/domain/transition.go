package domain

import (
	"strings"
)

type statePair struct {
	from PlanState
	to   PlanState
}

// transitionTable is the complete set of legal transitions. Any pair that is
// not listed here, including from == to, is denied.
var transitionTable = map[statePair]TransitionRule{
	{PlanStateActive, PlanStatePaused}:      TransitionReasonRequired,
	{PlanStateActive, PlanStateCompleted}:   TransitionDirect,
	{PlanStateActive, PlanStateCancelled}:   TransitionReasonRequired,
	{PlanStatePaused, PlanStateActive}:      TransitionDirect,
	{PlanStatePaused, PlanStateCancelled}:   TransitionReasonRequired,
	{PlanStateReopened, PlanStatePaused}:    TransitionReasonRequired,
	{PlanStateReopened, PlanStateCompleted}: TransitionDirect,
	{PlanStateCompleted, PlanStateReopened}: TransitionReasonRequired,
}

// LookupTransition returns the policy decision for moving from one state to another.
func LookupTransition(from, to PlanState) TransitionRule {
	if rule, ok := transitionTable[statePair{from, to}]; ok {
		return rule
	}
	return TransitionDenied
}

// RequiresReopenSubtype reports whether the pair additionally needs a reopen subtype.
func RequiresReopenSubtype(from, to PlanState) bool {
	return from == PlanStateCompleted && to == PlanStateReopened
}

// AllowedTargets returns the states reachable from the given state, in
// canonical board order.
func AllowedTargets(from PlanState) []PlanState {
	var targets []PlanState
	for _, to := range PlanStates() {
		if LookupTransition(from, to).Allowed() {
			targets = append(targets, to)
		}
	}
	return targets
}

// CheckTransition evaluates a requested transition together with its side data.
// It returns nil when the transition may be persisted.
//
// Errors:
//   - *TransitionError wrapping ErrIllegalTransition for a denied pair
//   - *TransitionError wrapping ErrReasonRequired for a guarded pair with a blank reason
//   - *ValidationError on reopen_subtype when a reopen has no valid subtype
func CheckTransition(from, to PlanState, reason *string, subtype *ReopenSubtype) error {
	rule := LookupTransition(from, to)
	if !rule.Allowed() {
		return &TransitionError{From: from, To: to, Err: ErrIllegalTransition}
	}

	if rule == TransitionReasonRequired && IsBlank(reason) {
		return &TransitionError{From: from, To: to, Err: ErrReasonRequired}
	}

	if RequiresReopenSubtype(from, to) {
		if subtype == nil {
			return NewValidationError("reopen_subtype", "required")
		}
		if !subtype.IsValid() {
			return NewValidationError("reopen_subtype", "must be correction or remake")
		}
	}

	return nil
}

// IsBlank reports whether s is nil, empty or whitespace only.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
