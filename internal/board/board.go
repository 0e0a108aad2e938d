// Package board derives the grouped-by-state board view from a flat plan
// list and a user's preferences. Everything here is pure: inputs are never
// mutated and identical inputs give identical output.
package board

import (
	"slices"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Column is one state bucket of the board.
type Column struct {
	State domain.PlanState
	Plans []domain.Plan
}

// Board is the projected view. Columns holds every state exactly once, in
// display order.
type Board struct {
	Columns []Column
}

// Column returns the bucket for state.
func (b Board) Column(state domain.PlanState) Column {
	for _, c := range b.Columns {
		if c.State == state {
			return c
		}
	}
	return Column{State: state}
}

// Locate returns the state of the column containing the plan.
func (b Board) Locate(planID uuid.UUID) (domain.PlanState, bool) {
	for _, c := range b.Columns {
		for _, p := range c.Plans {
			if p.ID == planID {
				return c.State, true
			}
		}
	}
	return "", false
}

// Len returns the number of plans on the board.
func (b Board) Len() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Plans)
	}
	return n
}

// Project filters plans by prefs.Filter, groups them by state and orders each
// column: urgent first, then newest created, then any saved manual order.
func Project(plans []domain.Plan, prefs domain.BoardPreferences) Board {
	buckets := make(map[domain.PlanState][]domain.Plan, len(domain.PlanStates()))
	for _, p := range plans {
		if !p.State.IsValid() || !Matches(prefs.Filter, p) {
			continue
		}
		buckets[p.State] = append(buckets[p.State], p.Clone())
	}

	order := ColumnOrder(prefs.ModuleOrder)
	b := Board{Columns: make([]Column, 0, len(order))}
	for _, state := range order {
		items := buckets[state]
		SortDefault(items)
		if saved := prefs.ManualOrder[state]; len(saved) > 0 {
			items = applyManualOrder(items, saved)
		}
		if items == nil {
			items = []domain.Plan{}
		}
		b.Columns = append(b.Columns, Column{State: state, Plans: items})
	}
	return b
}

// SortDefault orders plans in place: urgent first, then most recently
// created, then by id so that ties are stable.
func SortDefault(plans []domain.Plan) {
	slices.SortFunc(plans, func(a, b domain.Plan) int {
		if a.Urgent != b.Urgent {
			if a.Urgent {
				return -1
			}
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}

// ColumnOrder resolves the display order of the state columns. Known states
// from the saved module order come first; the remaining states follow in
// canonical order. Unknown and duplicate identifiers are ignored.
func ColumnOrder(moduleOrder []string) []domain.PlanState {
	canonical := domain.PlanStates()
	out := make([]domain.PlanState, 0, len(canonical))
	seen := make(map[domain.PlanState]bool, len(canonical))

	for _, id := range moduleOrder {
		s := domain.PlanState(id)
		if s.IsValid() && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range canonical {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func applyManualOrder(items []domain.Plan, saved []uuid.UUID) []domain.Plan {
	live := make([]uuid.UUID, len(items))
	byID := make(map[uuid.UUID]domain.Plan, len(items))
	for i, p := range items {
		live[i] = p.ID
		byID[p.ID] = p
	}

	merged := MergeOrder(saved, live)
	out := make([]domain.Plan, len(merged))
	for i, id := range merged {
		out[i] = byID[id]
	}
	return out
}
