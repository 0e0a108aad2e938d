package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

type planLookup interface {
	Board() board.Board
	Plan(planID uuid.UUID) (domain.Plan, bool)
}

// resolvePlan accepts a plan id or business id. Business ids only match plans
// visible under the current filter.
func resolvePlan(s planLookup, arg string) (domain.Plan, error) {
	if id, err := uuid.Parse(arg); err == nil {
		if p, ok := s.Plan(id); ok {
			return p, nil
		}
		return domain.Plan{}, fmt.Errorf("plan %s: %w", arg, domain.ErrNotFound)
	}

	for _, col := range s.Board().Columns {
		for _, p := range col.Plans {
			if strings.EqualFold(p.BusinessID, arg) {
				return p, nil
			}
		}
	}
	return domain.Plan{}, fmt.Errorf("plan %q: %w", arg, domain.ErrNotFound)
}

// resolveLabel accepts a label id, a label name or "Category/Label".
func resolveLabel(cat domain.Catalog, arg string) (domain.StatusLabel, error) {
	if id, err := uuid.Parse(arg); err == nil {
		for _, l := range cat.Labels {
			if l.ID == id {
				return l, nil
			}
		}
		return domain.StatusLabel{}, fmt.Errorf("label %s: %w", arg, domain.ErrNotFound)
	}

	catName, labelName, scoped := strings.Cut(arg, "/")
	if !scoped {
		labelName, catName = catName, ""
	}

	categories := make(map[uuid.UUID]string, len(cat.Categories))
	for _, c := range cat.Categories {
		categories[c.ID] = c.Name
	}

	var matches []domain.StatusLabel
	for _, l := range cat.Labels {
		if !strings.EqualFold(l.Name, strings.TrimSpace(labelName)) {
			continue
		}
		if scoped && !strings.EqualFold(categories[l.CategoryID], strings.TrimSpace(catName)) {
			continue
		}
		matches = append(matches, l)
	}

	switch len(matches) {
	case 0:
		return domain.StatusLabel{}, fmt.Errorf("label %q: %w", arg, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.StatusLabel{}, domain.NewValidationError("label",
			fmt.Sprintf("%q is ambiguous, use Category/Label", arg))
	}
}

func parseState(arg string) (domain.PlanState, error) {
	s := domain.PlanState(strings.ToLower(strings.TrimSpace(arg)))
	if !s.IsValid() {
		return "", domain.NewValidationError("state", fmt.Sprintf("unknown state %q", arg))
	}
	return s, nil
}

func parseSubtype(arg string) (*domain.ReopenSubtype, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	s := domain.ReopenSubtype(strings.ToLower(strings.TrimSpace(arg)))
	if !s.IsValid() {
		return nil, domain.NewValidationError("subtype", fmt.Sprintf("unknown subtype %q", arg))
	}
	return &s, nil
}
