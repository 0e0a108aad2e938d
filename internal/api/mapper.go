package api

import "github.com/asymdl-hash/AsymLAB-sub000/internal/domain"

func fromRef(r domain.Ref) Ref { return Ref{ID: r.ID, Label: r.Label} }
func (r Ref) toDomain() domain.Ref { return domain.Ref{ID: r.ID, Label: r.Label} }

// FromPlan converts a domain plan to its wire form.
func FromPlan(p domain.Plan) Plan {
	out := Plan{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Label:      p.Label,
		State:      p.State.String(),
		Urgent:     p.Urgent,
		Patient:    fromRef(p.Patient),
		Clinic:     fromRef(p.Clinic),
		WorkType:   fromRef(p.WorkType),
		Progress:   Progress{Done: p.Progress.Done, Total: p.Progress.Total},
		LastReason: copyString(p.LastReason),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Doctor != nil {
		d := fromRef(*p.Doctor)
		out.Doctor = &d
	}
	if p.ReopenSubtype != nil {
		s := string(*p.ReopenSubtype)
		out.ReopenSubtype = &s
	}
	return out
}

// FromPlans converts a slice of domain plans. Never returns nil.
func FromPlans(plans []domain.Plan) []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		out[i] = FromPlan(p)
	}
	return out
}

// ToDomain converts the wire plan back to a domain plan.
func (p Plan) ToDomain() domain.Plan {
	out := domain.Plan{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Label:      p.Label,
		State:      domain.PlanState(p.State),
		Urgent:     p.Urgent,
		Patient:    p.Patient.toDomain(),
		Clinic:     p.Clinic.toDomain(),
		WorkType:   p.WorkType.toDomain(),
		Progress:   domain.Progress{Done: p.Progress.Done, Total: p.Progress.Total},
		LastReason: copyString(p.LastReason),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Doctor != nil {
		d := p.Doctor.toDomain()
		out.Doctor = &d
	}
	if p.ReopenSubtype != nil {
		s := domain.ReopenSubtype(*p.ReopenSubtype)
		out.ReopenSubtype = &s
	}
	return out
}

// PlansToDomain converts a wire plan list.
func PlansToDomain(plans []Plan) []domain.Plan {
	out := make([]domain.Plan, len(plans))
	for i, p := range plans {
		out[i] = p.ToDomain()
	}
	return out
}

func FromTransition(t domain.PlanTransition) Transition {
	out := Transition{
		ID:        t.ID,
		FromState: t.FromState.String(),
		ToState:   t.ToState.String(),
		Reason:    copyString(t.Reason),
		ActorID:   t.ActorID,
		CreatedAt: t.CreatedAt,
	}
	if t.ReopenSubtype != nil {
		s := string(*t.ReopenSubtype)
		out.ReopenSubtype = &s
	}
	return out
}

func FromBadge(b domain.Badge) Badge {
	return Badge{PlanID: b.PlanID, LabelID: b.LabelID, AddedBy: b.AddedBy, AddedAt: b.AddedAt}
}

func (b Badge) ToDomain() domain.Badge {
	return domain.Badge{PlanID: b.PlanID, LabelID: b.LabelID, AddedBy: b.AddedBy, AddedAt: b.AddedAt}
}

func FromBadges(badges []domain.Badge) []Badge {
	out := make([]Badge, len(badges))
	for i, b := range badges {
		out[i] = FromBadge(b)
	}
	return out
}

func BadgesToDomain(badges []Badge) []domain.Badge {
	out := make([]domain.Badge, len(badges))
	for i, b := range badges {
		out[i] = b.ToDomain()
	}
	return out
}

func FromBadgeSummary(s domain.BadgeSummary) *BadgeSummary {
	return &BadgeSummary{Inline: FromBadges(s.Inline), Overflow: s.Overflow}
}

func FromCatalog(c domain.Catalog) Catalog {
	out := Catalog{
		Categories: make([]Category, len(c.Categories)),
		Labels:     make([]Label, len(c.Labels)),
	}
	for i, cat := range c.Categories {
		out.Categories[i] = Category{ID: cat.ID, Name: cat.Name, Color: cat.Color, Emoji: cat.Emoji, Position: cat.Position}
	}
	for i, l := range c.Labels {
		out.Labels[i] = Label{ID: l.ID, CategoryID: l.CategoryID, Name: l.Name, Position: l.Position}
	}
	return out
}

func (c Catalog) ToDomain() domain.Catalog {
	out := domain.Catalog{
		Categories: make([]domain.LabelCategory, len(c.Categories)),
		Labels:     make([]domain.StatusLabel, len(c.Labels)),
	}
	for i, cat := range c.Categories {
		out.Categories[i] = domain.LabelCategory{ID: cat.ID, Name: cat.Name, Color: cat.Color, Emoji: cat.Emoji, Position: cat.Position}
	}
	for i, l := range c.Labels {
		out.Labels[i] = domain.StatusLabel{ID: l.ID, CategoryID: l.CategoryID, Name: l.Name, Position: l.Position}
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
