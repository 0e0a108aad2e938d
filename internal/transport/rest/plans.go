package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/lifecycle"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/plan"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/transport/dataloader"
)

//go:generate moq -out rest_mock_test.go -pkg rest . planService lifecycleService badgeService

type planService interface {
	List(ctx context.Context, input plan.ListInput) (plan.Page, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	QueueCounts(ctx context.Context) (domain.QueueCounts, error)
}

type lifecycleService interface {
	RequestTransition(ctx context.Context, input lifecycle.TransitionInput) (*domain.Plan, error)
	History(ctx context.Context, planID uuid.UUID, limit int) ([]domain.PlanTransition, error)
}

// PlanHandler serves plan queries and lifecycle transitions.
type PlanHandler struct {
	plans     planService
	lifecycle lifecycleService
	log       *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(plans planService, lc lifecycleService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, lifecycle: lc, log: logger.With("handler", "plans")}
}

// List handles GET /plans.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	input, includeBadges, err := parseListQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.plans.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := api.FromPlans(page.Plans)
	if includeBadges && len(out) > 0 {
		if err := attachBadges(r.Context(), out); err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, api.PlanList{Plans: out, HasMore: page.HasMore})
}

// Get handles GET /plans/{id}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.plans.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := []api.Plan{api.FromPlan(*p)}
	if err := attachBadges(r.Context(), out); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, out[0])
}

// Transition handles POST /plans/{id}/transition. Rejected pairs answer 409
// with code illegal_transition or reason_required.
func (h *PlanHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req api.TransitionRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := lifecycle.TransitionInput{
		PlanID: id,
		To:     domain.PlanState(req.ToState),
		Reason: req.Reason,
	}
	if req.ReopenSubtype != nil {
		st := domain.ReopenSubtype(*req.ReopenSubtype)
		input.ReopenSubtype = &st
	}

	p, err := h.lifecycle.RequestTransition(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, api.FromPlan(*p))
}

// History handles GET /plans/{id}/transitions.
func (h *PlanHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.lifecycle.History(r.Context(), id, limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := api.TransitionList{Transitions: make([]api.Transition, 0, len(items))}
	for _, t := range items {
		out.Transitions = append(out.Transitions, api.FromTransition(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// QueueCounts handles GET /queue/counts.
func (h *PlanHandler) QueueCounts(w http.ResponseWriter, r *http.Request) {
	c, err := h.plans.QueueCounts(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, api.QueueCounts{Total: c.Total, Urgent: c.Urgent})
}

// parseListQuery reads the GET /plans filters. state may repeat or be comma separated.
func parseListQuery(r *http.Request) (plan.ListInput, bool, error) {
	q := r.URL.Query()
	var input plan.ListInput

	for _, raw := range q["state"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				input.States = append(input.States, domain.PlanState(s))
			}
		}
	}

	var err error
	if input.ClinicID, err = queryUUID(r, "clinic"); err != nil {
		return input, false, err
	}
	if input.DoctorID, err = queryUUID(r, "doctor"); err != nil {
		return input, false, err
	}
	if input.WorkTypeID, err = queryUUID(r, "work_type"); err != nil {
		return input, false, err
	}
	if input.UrgentOnly, err = queryBool(r, "urgent"); err != nil {
		return input, false, err
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		return input, false, err
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		return input, false, err
	}
	input.Search = q.Get("q")

	includeBadges := false
	for _, inc := range strings.Split(q.Get("include"), ",") {
		switch strings.TrimSpace(inc) {
		case "":
		case "badges":
			includeBadges = true
		default:
			return input, false, domain.NewValidationError("include", fmt.Sprintf("unknown include %q", inc))
		}
	}

	return input, includeBadges, nil
}

// attachBadges fills each plan's capped badge summary through the request's loaders.
func attachBadges(ctx context.Context, plans []api.Plan) error {
	ids := make([]uuid.UUID, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}

	summaries, errs := dataloader.FromContext(ctx).BadgeSummaryByPlanID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("load badge summaries: %w", err)
		}
	}
	for i := range plans {
		plans[i].Badges = api.FromBadgeSummary(summaries[i])
	}
	return nil
}
