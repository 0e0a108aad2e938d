package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/badge"
)

type badgeService interface {
	Toggle(ctx context.Context, input badge.ToggleInput) (*badge.ToggleResult, error)
	ListForPlan(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error)
	Catalog(ctx context.Context) (domain.Catalog, error)
}

// BadgeHandler serves status badge endpoints.
type BadgeHandler struct {
	svc badgeService
	log *slog.Logger
}

// NewBadgeHandler creates a BadgeHandler.
func NewBadgeHandler(svc badgeService, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{svc: svc, log: logger.With("handler", "badges")}
}

// Toggle handles POST /plans/{id}/badges/{labelId}/toggle. The body is
// optional; without actor_id the authenticated actor is recorded.
func (h *BadgeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	labelID, err := pathUUID(r, "labelId")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req api.ToggleRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Toggle(r.Context(), badge.ToggleInput{
		PlanID:  planID,
		LabelID: labelID,
		ActorID: req.ActorID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := api.ToggleResponse{Added: res.Added}
	if res.Current != nil {
		b := api.FromBadge(*res.Current)
		resp.Badge = &b
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /plans/{id}/badges.
func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	badges, err := h.svc.ListForPlan(r.Context(), planID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, api.BadgeList{Badges: api.FromBadges(badges)})
}

// Catalog handles GET /badges/catalog.
func (h *BadgeHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromCatalog(c))
}
