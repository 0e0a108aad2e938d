package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// ListBadges returns a plan's badges in insertion order.
func (c *Client) ListBadges(ctx context.Context, planID uuid.UUID) ([]domain.Badge, error) {
	var resp api.BadgeList
	if err := c.get(ctx, "/plans/"+planID.String()+"/badges", nil, &resp); err != nil {
		return nil, err
	}
	return api.BadgesToDomain(resp.Badges), nil
}

// ToggleBadge flips a badge and reports whether it is now present. The actor
// is the authenticated user.
func (c *Client) ToggleBadge(ctx context.Context, planID, labelID uuid.UUID) (bool, error) {
	var resp api.ToggleResponse
	path := "/plans/" + planID.String() + "/badges/" + labelID.String() + "/toggle"
	if err := c.post(ctx, path, api.ToggleRequest{}, &resp); err != nil {
		return false, err
	}
	return resp.Added, nil
}

// Catalog returns the status label catalog.
func (c *Client) Catalog(ctx context.Context) (domain.Catalog, error) {
	var resp api.Catalog
	if err := c.get(ctx, "/badges/catalog", nil, &resp); err != nil {
		return domain.Catalog{}, err
	}
	return resp.ToDomain(), nil
}
