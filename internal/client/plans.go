package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// ListQuery mirrors the GET /plans query parameters.
type ListQuery struct {
	States        []domain.PlanState
	ClinicID      *uuid.UUID
	DoctorID      *uuid.UUID
	WorkTypeID    *uuid.UUID
	UrgentOnly    bool
	Search        string
	IncludeBadges bool
	// PageSize bounds each request; zero leaves it to the server's maximum.
	PageSize int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	for _, s := range q.States {
		v.Add("state", string(s))
	}
	if q.ClinicID != nil {
		v.Set("clinic", q.ClinicID.String())
	}
	if q.DoctorID != nil {
		v.Set("doctor", q.DoctorID.String())
	}
	if q.WorkTypeID != nil {
		v.Set("work_type", q.WorkTypeID.String())
	}
	if q.UrgentOnly {
		v.Set("urgent", strconv.FormatBool(true))
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.IncludeBadges {
		v.Set("include", "badges")
	}
	if q.PageSize > 0 {
		v.Set("limit", strconv.Itoa(q.PageSize))
	}
	return v
}

// ListPlans returns every plan matching q, following has_more across pages.
// A plan shifted between pages by a concurrent change is returned once.
func (c *Client) ListPlans(ctx context.Context, q ListQuery) ([]api.Plan, error) {
	var (
		out    []api.Plan
		seen   = make(map[uuid.UUID]struct{})
		offset int
	)
	for {
		v := q.values()
		if offset > 0 {
			v.Set("offset", strconv.Itoa(offset))
		}

		var resp api.PlanList
		if err := c.get(ctx, "/plans", v, &resp); err != nil {
			return nil, err
		}
		for _, p := range resp.Plans {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}

		if !resp.HasMore || len(resp.Plans) == 0 {
			return out, nil
		}
		offset += len(resp.Plans)
	}
}

// Transition asks the server to move a plan to state to.
func (c *Client) Transition(ctx context.Context, planID uuid.UUID, to domain.PlanState, reason *string, subtype *domain.ReopenSubtype) (*domain.Plan, error) {
	body := api.TransitionRequest{ToState: string(to), Reason: reason}
	if subtype != nil {
		s := string(*subtype)
		body.ReopenSubtype = &s
	}

	var resp api.Plan
	if err := c.post(ctx, "/plans/"+planID.String()+"/transition", body, &resp); err != nil {
		return nil, err
	}
	p := resp.ToDomain()
	return &p, nil
}

// History returns a plan's transitions, newest first.
func (c *Client) History(ctx context.Context, planID uuid.UUID, limit int) ([]api.Transition, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp api.TransitionList
	if err := c.get(ctx, "/plans/"+planID.String()+"/transitions", q, &resp); err != nil {
		return nil, err
	}
	return resp.Transitions, nil
}

// QueueCounts returns the queue counters.
func (c *Client) QueueCounts(ctx context.Context) (domain.QueueCounts, error) {
	var resp api.QueueCounts
	if err := c.get(ctx, "/queue/counts", nil, &resp); err != nil {
		return domain.QueueCounts{}, err
	}
	return domain.QueueCounts{Total: resp.Total, Urgent: resp.Urgent}, nil
}
