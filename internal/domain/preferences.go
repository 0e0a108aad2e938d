package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BoardFilter narrows the plans shown on the board. Zero values mean "no constraint".
type BoardFilter struct {
	Search     string     `json:"search,omitempty"`
	ClinicID   *uuid.UUID `json:"clinic_id,omitempty"`
	DoctorID   *uuid.UUID `json:"doctor_id,omitempty"`
	WorkTypeID *uuid.UUID `json:"work_type_id,omitempty"`
	UrgentOnly bool       `json:"urgent_only,omitempty"`
}

// IsZero reports whether the filter has no constraints.
func (f BoardFilter) IsZero() bool {
	return strings.TrimSpace(f.Search) == "" &&
		f.ClinicID == nil && f.DoctorID == nil && f.WorkTypeID == nil && !f.UrgentOnly
}

// BoardPreferences is a user's saved board layout. It is advisory: losing it
// only resets the view.
type BoardPreferences struct {
	ModuleOrder []string                  `json:"module_order,omitempty"`
	Filter      BoardFilter               `json:"filter"`
	ManualOrder map[PlanState][]uuid.UUID `json:"manual_order,omitempty"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// DefaultBoardPreferences returns the preferences used when nothing is saved.
func DefaultBoardPreferences() BoardPreferences {
	return BoardPreferences{}
}

// Clone returns a deep copy of the preferences.
func (p BoardPreferences) Clone() BoardPreferences {
	out := p
	out.ModuleOrder = append([]string(nil), p.ModuleOrder...)
	out.Filter = p.Filter.clone()
	if p.ManualOrder != nil {
		out.ManualOrder = make(map[PlanState][]uuid.UUID, len(p.ManualOrder))
		for k, v := range p.ManualOrder {
			out.ManualOrder[k] = append([]uuid.UUID(nil), v...)
		}
	}
	return out
}

func (f BoardFilter) clone() BoardFilter {
	out := f
	out.ClinicID = cloneUUID(f.ClinicID)
	out.DoctorID = cloneUUID(f.DoctorID)
	out.WorkTypeID = cloneUUID(f.WorkTypeID)
	return out
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// PlanFilter contains server-side filtering parameters for plan listing.
type PlanFilter struct {
	States     []PlanState
	ClinicID   *uuid.UUID
	DoctorID   *uuid.UUID
	WorkTypeID *uuid.UUID
	UrgentOnly bool
	Search     *string
	Limit      int
	Offset     int
}

// NormalizeSearch prepares free text for case-insensitive substring matching:
// trims, lowercases and collapses runs of whitespace into single spaces.
func NormalizeSearch(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
