package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// Matches reports whether the plan passes every constraint of the filter.
// Search is a case-insensitive substring match against the patient name,
// business id and plan label.
func Matches(f domain.BoardFilter, p domain.Plan) bool {
	if f.UrgentOnly && !p.Urgent {
		return false
	}
	if !idMatches(f.ClinicID, p.Clinic.ID) || !idMatches(f.WorkTypeID, p.WorkType.ID) {
		return false
	}
	if f.DoctorID != nil && (p.Doctor == nil || p.Doctor.ID != *f.DoctorID) {
		return false
	}

	q := domain.NormalizeSearch(f.Search)
	if q == "" {
		return true
	}
	for _, field := range []string{p.Patient.Label, p.BusinessID, p.Label} {
		if strings.Contains(domain.NormalizeSearch(field), q) {
			return true
		}
	}
	return false
}

func idMatches(want *uuid.UUID, got uuid.UUID) bool {
	return want == nil || *want == got
}
