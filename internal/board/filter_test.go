package board

import (
	"testing"

	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	clinic, doctor, workType := uuid.New(), uuid.New(), uuid.New()
	other := uuid.New()
	p := domain.Plan{
		BusinessID: "TP-2026-0042",
		Label:      "Zirconia Bridge upper",
		Urgent:     true,
		Patient:    domain.Ref{Label: "Maria  Lopes"},
		Clinic:     domain.Ref{ID: clinic},
		Doctor:     &domain.Ref{ID: doctor},
		WorkType:   domain.Ref{ID: workType},
	}
	noDoctor := p
	noDoctor.Doctor = nil

	tests := []struct {
		name   string
		filter domain.BoardFilter
		plan   domain.Plan
		want   bool
	}{
		{"empty filter", domain.BoardFilter{}, p, true},
		{"patient name case-insensitive", domain.BoardFilter{Search: "MARIA lopes"}, p, true},
		{"business id substring", domain.BoardFilter{Search: "0042"}, p, true},
		{"label substring", domain.BoardFilter{Search: "bridge"}, p, true},
		{"no match", domain.BoardFilter{Search: "implant"}, p, false},
		{"whitespace search ignored", domain.BoardFilter{Search: "   "}, p, true},
		{"clinic match", domain.BoardFilter{ClinicID: &clinic}, p, true},
		{"clinic mismatch", domain.BoardFilter{ClinicID: &other}, p, false},
		{"doctor match", domain.BoardFilter{DoctorID: &doctor}, p, true},
		{"doctor filter without doctor", domain.BoardFilter{DoctorID: &doctor}, noDoctor, false},
		{"work type mismatch", domain.BoardFilter{WorkTypeID: &other}, p, false},
		{"urgent only keeps urgent", domain.BoardFilter{UrgentOnly: true}, p, true},
		{"all constraints", domain.BoardFilter{Search: "maria", ClinicID: &clinic, DoctorID: &doctor, WorkTypeID: &workType, UrgentOnly: true}, p, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Matches(tt.filter, tt.plan); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	calm := p
	calm.Urgent = false
	if Matches(domain.BoardFilter{UrgentOnly: true}, calm) {
		t.Error("urgent only must drop non-urgent plans")
	}
}
