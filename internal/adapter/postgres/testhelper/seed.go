package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func seedRef(t *testing.T, pool *pgxpool.Pool, insertSQL, label string) domain.Ref {
	t.Helper()
	ref := domain.Ref{ID: uuid.New(), Label: label}
	if _, err := pool.Exec(context.Background(), insertSQL, ref.ID, ref.Label); err != nil {
		t.Fatalf("testhelper: seed %q: %v", label, err)
	}
	return ref
}

// SeedClinic inserts a clinic with a unique name.
func SeedClinic(t *testing.T, pool *pgxpool.Pool) domain.Ref {
	t.Helper()
	return seedRef(t, pool, `INSERT INTO clinics (id, name) VALUES ($1, $2)`, "Clinic "+uniqueSuffix())
}

// SeedDoctor inserts a doctor attached to clinicID.
func SeedDoctor(t *testing.T, pool *pgxpool.Pool, clinicID uuid.UUID) domain.Ref {
	t.Helper()
	ref := domain.Ref{ID: uuid.New(), Label: "Dr. " + uniqueSuffix()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO doctors (id, clinic_id, name) VALUES ($1, $2, $3)`, ref.ID, clinicID, ref.Label)
	if err != nil {
		t.Fatalf("testhelper: SeedDoctor: %v", err)
	}
	return ref
}

// SeedPatient inserts a patient with the given full name.
func SeedPatient(t *testing.T, pool *pgxpool.Pool, name string) domain.Ref {
	t.Helper()
	return seedRef(t, pool, `INSERT INTO patients (id, full_name) VALUES ($1, $2)`, name)
}

// SeedWorkType inserts a work type with a unique name.
func SeedWorkType(t *testing.T, pool *pgxpool.Pool) domain.Ref {
	t.Helper()
	return seedRef(t, pool, `INSERT INTO work_types (id, name) VALUES ($1, $2)`, "Crown "+uniqueSuffix())
}

// PlanSeed describes a plan to insert. Zero-valued refs are created on demand.
type PlanSeed struct {
	State     domain.PlanState
	Urgent    bool
	Label     string
	Patient   string
	Clinic    *domain.Ref
	Doctor    *domain.Ref
	WorkType  *domain.Ref
	CreatedAt time.Time
}

// SeedPlan creates a treatment plan and any missing reference rows.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, s PlanSeed) domain.Plan {
	t.Helper()

	if s.State == "" {
		s.State = domain.PlanStateActive
	}
	if s.Label == "" {
		s.Label = "Zirconia crown " + uniqueSuffix()
	}
	if s.Patient == "" {
		s.Patient = "Patient " + uniqueSuffix()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	clinic := s.Clinic
	if clinic == nil {
		c := SeedClinic(t, pool)
		clinic = &c
	}
	workType := s.WorkType
	if workType == nil {
		w := SeedWorkType(t, pool)
		workType = &w
	}
	patient := SeedPatient(t, pool, s.Patient)

	plan := domain.Plan{
		ID:         uuid.New(),
		BusinessID: "TP-" + uniqueSuffix(),
		Label:      s.Label,
		State:      s.State,
		Urgent:     s.Urgent,
		Patient:    patient,
		Clinic:     *clinic,
		Doctor:     s.Doctor,
		WorkType:   *workType,
		Progress:   domain.Progress{Done: 1, Total: 4},
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.CreatedAt,
	}

	var doctorID *uuid.UUID
	if plan.Doctor != nil {
		doctorID = &plan.Doctor.ID
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO treatment_plans
		    (id, business_id, label, state, urgent, patient_id, clinic_id, doctor_id, work_type_id,
		     phases_done, phases_total, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		plan.ID, plan.BusinessID, plan.Label, string(plan.State), plan.Urgent,
		plan.Patient.ID, plan.Clinic.ID, doctorID, plan.WorkType.ID,
		plan.Progress.Done, plan.Progress.Total, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan: %v", err)
	}

	return plan
}

// SeedCatalog creates one label category holding n status labels.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool, n int) domain.Catalog {
	t.Helper()
	ctx := context.Background()

	cat := domain.LabelCategory{
		ID:    uuid.New(),
		Name:  "Lab " + uniqueSuffix(),
		Color: "#f59e0b",
		Emoji: "🦷",
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO label_categories (id, name, color, emoji, position) VALUES ($1, $2, $3, $4, $5)`,
		cat.ID, cat.Name, cat.Color, cat.Emoji, cat.Position)
	if err != nil {
		t.Fatalf("testhelper: SeedCatalog category: %v", err)
	}

	out := domain.Catalog{Categories: []domain.LabelCategory{cat}}
	for i := range n {
		l := domain.StatusLabel{ID: uuid.New(), CategoryID: cat.ID, Name: "Label " + uniqueSuffix(), Position: i}
		_, err := pool.Exec(ctx,
			`INSERT INTO status_labels (id, category_id, name, position) VALUES ($1, $2, $3, $4)`,
			l.ID, l.CategoryID, l.Name, l.Position)
		if err != nil {
			t.Fatalf("testhelper: SeedCatalog label: %v", err)
		}
		out.Labels = append(out.Labels, l)
	}

	return out
}
