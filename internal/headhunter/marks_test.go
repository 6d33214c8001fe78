package headhunter

import (
	"math"
	"testing"
)

func TestEmployerMarks(t *testing.T) {
	vacancies := &Vacancies{
		Items: []*Vacancy{
			// Trusted, always publishes salaries, highest pay, most postings.
			mustVacancy(t, `{"employer": {"id": "best", "trusted": true}, "salary": {"from": 80000, "to": 80000}}`),
			mustVacancy(t, `{"employer": {"id": "best", "trusted": true}, "salary": {"from": 90000, "to": 90000}}`),
			// Not trusted, half salary coverage, lowest pay.
			mustVacancy(t, `{"employer": {"id": "mid"}, "salary": {"from": 40000, "to": 40000}}`),
			mustVacancy(t, `{"employer": {"id": "mid"}}`),
			// Nothing going for it.
			mustVacancy(t, `{"employer": {"id": "worst"}}`),
		},
	}

	marks := vacancies.EmployerMarks()
	if len(marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(marks))
	}

	// best: 0.4 + 0.3 + 0.2 + 0.1 = 1.0 -> mark 5.
	if got := marks["best"]; math.Abs(got-5) > 1e-9 {
		t.Fatalf("best employer mark = %v, want 5", got)
	}
	// mid: half coverage, lowest avg, full volume: 0.15 + 0 + 0.1 = 0.25 -> mark 2.
	if got := marks["mid"]; math.Abs(got-2) > 1e-9 {
		t.Fatalf("mid employer mark = %v, want 2", got)
	}
	// worst: volume only, 1 of max 2 -> 0.05 -> mark 1.2.
	if got := marks["worst"]; math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("worst employer mark = %v, want 1.2", got)
	}
}

func TestEmployerMarksSkipsBlankIDs(t *testing.T) {
	vacancies := &Vacancies{
		Items: []*Vacancy{
			mustVacancy(t, `{"name": "no employer block"}`),
		},
	}

	if marks := vacancies.EmployerMarks(); len(marks) != 0 {
		t.Fatalf("expected no marks, got %v", marks)
	}
}

func TestEmployerMarksClamped(t *testing.T) {
	vacancies := &Vacancies{
		Items: []*Vacancy{
			mustVacancy(t, `{"employer": {"id": "solo", "trusted": true}, "salary": {"from": 50000, "to": 50000}}`),
		},
	}

	marks := vacancies.EmployerMarks()
	// Single employer: salary normalization contributes nothing, the rest
	// max out. 0.4 + 0.3 + 0.1 = 0.8 -> mark 4.2.
	if got := marks["solo"]; math.Abs(got-4.2) > 1e-9 {
		t.Fatalf("solo employer mark = %v, want 4.2", got)
	}
	if marks["solo"] > 5 {
		t.Fatalf("mark above scale: %v", marks["solo"])
	}
}
