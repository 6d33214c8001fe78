package headhunter

import (
	"testing"
)

func TestBuildParams(t *testing.T) {
	params := &SearchParams{
		Text:      "пекарь",
		Areas:     []int{2, 145},
		Schedules: []string{"shift", "fullDay"},
		PerPage:   "100",
		Period:    30,
	}

	q := buildParams(params)

	if got := q.Get("text"); got != "пекарь" {
		t.Fatalf("text = %q, want пекарь", got)
	}
	if got := q["area"]; len(got) != 2 || got[0] != "2" || got[1] != "145" {
		t.Fatalf("area = %v, want [2 145]", got)
	}
	if got := q["schedule"]; len(got) != 2 || got[0] != "shift" || got[1] != "fullDay" {
		t.Fatalf("schedule = %v, want [shift fullDay]", got)
	}
	if got := q.Get("per_page"); got != "100" {
		t.Fatalf("per_page = %q, want 100", got)
	}
	if got := q.Get("period"); got != "30" {
		t.Fatalf("period = %q, want 30", got)
	}
}

func TestBuildParamsSkipsZeroValues(t *testing.T) {
	q := buildParams(&SearchParams{Text: "курьер"})

	if len(q["area"]) != 0 {
		t.Fatalf("did not expect area params: %v", q["area"])
	}
	if q.Has("employer_id") {
		t.Fatalf("did not expect employer_id: %q", q.Get("employer_id"))
	}
	if q.Has("period") {
		t.Fatalf("did not expect period: %q", q.Get("period"))
	}
	if q.Has("order_by") {
		t.Fatalf("did not expect order_by: %q", q.Get("order_by"))
	}
}
