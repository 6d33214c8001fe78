package market

import "testing"

func fp(v float64) *float64 { return &v }

func TestRecordMonthly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
		want   float64
		ok     bool
	}{
		{
			name:   "salary avg wins over range",
			record: Record{SalaryAvg: fp(90000), Salary: &Range{From: fp(10), To: fp(20)}},
			want:   90000,
			ok:     true,
		},
		{
			name:   "range midpoint",
			record: Record{Salary: &Range{From: fp(80000), To: fp(120000)}},
			want:   100000,
			ok:     true,
		},
		{
			name:   "range lower bound only",
			record: Record{Salary: &Range{From: fp(70000)}},
			want:   70000,
			ok:     true,
		},
		{
			name:   "range upper bound only",
			record: Record{Salary: &Range{To: fp(150000)}},
			want:   150000,
			ok:     true,
		},
		{
			name:   "empty range",
			record: Record{Salary: &Range{}},
			ok:     false,
		},
		{
			name:   "per shift uses monthly estimate",
			record: Record{SalaryPerShift: true, SalaryEstimatedMonthly: fp(67500), SalaryAvg: fp(4500)},
			want:   67500,
			ok:     true,
		},
		{
			name:   "per shift without estimate never falls back",
			record: Record{SalaryPerShift: true, SalaryAvg: fp(4500), Salary: &Range{From: fp(4000), To: fp(5000)}},
			ok:     false,
		},
		{
			name:   "no salary data at all",
			record: Record{Title: "Грузчик"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.record.Monthly()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecordEmployer(t *testing.T) {
	t.Parallel()

	if got := (&Record{EmployerName: "  Пулково  "}).Employer(); got != "Пулково" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
	if got := (&Record{EmployerName: "   "}).Employer(); got != "" {
		t.Fatalf("expected empty employer for whitespace name, got %q", got)
	}
}

func TestRecordHasSchedule(t *testing.T) {
	t.Parallel()

	if (&Record{Schedule: " "}).HasSchedule() {
		t.Fatalf("whitespace schedule should count as absent")
	}
	if !(&Record{Schedule: "Сменный график"}).HasSchedule() {
		t.Fatalf("expected schedule to be present")
	}
}
