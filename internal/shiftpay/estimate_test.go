package shiftpay

import (
	"math"
	"testing"
)

func TestEstimateMonthly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "explicit shifts per month",
			text: "Оплата 4 500 ₽ за смену. 18 смен в месяц.",
			want: 4500 * 18,
		},
		{
			name: "range with 2/2 schedule",
			text: "Ставка 4 000–5 000 руб/смена, график 2/2",
			want: 4500 * 15,
		},
		{
			name: "colloquial per-shift with weekly count",
			text: "Оплата 4000 в смену, 3 смены в неделю",
			want: 4000 * 3 * 4.33,
		},
		{
			name: "pay-of-shift phrase falls back to 15 shifts",
			text: "Оплата смены: 4500",
			want: 4500 * 15,
		},
		{
			name: "day shift every third day",
			text: "Ставка 5000 за сутки, график сутки через двое",
			want: 5000 * (30.0 / 3.0),
		},
		{
			name: "thousand marker short form",
			text: "Ставка 4,5 тыс/см.",
			want: 4500 * 15,
		},
		{
			name: "english per-shift variant",
			text: "Pay 4000 RUB per shift, 18 смен/мес",
			want: 4000 * 18,
		},
		{
			name: "shift count clamped to sane upper bound",
			text: "За смену 3000, 40 смен в месяц",
			want: 3000 * 26,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := EstimateMonthly(tt.text)
			if !ok {
				t.Fatalf("expected a per-shift estimate for %q", tt.text)
			}
			if math.Abs(got-tt.want) > tt.want*0.03 {
				t.Fatalf("expected about %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEstimateMonthlyNoShiftMention(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "plain monthly salary", text: "Зарплата от 60 000 до 80 000 рублей в месяц"},
		{name: "empty text", text: ""},
		{name: "no pay at all", text: "Требуется охранник, график обсуждается"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, ok := EstimateMonthly(tt.text); ok {
				t.Fatalf("expected no estimate for %q, got %v", tt.text, got)
			}
		})
	}
}

func TestEstimateMonthlyJoinsTexts(t *testing.T) {
	t.Parallel()

	got, ok := EstimateMonthly("Охранник", "", "Оплата 4500 за смену. 18 смен в месяц")
	if !ok || math.Abs(got-4500*18) > 1 {
		t.Fatalf("expected %v, got %v (ok=%v)", 4500*18, got, ok)
	}
}

func TestParseRubleAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		full    string
		numeric string
		want    float64
		ok      bool
	}{
		{name: "spaced grouping", full: "4 500 за смену", numeric: "4 500", want: 4500, ok: true},
		{name: "dot grouping", full: "3.500 за смену", numeric: "3.500", want: 3500, ok: true},
		{name: "decimal with thousand marker", full: "4,5 тыс", numeric: "4,5", want: 4500, ok: true},
		{name: "plain integer", full: "4000 за смену", numeric: "4000", want: 4000, ok: true},
		{name: "garbage", full: "за смену", numeric: "-", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseRubleAmount(tt.full, tt.numeric)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
