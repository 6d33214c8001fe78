package market

import (
	"reflect"
	"testing"
)

func TestRankEmployers(t *testing.T) {
	t.Parallel()

	byName := func(names ...string) []Record {
		records := make([]Record, 0, len(names))
		for _, n := range names {
			records = append(records, Record{EmployerName: n})
		}
		return records
	}

	tests := []struct {
		name    string
		records []Record
		want    []string
	}{
		{
			name:    "ordered by count descending",
			records: byName("РЖД", "Пулково", "Пулково", "Теремок", "Пулково", "РЖД"),
			want:    []string{"Пулково", "РЖД", "Теремок"},
		},
		{
			name:    "ties keep first-encountered order",
			records: byName("B", "A", "B", "A", "C"),
			want:    []string{"B", "A", "C"},
		},
		{
			name:    "blank employers dropped",
			records: byName("", "  ", "Пулково", "\t"),
			want:    []string{"Пулково"},
		},
		{
			name:    "names trimmed before grouping",
			records: byName(" Пулково", "Пулково ", "РЖД"),
			want:    []string{"Пулково", "РЖД"},
		},
		{
			name: "empty input",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RankEmployers(tt.records)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
