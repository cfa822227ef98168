package stats_test

import (
	"testing"

	"github.com/albapepper/qbscore/internal/stats"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   float64
		wantOK bool
	}{
		{name: "plain decimal", in: "7.9", want: 7.9, wantOK: true},
		{name: "integer string", in: "4183", want: 4183, wantOK: true},
		{name: "thousands separator", in: "4,183", want: 4183, wantOK: true},
		{name: "percent suffix", in: " 65.3% ", want: 65.3, wantOK: true},
		{name: "negative", in: "-12", want: -12, wantOK: true},
		{name: "float64", in: 101.5, want: 101.5, wantOK: true},
		{name: "int", in: 3, want: 3, wantOK: true},
		{name: "empty", in: "   ", wantOK: false},
		{name: "text", in: "N/A", wantOK: false},
		{name: "nil", in: nil, wantOK: false},
		{name: "unsupported type", in: []int{1}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stats.ParseValue(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordValueRoundTrip(t *testing.T) {
	var r stats.PlayerRecord
	for i, m := range stats.Metrics {
		r = r.WithValue(m, float64(i+1))
	}
	for i, m := range stats.Metrics {
		if got := r.Value(m); got != float64(i+1) {
			t.Errorf("Value(%s) = %v, want %v", m, got, i+1)
		}
	}
}

func TestDatasetColumn(t *testing.T) {
	ds := stats.Dataset{
		{Player: "A", PasserRating: 100},
		{Player: "B", PasserRating: 90},
	}
	col := ds.Column(stats.PasserRating)
	if len(col) != 2 || col[0] != 100 || col[1] != 90 {
		t.Errorf("Column = %v, want [100 90]", col)
	}
	names := ds.Names()
	if names[0] != "A" || names[1] != "B" {
		t.Errorf("Names = %v, want [A B]", names)
	}
}
