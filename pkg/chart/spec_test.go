package chart

import "testing"

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		series []Series
		lo, hi uint64
		ok     bool
	}{
		{
			name: "no series",
		},
		{
			name:   "all missing",
			series: []Series{{Values: []Value{None(), None()}}},
		},
		{
			name:   "single series",
			series: []Series{{Values: Values(5, 3, 9)}},
			lo:     3, hi: 9, ok: true,
		},
		{
			name: "missing values are skipped, not zero",
			series: []Series{
				{Values: []Value{None(), Some(40), None()}},
				{Values: []Value{Some(10), None(), Some(25)}},
			},
			lo: 10, hi: 40, ok: true,
		},
		{
			name:   "explicit zero counts",
			series: []Series{{Values: []Value{Some(0), None(), Some(8)}}},
			lo:     0, hi: 8, ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := ChartSpec{Series: tt.series}.Range()
			if lo != tt.lo || hi != tt.hi || ok != tt.ok {
				t.Errorf("Range() = (%d, %d, %v), want (%d, %d, %v)", lo, hi, ok, tt.lo, tt.hi, tt.ok)
			}
		})
	}
}

func TestSeriesPresent(t *testing.T) {
	s := Series{Values: []Value{Some(1), None(), Some(0)}}
	if got := s.Present(); got != 2 {
		t.Errorf("Present() = %d, want 2", got)
	}
}
