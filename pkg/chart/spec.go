package chart

// ChartSpec is the sole input of a render call.
// It is treated as immutable for the lifetime of the call.
type ChartSpec struct {
	Width       int      `json:"width" toml:"width"`
	Height      int      `json:"height" toml:"height"`
	Description string   `json:"description" toml:"description"`
	Caption     string   `json:"caption" toml:"caption"` // empty means no caption
	Labels      []string `json:"labels_x" toml:"labels_x"`
	Series      []Series `json:"series" toml:"series"`
}

// Series is one named, colored sequence of optional values aligned to the
// category labels. Slice order is draw and legend order.
type Series struct {
	Name   string  `json:"name" toml:"name"`
	Color  string  `json:"color" toml:"color"`
	Values []Value `json:"values" toml:"values"`
}

// Range returns the smallest and largest present value across all series.
// Missing values are skipped; ok is false when no series holds any value.
func (s ChartSpec) Range() (lo, hi uint64, ok bool) {
	for _, ser := range s.Series {
		for _, v := range ser.Values {
			n, present := v.Get()
			if !present {
				continue
			}
			if !ok {
				lo, hi, ok = n, n, true
				continue
			}
			lo = min(lo, n)
			hi = max(hi, n)
		}
	}
	return lo, hi, ok
}

// Present returns the number of non-missing values in the series.
func (s Series) Present() int {
	n := 0
	for _, v := range s.Values {
		if v.Valid {
			n++
		}
	}
	return n
}
