package geometry

import (
	"testing"

	"github.com/matzehuels/histoscene/pkg/errors"
)

func TestComputePlotArea(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		in      Insets
		want    PlotArea
		wantErr bool
	}{
		{
			name: "reference canvas",
			w:    800, h: 400,
			in:   DefaultInsets,
			want: PlotArea{Left: 60, Top: 45, Width: 725, Height: 330},
		},
		{
			name: "small but positive",
			w:    100, h: 100,
			in:   DefaultInsets,
			want: PlotArea{Left: 60, Top: 45, Width: 25, Height: 30},
		},
		{
			name: "no insets",
			w:    10, h: 20,
			want: PlotArea{Width: 10, Height: 20},
		},
		{
			name: "one pixel left",
			w:    76, h: 71,
			in:   DefaultInsets,
			want: PlotArea{Left: 60, Top: 45, Width: 1, Height: 1},
		},
		{name: "canvas smaller than insets", w: 50, h: 50, in: DefaultInsets, wantErr: true},
		{name: "zero width", w: 75, h: 400, in: DefaultInsets, wantErr: true},
		{name: "zero height", w: 800, h: 70, in: DefaultInsets, wantErr: true},
		{name: "negative inset", w: 800, h: 400, in: Insets{Left: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePlotArea(tt.w, tt.h, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputePlotArea() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidLayout) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ComputePlotArea() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlotAreaInvariant(t *testing.T) {
	for w := 80; w <= 1200; w += 37 {
		for h := 75; h <= 900; h += 41 {
			for _, in := range []Insets{DefaultInsets, {Left: 5, Right: 5, Top: 5, Bottom: 5}, {Left: 0, Right: 70, Top: 10, Bottom: 0}} {
				if w <= in.Left+in.Right || h <= in.Top+in.Bottom {
					continue
				}
				a, err := ComputePlotArea(w, h, in)
				if err != nil {
					t.Fatalf("ComputePlotArea(%d, %d, %+v) error: %v", w, h, in, err)
				}
				if a.Width != w-in.Left-in.Right || a.Height != h-in.Top-in.Bottom {
					t.Fatalf("ComputePlotArea(%d, %d, %+v) = %+v", w, h, in, a)
				}
				if a.Width <= 0 || a.Height <= 0 {
					t.Fatalf("non-positive area %+v", a)
				}
				if a.Right() != w-in.Right || a.Bottom() != h-in.Bottom {
					t.Fatalf("edges of %+v do not match insets %+v", a, in)
				}
			}
		}
	}
}

func TestCategoryX(t *testing.T) {
	area := PlotArea{Left: 60, Top: 45, Width: 725, Height: 330}

	tests := []struct {
		i, n int
		want int
	}{
		{0, 2, 80},
		{1, 2, 442}, // 725/2 truncates to 362
		{0, 15, 80},
		{1, 15, 128},
		{14, 15, 752},
	}
	for _, tt := range tests {
		got, err := CategoryX(tt.i, tt.n, area)
		if err != nil {
			t.Fatalf("CategoryX(%d, %d) error: %v", tt.i, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("CategoryX(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestSlotWidth(t *testing.T) {
	area := PlotArea{Width: 725, Height: 330}
	if dx, err := SlotWidth(3, area); err != nil || dx != 241 {
		t.Errorf("SlotWidth(3) = %d, %v, want 241", dx, err)
	}
	if _, err := SlotWidth(726, area); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("SlotWidth(726) error = %v, want %s", err, errors.ErrCodeInvalidLayout)
	}
}

func TestCategoryXMonotonic(t *testing.T) {
	tests := []struct {
		area PlotArea
		ns   []int
	}{
		{PlotArea{Left: 60, Top: 45, Width: 725, Height: 330}, []int{1, 2, 3, 15, 100, 725}},
		{PlotArea{Left: 0, Top: 0, Width: 3, Height: 1}, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		for _, n := range tt.ns {
			prev := -1
			for i := 0; i < n; i++ {
				x, err := CategoryX(i, n, tt.area)
				if err != nil {
					t.Fatalf("CategoryX(%d, %d) error: %v", i, n, err)
				}
				if i > 0 && x <= prev {
					t.Fatalf("CategoryX(%d, %d) = %d, not greater than %d", i, n, x, prev)
				}
				prev = x
			}
		}
	}
}

func TestCategoryXErrors(t *testing.T) {
	area := PlotArea{Width: 100, Height: 100}
	tests := []struct {
		name string
		i, n int
	}{
		{"zero categories", 0, 0},
		{"negative count", 0, -2},
		{"index past end", 3, 3},
		{"negative index", -1, 3},
		{"more categories than pixels", 0, 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CategoryX(tt.i, tt.n, area); err == nil {
				t.Errorf("CategoryX(%d, %d) should fail", tt.i, tt.n)
			}
		})
	}
}

func TestXLabelY(t *testing.T) {
	area := PlotArea{Left: 60, Top: 45, Width: 725, Height: 330}
	if got := XLabelY(area); got != 390 {
		t.Errorf("XLabelY() = %d, want 390", got)
	}
}
