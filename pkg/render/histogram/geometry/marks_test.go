package geometry

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBar(t *testing.T) {
	area := PlotArea{Left: 0, Top: 0, Width: 100, Height: 100}
	s := NewScale(100, area, DefaultTickCount)

	r, err := Bar(BarSlot{Series: 0, SeriesCount: 1, Category: 0, CategoryCount: 1}, 50, area, s)
	if err != nil {
		t.Fatalf("Bar error: %v", err)
	}
	want := Rect{X: 15, Y: 50, W: 70, H: 50}
	if r != want {
		t.Errorf("Bar() = %+v, want %+v", r, want)
	}
}

func TestBarsSideBySide(t *testing.T) {
	area := PlotArea{Left: 60, Top: 45, Width: 725, Height: 330}
	s := NewScale(1000, area, DefaultTickCount)

	a, _ := Bar(BarSlot{Series: 0, SeriesCount: 2, Category: 3, CategoryCount: 15}, 400, area, s)
	b, _ := Bar(BarSlot{Series: 1, SeriesCount: 2, Category: 3, CategoryCount: 15}, 800, area, s)

	if a.X+a.W != b.X {
		t.Errorf("bars should touch: a ends %v, b starts %v", a.X+a.W, b.X)
	}
	if !approx(a.Y+a.H, float64(area.Bottom())) || !approx(b.Y+b.H, float64(area.Bottom())) {
		t.Error("bars should rest on the plot bottom")
	}
	if !approx(b.H, 2*a.H) {
		t.Errorf("bar heights not proportional: %v vs %v", a.H, b.H)
	}
}

func TestBarErrors(t *testing.T) {
	area := PlotArea{Width: 100, Height: 100}
	s := NewScale(10, area, DefaultTickCount)
	bad := []BarSlot{
		{Series: 0, SeriesCount: 0, Category: 0, CategoryCount: 1},
		{Series: 2, SeriesCount: 2, Category: 0, CategoryCount: 1},
		{Series: 0, SeriesCount: 1, Category: 0, CategoryCount: 0},
		{Series: 0, SeriesCount: 1, Category: 1, CategoryCount: 1},
	}
	for _, b := range bad {
		if _, err := Bar(b, 1, area, s); err == nil {
			t.Errorf("Bar(%+v) should fail", b)
		}
	}
}
