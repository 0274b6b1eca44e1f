package chart

import (
	"strings"
	"testing"

	"github.com/matzehuels/histoscene/pkg/errors"
)

func validSpec() ChartSpec {
	return ChartSpec{
		Width:       800,
		Height:      400,
		Description: "Histogram Example",
		Caption:     "Rewards Distribution",
		Labels:      []string{"Jul 14", "Jul 21", "Jul 29"},
		Series: []Series{
			{Name: "Staked", Color: "#ffaa88", Values: Values(1, 2, 3)},
			{Name: "Minted", Color: "rgb(255, 136, 0)", Values: []Value{Some(1), None(), Some(3)}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChartSpec)
		wantErr bool
	}{
		{"valid", func(*ChartSpec) {}, false},
		{"no series", func(s *ChartSpec) { s.Series = nil }, false},
		{"empty caption", func(s *ChartSpec) { s.Caption = "" }, false},
		{"short hex color", func(s *ChartSpec) { s.Series[0].Color = "#fa8" }, false},
		{"named color", func(s *ChartSpec) { s.Series[0].Color = "orange" }, false},
		{"unparsed color", func(s *ChartSpec) { s.Series[0].Color = "hsl(30, 100%, 50%)" }, false},
		{"tab in label", func(s *ChartSpec) { s.Labels[0] = "Jul\t14" }, false},
		{"newline in caption", func(s *ChartSpec) { s.Caption = "Rewards\nDistribution" }, false},
		{"long label", func(s *ChartSpec) { s.Labels[0] = strings.Repeat("x", 4096) }, false},

		{"zero width", func(s *ChartSpec) { s.Width = 0 }, true},
		{"negative height", func(s *ChartSpec) { s.Height = -1 }, true},
		{"no labels", func(s *ChartSpec) { s.Labels = nil }, true},
		{"too few values", func(s *ChartSpec) { s.Series[0].Values = Values(1, 2) }, true},
		{"too many values", func(s *ChartSpec) { s.Series[1].Values = Values(1, 2, 3, 4) }, true},
		{"control char in label", func(s *ChartSpec) { s.Labels[1] = "Jul\x0221" }, true},
		{"null byte in caption", func(s *ChartSpec) { s.Caption = "a\x00b" }, true},
		{"invalid utf-8 in series name", func(s *ChartSpec) { s.Series[1].Name = "Mint\xffed" }, true},
		{"control char in color", func(s *ChartSpec) { s.Series[0].Color = "red\x1b" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.mutate(&s)
			err := Validate(s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidSpec) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpec)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"#ffaa88", "#ffaa88", false},
		{"#FFAA88", "#ffaa88", false},
		{"#fa8", "#ffaa88", false},
		{"rgb(103, 102, 102)", "#676666", false},
		{"  #000000 ", "#000000", false},
		{"orange", "#ffa500", false},
		{"SteelBlue", "#4682b4", false},

		{"", "", true},
		{"#ggg", "", true},
		{"rgb(1, 2)", "", true},
		{"hsl(0, 0%, 0%)", "", true},
		{"orange-ish", "", true},
		{"rgb(300, 0, 0)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && c.Hex() != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.input, c.Hex(), tt.want)
			}
		})
	}
}
