package styles

import (
	"testing"
)

const wantStylesheet = `text {
  font-family: arial, monospace;
}
.y-axis text, .x-axis text {
  text-anchor: middle;
  fill: rgb(103, 102, 102);
  font-size: 12px;
}
.label-variant-a {
  white-space: pre;
  font-size: 15px;
  fill: rgb(253, 200, 39);
  text-anchor: end;
  word-spacing: 0;
}
.label-variant-b {
  white-space: pre;
  font-size: 15px;
  fill: rgb(33, 125, 245);
  text-anchor: end;
  word-spacing: 0;
}
@media (max-width: 500px) {
  .x-axis text:nth-of-type(2n), .y-axis text:nth-of-type(2n) {
    transition: opacity 1s ease-in-out;
    opacity: 0;
  }
  .label-variant-b, .label-variant-a {
    font-size: 170%;
  }
  .y-axis text {
    font-size: 120%;
  }
  .x-axis text {
    font-size: 120%;
  }
}
`

func TestBuildString(t *testing.T) {
	if got := Build().String(); got != wantStylesheet {
		t.Errorf("Build().String() =\n%s\nwant\n%s", got, wantStylesheet)
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := Build().String()
	for i := 0; i < 10; i++ {
		if got := Build().String(); got != first {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestLookup(t *testing.T) {
	s := Build()

	tests := []struct {
		selector string
		property string
		want     string
	}{
		{"text", "font-family", "arial, monospace"},
		{".y-axis text, .x-axis text", "font-size", "12px"},
		{".label-variant-a", "fill", "rgb(253, 200, 39)"},
		{".label-variant-b", "fill", "rgb(33, 125, 245)"},
		{".label-variant-b", "text-anchor", "end"},
	}
	for _, tt := range tests {
		props, ok := s.Lookup(tt.selector)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.selector)
			continue
		}
		if got := props[tt.property]; got != tt.want {
			t.Errorf("Lookup(%q)[%q] = %q, want %q", tt.selector, tt.property, got, tt.want)
		}
	}

	if _, ok := s.Lookup(".missing"); ok {
		t.Error("Lookup(.missing) should not be found")
	}
}

func TestLookupMedia(t *testing.T) {
	s := Build()

	props, ok := s.LookupMedia(MobileBreakpoint, ".x-axis text:nth-of-type(2n), .y-axis text:nth-of-type(2n)")
	if !ok {
		t.Fatal("fade rule not found")
	}
	if props["opacity"] != "0" {
		t.Errorf("opacity = %q, want 0", props["opacity"])
	}

	if _, ok := s.LookupMedia("(min-width: 1px)", ".x-axis text"); ok {
		t.Error("unknown media condition should not match")
	}
}

func TestLabelVariantsDiffer(t *testing.T) {
	s := Build()
	a, _ := s.Lookup("." + ClassLabelA)
	b, _ := s.Lookup("." + ClassLabelB)
	if a["fill"] == b["fill"] {
		t.Error("label variants should use distinct fills")
	}
}
