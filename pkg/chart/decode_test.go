package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/histoscene/pkg/errors"
)

const exampleJSON = `{
  "width": 800,
  "height": 400,
  "description": "Histogram Example",
  "caption": "Rewards Distribution",
  "labels_x": ["Jul 14", "Jul 21"],
  "series": [
    {"name": "Staked", "color": "#ffaa88", "values": [35129025, 42437593]},
    {"name": "Minted", "color": "#ff8800", "values": [261061, null]}
  ]
}`

const exampleTOML = `
width = 800
height = 400
description = "Histogram Example"
caption = "Rewards Distribution"
labels_x = ["Jul 14", "Jul 21"]

[[series]]
name = "Staked"
color = "#ffaa88"
values = [35129025, 42437593]

[[series]]
name = "Minted"
color = "#ff8800"
values = [261061, "-"]
`

func exampleSpec() ChartSpec {
	return ChartSpec{
		Width:       800,
		Height:      400,
		Description: "Histogram Example",
		Caption:     "Rewards Distribution",
		Labels:      []string{"Jul 14", "Jul 21"},
		Series: []Series{
			{Name: "Staked", Color: "#ffaa88", Values: Values(35129025, 42437593)},
			{Name: "Minted", Color: "#ff8800", Values: []Value{Some(261061), None()}},
		},
	}
}

func TestDecodeJSON(t *testing.T) {
	got, err := DecodeJSON(strings.NewReader(exampleJSON))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if !reflect.DeepEqual(got, exampleSpec()) {
		t.Errorf("DecodeJSON = %+v, want %+v", got, exampleSpec())
	}
}

func TestDecodeTOML(t *testing.T) {
	got, err := DecodeTOML(strings.NewReader(exampleTOML))
	if err != nil {
		t.Fatalf("DecodeTOML error: %v", err)
	}
	if !reflect.DeepEqual(got, exampleSpec()) {
		t.Errorf("DecodeTOML = %+v, want %+v", got, exampleSpec())
	}
}

func TestDecodeErrorsAreFormatErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"malformed json", FormatJSON, `{"width": 800,`},
		{"wrong type", FormatJSON, `{"width": "wide"}`},
		{"labels not array", FormatJSON, `{"labels_x": "Jul 14"}`},
		{"negative value", FormatJSON, `{"series": [{"values": [-3]}]}`},
		{"string value", FormatJSON, `{"series": [{"values": ["3"]}]}`},
		{"trailing data", FormatJSON, `{} {}`},
		{"malformed toml", FormatTOML, `width = `},
		{"bad toml value", FormatTOML, "[[series]]\nvalues = [\"many\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Decode should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestDecodeThenValidateIsDistinct(t *testing.T) {
	// Well-formed but semantically invalid: 2 labels, 1 value.
	input := `{"width": 800, "height": 400, "labels_x": ["a", "b"],
		"series": [{"name": "s", "color": "#000000", "values": [1]}]}`

	s, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	err = Validate(s)
	if !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Errorf("Validate code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpec)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader("{}"), "yaml")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, exampleSpec()); err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"labels_x"`) {
		t.Errorf("encoded spec should use labels_x: %s", buf.String())
	}
	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if !reflect.DeepEqual(got, exampleSpec()) {
		t.Errorf("round trip = %+v, want %+v", got, exampleSpec())
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "chart.json")
	tomlPath := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(jsonPath, []byte(exampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte(exampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, tomlPath} {
		got, err := ImportFile(path)
		if err != nil {
			t.Fatalf("ImportFile(%s) error: %v", path, err)
		}
		if !reflect.DeepEqual(got, exampleSpec()) {
			t.Errorf("ImportFile(%s) = %+v", path, got)
		}
	}

	_, err := ImportFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file code = %v, want %v", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"chart.json":  FormatJSON,
		"chart.TOML":  FormatTOML,
		"chart":       FormatJSON,
		"a/b/c.toml":  FormatTOML,
		"chart.jsonc": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
