package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/histoscene/pkg/errors"
)

// Input formats understood by [Decode].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// DecodeJSON decodes a spec in the reference JSON encoding.
// Malformed input, wrong field types, negative or fractional values and
// trailing data are reported as INVALID_FORMAT. The returned spec is not
// validated.
func DecodeJSON(r io.Reader) (ChartSpec, error) {
	var s ChartSpec
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return ChartSpec{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart spec")
	}
	if dec.More() {
		return ChartSpec{}, errors.New(errors.ErrCodeInvalidFormat, "decode chart spec: trailing data after document")
	}
	return s, nil
}

// DecodeTOML decodes a spec written in TOML. Missing values are written as
// "-" inside the values array:
//
//	labels_x = ["Jul 14", "Jul 21"]
//	[[series]]
//	name = "Minted"
//	color = "#ff8800"
//	values = [261061, "-"]
func DecodeTOML(r io.Reader) (ChartSpec, error) {
	var s ChartSpec
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return ChartSpec{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart spec")
	}
	return s, nil
}

// Decode dispatches on format ("json" or "toml").
func Decode(r io.Reader, format string) (ChartSpec, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatTOML:
		return DecodeTOML(r)
	}
	return ChartSpec{}, errors.ValidateChoice("input format", format, FormatJSON, FormatTOML)
}

// DecodeBytes is [Decode] over an in-memory document.
func DecodeBytes(data []byte, format string) (ChartSpec, error) {
	return Decode(bytes.NewReader(data), format)
}

// FormatForPath infers the input format from a file extension.
// Anything other than .toml is treated as JSON.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// ImportFile reads and decodes the spec at path. The format is inferred
// from the extension. Open failures are reported as NOT_FOUND or INTERNAL;
// the spec is not validated.
func ImportFile(path string) (ChartSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ChartSpec{}, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return ChartSpec{}, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f, FormatForPath(path))
}

// EncodeJSON writes s in the reference JSON encoding.
func EncodeJSON(w io.Writer, s ChartSpec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
