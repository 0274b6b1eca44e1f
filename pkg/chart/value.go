package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is an optional non-negative sample. The zero Value is missing.
type Value struct {
	N     uint64
	Valid bool
}

// Some returns a present value.
func Some(n uint64) Value { return Value{N: n, Valid: true} }

// None returns a missing value.
func None() Value { return Value{} }

// Values builds a slice of present values.
func Values(ns ...uint64) []Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = Some(n)
	}
	return out
}

// Get returns the sample and whether it is present.
func (v Value) Get() (uint64, bool) { return v.N, v.Valid }

// String returns the decimal sample, or "-" when missing.
func (v Value) String() string {
	if !v.Valid {
		return "-"
	}
	return strconv.FormatUint(v.N, 10)
}

// MarshalJSON encodes a missing value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendUint(nil, v.N, 10), nil
}

// UnmarshalJSON accepts null or a non-negative integer.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = None()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return fmt.Errorf("value must be a number or null, got string %s", data)
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	n, err := parseCount(num.String())
	if err != nil {
		return err
	}
	*v = Some(n)
	return nil
}

// UnmarshalTOML accepts an integer, or one of "", "-", "null" for a missing
// value (TOML has no null).
func (v *Value) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case int64:
		if d < 0 {
			return fmt.Errorf("value must be non-negative, got %d", d)
		}
		*v = Some(uint64(d))
	case string:
		switch strings.TrimSpace(d) {
		case "", "-", "null":
			*v = None()
		default:
			return fmt.Errorf("value must be an integer or \"-\", got %q", d)
		}
	default:
		return fmt.Errorf("value must be an integer or \"-\", got %T", data)
	}
	return nil
}

func parseCount(s string) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("value must be non-negative, got %s", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value must be a non-negative integer, got %s", s)
	}
	return n, nil
}
