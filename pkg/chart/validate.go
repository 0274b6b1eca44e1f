package chart

import (
	"github.com/matzehuels/histoscene/pkg/errors"
)

// Validate checks the invariants a spec must hold before any layout work.
// The first violation is returned with the INVALID_SPEC code:
//   - width and height are positive
//   - there is at least one category label
//   - every series has exactly one value slot per label
//   - text fields are valid UTF-8 without characters markup cannot carry
//
// Series colors are not checked here: they only matter when marks are drawn,
// and an unparsed color is passed through to the markup as written.
// Insets that leave no plot area are checked later by the geometry package,
// since they depend on render options rather than on the spec.
func Validate(s ChartSpec) error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "canvas size must be positive, got %dx%d", s.Width, s.Height)
	}
	if len(s.Labels) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "at least one category label is required")
	}
	if err := errors.ValidateText("description", s.Description); err != nil {
		return err
	}
	if err := errors.ValidateText("caption", s.Caption); err != nil {
		return err
	}
	for i, l := range s.Labels {
		if err := errors.ValidateText("label", l); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "category %d", i)
		}
	}
	for i, ser := range s.Series {
		if len(ser.Values) != len(s.Labels) {
			return errors.New(errors.ErrCodeInvalidSpec,
				"series %d (%q) has %d values, want %d (one per category label)",
				i, ser.Name, len(ser.Values), len(s.Labels))
		}
		if err := errors.ValidateText("series name", ser.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "series %d", i)
		}
		if err := errors.ValidateText("series color", ser.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "series %d", i)
		}
	}
	return nil
}
