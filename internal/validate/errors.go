package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/constset"
	"github.com/vk/widgengo/internal/entity"
)

// ShapeMismatchError reports input that matches none of a validator's
// accepted shapes.
type ShapeMismatchError struct {
	Path     cty.Path
	Got      string
	Accepted []string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%smust be one of: %s (got %s)", fieldPrefix(e.Path), strings.Join(e.Accepted, ", "), e.Got)
}

// RangeError reports a numeric value outside the accepted range.
type RangeError struct {
	Path     cty.Path
	Got      float64
	Min, Max float64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%svalue %v is out of range [%v, %v]", fieldPrefix(e.Path), e.Got, e.Min, e.Max)
}

// UnknownConstantError is a symbolic name outside a constant set's
// vocabulary; produced by the constset package during validation.
type UnknownConstantError = constset.UnknownConstantError

// UnknownReferenceError reports an identifier that does not resolve to a
// declared entity of the required kind.
type UnknownReferenceError struct {
	Path cty.Path
	ID   string
	Want entity.Kind
}

// Error implements the error interface.
func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("%s%q does not resolve to a declared %s", fieldPrefix(e.Path), e.ID, e.Want)
}

// isDefinitive reports whether an error should short-circuit one-of
// composition: the input matched a shape but failed its constraints.
func isDefinitive(err error) bool {
	var rangeErr *RangeError
	var refErr *UnknownReferenceError
	return errors.As(err, &rangeErr) || errors.As(err, &refErr)
}

// PathString renders a field path in the dotted/indexed form used in error
// messages and logs, e.g. "label.text.args[0]".
func PathString(path cty.Path) string {
	var sb strings.Builder
	for _, step := range path {
		switch s := step.(type) {
		case cty.GetAttrStep:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name)
		case cty.IndexStep:
			if s.Key.Type() == cty.Number {
				idx, _ := s.Key.AsBigFloat().Int64()
				fmt.Fprintf(&sb, "[%d]", idx)
			} else {
				fmt.Fprintf(&sb, "[%q]", s.Key.AsString())
			}
		}
	}
	return sb.String()
}

func fieldPrefix(path cty.Path) string {
	if len(path) == 0 {
		return ""
	}
	return PathString(path) + ": "
}

// describeValue renders a raw value for error messages without dumping
// whole structures.
func describeValue(raw cty.Value) string {
	if raw.IsNull() {
		return "null"
	}
	switch raw.Type() {
	case cty.String:
		return fmt.Sprintf("%q", raw.AsString())
	case cty.Number:
		return raw.AsBigFloat().Text('g', -1)
	case cty.Bool:
		if raw.True() {
			return "true"
		}
		return "false"
	default:
		return raw.Type().FriendlyName()
	}
}
