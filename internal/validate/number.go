package validate

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/constset"
	"github.com/vk/widgengo/internal/entity"
)

// asInt extracts a whole number. Fractional numbers are not silently
// truncated here; kinds that scale fractions handle them explicitly.
func asInt(raw cty.Value) (int64, bool) {
	if raw.IsNull() || raw.Type() != cty.Number {
		return 0, false
	}
	i, acc := raw.AsBigFloat().Int64()
	if acc != 0 { // not exactly representable as an integer
		return 0, false
	}
	return i, true
}

// asFloat extracts any number as float64.
func asFloat(raw cty.Value) (float64, bool) {
	if raw.IsNull() || raw.Type() != cty.Number {
		return 0, false
	}
	f, _ := raw.AsBigFloat().Float64()
	return f, true
}

// parsePercent accepts either a "NN%" string or a bare fraction and returns
// the value as a fraction in [0, 1]. Values outside that range are a
// RangeError, which one-of composition treats as definitive.
func parsePercent(raw cty.Value, path cty.Path) (float64, error) {
	var frac float64
	switch {
	case !raw.IsNull() && raw.Type() == cty.String && strings.HasSuffix(raw.AsString(), "%"):
		text := strings.TrimSuffix(raw.AsString(), "%")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"..%"}}
		}
		frac = parsed / 100
	default:
		f, ok := asFloat(raw)
		if !ok {
			return 0, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"..%"}}
		}
		frac = f
	}

	if frac < 0 || frac > 1 {
		return 0, &RangeError{Path: path, Got: frac, Min: 0, Max: 1}
	}
	return frac, nil
}

// percentScaled builds a rule that validates a percentage and scales it to
// an integer. Scaling truncates, matching the generator's historical
// behavior for every percent-derived property.
func percentScaled(scale float64) Rule {
	return func(_ *Context, raw cty.Value, path cty.Path) (any, error) {
		frac, err := parsePercent(raw, path)
		if err != nil {
			return nil, err
		}
		return int64(frac * scale), nil
	}
}

// floatRangeScaled builds a rule for a bare float in [min, max], scaled and
// truncated to an integer.
func floatRangeScaled(min, max, scale float64) Rule {
	return func(_ *Context, raw cty.Value, path cty.Path) (any, error) {
		f, ok := asFloat(raw)
		if !ok {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"number"}}
		}
		if f < min || f > max {
			return nil, &RangeError{Path: path, Got: f, Min: min, Max: max}
		}
		return int64(f * scale), nil
	}
}

// intRange builds a rule for a whole number in [min, max], passed through
// unchanged.
func intRange(min, max int64) Rule {
	return func(_ *Context, raw cty.Value, path cty.Path) (any, error) {
		i, ok := asInt(raw)
		if !ok {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"integer"}}
		}
		if i < min || i > max {
			return nil, &RangeError{Path: path, Got: float64(i), Min: float64(min), Max: float64(max)}
		}
		return i, nil
	}
}

// constRule adapts a constant set into a Rule.
func constRule(set *constset.Set) Rule {
	return func(_ *Context, raw cty.Value, path cty.Path) (any, error) {
		lit, err := set.OneOf(raw, path)
		if err != nil {
			return nil, err
		}
		return lit, nil
	}
}

// refRule builds a rule accepting an identifier that must resolve to a
// declared entity of the given kind. A well-formed identifier that does not
// resolve is an UnknownReferenceError, which one-of composition treats as
// definitive rather than falling through to other shapes.
func refRule(kind entity.Kind) Rule {
	return func(cc *Context, raw cty.Value, path cty.Path) (any, error) {
		if raw.IsNull() || raw.Type() != cty.String {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"ID"}}
		}
		id := raw.AsString()
		if err := entity.ValidateID(id); err != nil {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"ID"}}
		}
		ref, ok := cc.Entities.Lookup(id)
		if !ok || ref.Kind != kind {
			return nil, &UnknownReferenceError{Path: path, ID: id, Want: kind}
		}
		return ref, nil
	}
}
