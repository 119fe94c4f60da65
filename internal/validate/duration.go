package validate

import (
	"math"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// maxDurationMS is the largest representable runtime duration: the
// "never" sentinel maps onto it.
const maxDurationMS = math.MaxInt32

// millisecondsRule accepts the "never" literal, a bare number of
// milliseconds, or a human-readable time span ("250ms", "2s", "1min").
// The result is a whole, non-negative millisecond count.
func millisecondsRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	if i, ok := asInt(raw); ok {
		if i < 0 || i > maxDurationMS {
			return nil, &RangeError{Path: path, Got: float64(i), Min: 0, Max: maxDurationMS}
		}
		return i, nil
	}

	if raw.IsNull() || raw.Type() != cty.String {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: millisecondsShapes}
	}

	s := strings.TrimSpace(raw.AsString())
	if s == "never" {
		return int64(maxDurationMS), nil
	}

	d, err := parseTimeSpan(s)
	if err != nil {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: millisecondsShapes}
	}
	if d < 0 || d.Milliseconds() > maxDurationMS {
		return nil, &RangeError{Path: path, Got: float64(d.Milliseconds()), Min: 0, Max: maxDurationMS}
	}
	if d%time.Millisecond != 0 {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"whole milliseconds"}}
	}
	return d.Milliseconds(), nil
}

// parseTimeSpan normalizes config-style duration spellings ("min" for
// minutes, "d" for days) before handing off to time.ParseDuration.
func parseTimeSpan(s string) (time.Duration, error) {
	s = strings.ReplaceAll(s, "min", "m")
	if strings.HasSuffix(s, "d") {
		s = strings.TrimSuffix(s, "d") + "h"
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
		return d * 24, nil
	}
	return time.ParseDuration(s)
}

var millisecondsShapes = []string{"time period", "milliseconds", "never"}

// Milliseconds validates a time duration delivered to the runtime as whole
// milliseconds in an int32; "never" maps to the maximum representable value.
var Milliseconds = New(Config{
	Name:   "milliseconds",
	Target: "int32",
	Shapes: millisecondsShapes,
	Rule:   millisecondsRule,
})
