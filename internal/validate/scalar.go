package validate

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
)

// Zoom validates a magnification factor in [0.1, 10.0], scaled to the
// runtime's fixed-point representation where 256 is 1:1.
var Zoom = New(Config{
	Name:   "zoom",
	Target: "uint32",
	Shapes: []string{"number 0.1..10.0"},
	Rule:   floatRangeScaled(0.1, 10.0, 256),
})

// angleRule accepts degrees as a number or as a string with a "°" or "deg"
// suffix, validated into [0, 360] and scaled to tenths of a degree.
func angleRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	var degrees float64
	switch {
	case !raw.IsNull() && raw.Type() == cty.String:
		s := strings.TrimSpace(raw.AsString())
		s = strings.TrimSuffix(s, "°")
		s = strings.TrimSuffix(s, "deg")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"degrees 0..360"}}
		}
		degrees = parsed
	default:
		f, ok := asFloat(raw)
		if !ok {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"degrees 0..360"}}
		}
		degrees = f
	}

	if degrees < 0 || degrees > 360 {
		return nil, &RangeError{Path: path, Got: degrees, Min: 0, Max: 360}
	}
	return int64(degrees * 10), nil
}

// Angle validates an angle in degrees, converted to integer tenths of a
// degree.
var Angle = New(Config{
	Name:   "angle",
	Target: "int32",
	Shapes: []string{"degrees 0..360"},
	Rule:   angleRule,
})

// StopValue validates a gradient stop position in 0-255.
var StopValue = New(Config{
	Name:   "stop_value",
	Target: "uint8",
	Shapes: []string{"integer 0..255"},
	Rule:   intRange(0, 255),
})

// IDName validates a bare identifier, emitted verbatim.
var IDName = New(Config{
	Name:   "id_name",
	Target: "identifier",
	Shapes: []string{"ID"},
	Rule: func(_ *Context, raw cty.Value, path cty.Path) (any, error) {
		if raw.IsNull() || raw.Type() != cty.String {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"ID"}}
		}
		id := raw.AsString()
		if err := entity.ValidateID(id); err != nil {
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"ID"}}
		}
		return id, nil
	},
})
