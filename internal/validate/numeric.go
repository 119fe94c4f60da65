package validate

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
)

// floatLiteralRule accepts any numeric literal.
func floatLiteralRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	f, ok := asFloat(raw)
	if !ok {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"number"}}
	}
	return f, nil
}

// intLiteralRule accepts a whole-number literal.
func intLiteralRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	i, ok := asInt(raw)
	if !ok {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"integer"}}
	}
	return i, nil
}

var (
	floatShapes = []string{"number", "sensor ID"}
	intShapes   = []string{"integer", "sensor ID"}
)

// Float validates a floating point value: a literal, or a reference to a
// declared numeric sensor.
var Float = New(Config{
	Name:   "float",
	Target: "float",
	Shapes: floatShapes,
	Source: &DynamicSource{Kind: entity.KindNumericSensor, Accessor: "get_state()"},
	Rule: anyOf(floatShapes,
		floatLiteralRule,
		refRule(entity.KindNumericSensor),
	),
})

// Int validates an integer value: a whole-number literal, or a reference to
// a declared numeric sensor.
var Int = New(Config{
	Name:   "int",
	Target: "int",
	Shapes: intShapes,
	Source: &DynamicSource{Kind: entity.KindNumericSensor, Accessor: "get_state()"},
	Rule: anyOf(intShapes,
		intLiteralRule,
		refRule(entity.KindNumericSensor),
	),
})
