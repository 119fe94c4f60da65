package validate

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
)

// boolLiteralRule accepts a boolean literal.
func boolLiteralRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	if raw.IsNull() || raw.Type() != cty.Bool {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: []string{"true/false"}}
	}
	return raw.True(), nil
}

var boolShapes = []string{"true/false", "boolean sensor ID"}

// Bool validates a boolean: a literal, or a reference to a declared boolean
// sensor whose current state is read at runtime.
var Bool = New(Config{
	Name:   "bool",
	Target: "bool",
	Shapes: boolShapes,
	Source: &DynamicSource{Kind: entity.KindBooleanSensor, Accessor: "get_state()"},
	Rule: anyOf(boolShapes,
		boolLiteralRule,
		refRule(entity.KindBooleanSensor),
	),
})
