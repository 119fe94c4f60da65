package validate

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
	"github.com/vk/widgengo/internal/expr"
)

// formatSpec is the structured {format, args} text shape: a printf-style
// template formatted at runtime with the arguments rendered verbatim.
type formatSpec struct {
	Format string
	Args   []string
}

// textRule accepts a plain string, a reference to a declared text sensor,
// or a {format, args} map. A bare string that resolves to a declared text
// sensor is taken as a reference; any other string is a literal.
func textRule(cc *Context, raw cty.Value, path cty.Path) (any, error) {
	if raw.IsNull() {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: textShapes}
	}

	if raw.Type() == cty.String {
		s := raw.AsString()
		if entity.ValidateID(s) == nil {
			if ref, ok := cc.Entities.Lookup(s); ok && ref.Kind == entity.KindTextSensor {
				return ref, nil
			}
		}
		return s, nil
	}

	if raw.Type().IsObjectType() || raw.Type().IsMapType() {
		return decodeFormatSpec(raw, path)
	}

	return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: textShapes}
}

// decodeFormatSpec pulls format and args out of the structured text shape.
func decodeFormatSpec(raw cty.Value, path cty.Path) (any, error) {
	attrs := raw.AsValueMap()

	formatVal, ok := attrs["format"]
	if !ok || formatVal.IsNull() || formatVal.Type() != cty.String {
		return nil, &ShapeMismatchError{
			Path:     path.GetAttr("format"),
			Got:      "missing or non-string format",
			Accepted: []string{"format string"},
		}
	}
	spec := formatSpec{Format: formatVal.AsString()}

	if argsVal, ok := attrs["args"]; ok && !argsVal.IsNull() {
		if !argsVal.CanIterateElements() {
			return nil, &ShapeMismatchError{
				Path:     path.GetAttr("args"),
				Got:      describeValue(argsVal),
				Accepted: []string{"list of arguments"},
			}
		}
		it := argsVal.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, elem := it.Element()
			arg, err := renderArg(elem, path.GetAttr("args").Index(cty.NumberIntVal(int64(i))))
			if err != nil {
				return nil, err
			}
			spec.Args = append(spec.Args, arg)
		}
	}
	return spec, nil
}

// renderArg turns a format argument into its verbatim source form.
func renderArg(v cty.Value, path cty.Path) (string, error) {
	if v.IsNull() {
		return "", &ShapeMismatchError{Path: path, Got: "null", Accepted: []string{"ID", "number", "expression"}}
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		return v.AsBigFloat().Text('g', -1), nil
	case cty.Bool:
		if v.True() {
			return "true", nil
		}
		return "false", nil
	default:
		if l, ok := expr.AsLambda(v); ok {
			return l.Source, nil
		}
		return "", &ShapeMismatchError{Path: path, Got: describeValue(v), Accepted: []string{"ID", "number", "expression"}}
	}
}

// textMapper renders string literals escaped and format specs as a runtime
// sprintf call.
func textMapper(cc *Context, v any) expr.Expr {
	switch t := v.(type) {
	case string:
		return expr.Str(t)
	case formatSpec:
		parts := append([]string{expr.Escape(t.Format)}, t.Args...)
		return expr.Raw(fmt.Sprintf("str_sprintf(%s).c_str()", strings.Join(parts, ", ")))
	default:
		return literalMapper(cc, v)
	}
}

var textShapes = []string{"string", "text sensor ID", "{format, args}"}

// Text validates displayed text: a string literal, a reference to a
// declared text sensor, or a structured {format, args} map formatted at
// runtime.
var Text = New(Config{
	Name:   "text",
	Target: "const char*",
	Shapes: textShapes,
	Source: &DynamicSource{Kind: entity.KindTextSensor, Accessor: "get_state().c_str()"},
	Rule:   textRule,
	Mapper: textMapper,
})
