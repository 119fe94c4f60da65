package validate

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
	"github.com/vk/widgengo/internal/expr"
)

// colorHex is a packed 24-bit RGB value authored as an integer.
type colorHex uint32

// colorRule accepts a packed RGB integer, a reference to a declared color
// asset, or an inline expression passed through verbatim.
func colorRule(cc *Context, raw cty.Value, path cty.Path) (any, error) {
	if l, ok := expr.AsLambda(raw); ok {
		return l, nil
	}
	if i, ok := asInt(raw); ok {
		if i < 0 || i > 0xFFFFFF {
			return nil, &RangeError{Path: path, Got: float64(i), Min: 0, Max: 0xFFFFFF}
		}
		return colorHex(i), nil
	}
	val, err := refRule(entity.KindColorAsset)(cc, raw, path)
	if err != nil {
		if _, definitive := err.(*UnknownReferenceError); definitive {
			return nil, err
		}
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: colorShapes}
	}
	return val, nil
}

// colorMapper builds the color-construction expression. Referencing a
// declared color pulls in the optional color component at link time.
func colorMapper(cc *Context, v any) expr.Expr {
	switch t := v.(type) {
	case colorHex:
		return expr.NewCall("lv_color_hex", expr.Hex(uint32(t)))
	case entity.Entity:
		cc.Usage.RequireComponent("color")
		return expr.NewCall("lv_color_from", expr.Literal(t.ID))
	case expr.Lambda:
		return expr.Raw(t.Source)
	default:
		return literalMapper(cc, v)
	}
}

var colorShapes = []string{"hex color value", "color ID"}

// Color validates a color: a packed RGB integer, the ID of a declared color
// asset, or an inline expression.
var Color = New(Config{
	Name:   "color",
	Target: "lv_color_t",
	Shapes: colorShapes,
	Rule:   colorRule,
	Mapper: colorMapper,
})
