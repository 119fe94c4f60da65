package validate

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/constset"
	"github.com/vk/widgengo/internal/expr"
)

// lengthInput is the tagged union of shapes accepted for one-axis lengths.
// Conversion is an exhaustive switch over these variants, so adding a shape
// without handling it fails loudly.
type lengthInput interface {
	lengthShape()
}

// pixels is an absolute length.
type pixels int64

// percentLen is a relative length as a fraction in [0, 1].
type percentLen float64

// sizeContent sizes a widget to its content.
type sizeContent struct{}

func (pixels) lengthShape()      {}
func (percentLen) lengthShape()  {}
func (sizeContent) lengthShape() {}

// pixelsOrPercentRule accepts a whole number (pixels) or a percentage
// ("NN%" string, or a bare fraction).
func pixelsOrPercentRule(_ *Context, raw cty.Value, path cty.Path) (any, error) {
	if i, ok := asInt(raw); ok {
		return pixels(i), nil
	}
	frac, err := parsePercent(raw, path)
	if err != nil {
		return nil, err
	}
	return percentLen(frac), nil
}

// sizeRule additionally accepts "size_content" (case-insensitive, bare
// string form only) and a "px" unit suffix on pixel values. A string with
// any other unit fails with an explicit error instead of falling through.
func sizeRule(cc *Context, raw cty.Value, path cty.Path) (any, error) {
	if !raw.IsNull() && raw.Type() == cty.String {
		s := raw.AsString()
		if strings.HasSuffix(s, "px") {
			i, err := strconv.ParseInt(strings.TrimSuffix(s, "px"), 10, 64)
			if err != nil {
				return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: sizeShapes}
			}
			return pixels(i), nil
		}
		if !strings.HasSuffix(s, "%") {
			if strings.ToUpper(s) == "SIZE_CONTENT" {
				return sizeContent{}, nil
			}
			return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: sizeShapes}
		}
	}
	return pixelsOrPercentRule(cc, raw, path)
}

// lengthMapper renders the length union. Percentages become lv_pct calls
// with truncating scaling to whole percent.
func lengthMapper(_ *Context, v any) expr.Expr {
	switch t := v.(type) {
	case pixels:
		return expr.Int(int64(t))
	case percentLen:
		return expr.NewCall("lv_pct", expr.Int(int64(float64(t)*100)))
	case sizeContent:
		return expr.Literal("LV_SIZE_CONTENT")
	default:
		return literalMapper(nil, v)
	}
}

var (
	pixelsOrPercentShapes = []string{"pixels", "..%"}
	sizeShapes            = []string{"size_content", "pixels", "..%"}
)

// PixelsOrPercent validates a length in one axis: a pixel count or a
// percentage.
var PixelsOrPercent = New(Config{
	Name:   "pixels_or_percent",
	Target: "uint32",
	Shapes: pixelsOrPercentShapes,
	Rule:   pixelsOrPercentRule,
	Mapper: lengthMapper,
})

// Size validates a widget size in one axis: "size_content", a pixel count
// (optionally suffixed "px"), or a percentage.
var Size = New(Config{
	Name:   "size",
	Target: "uint32",
	Shapes: sizeShapes,
	Rule:   sizeRule,
	Mapper: lengthMapper,
})

var radiusConsts = constset.New("LV_RADIUS_", "CIRCLE")

// Radius validates a corner radius: any size shape, a percentage, or the
// "circle" constant. A percentage that size has not already claimed is
// scaled into 0-255, consistent with opacity.
var Radius = New(Config{
	Name:   "radius",
	Target: "uint32",
	Shapes: append([]string{"circle"}, sizeShapes...),
	Rule: anyOf(
		append([]string{"circle"}, sizeShapes...),
		sizeRule,
		percentScaled(255),
		constRule(radiusConsts),
	),
	Mapper: lengthMapper,
})
