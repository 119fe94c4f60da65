package validate

import (
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/entity"
	"github.com/vk/widgengo/internal/expr"
)

// builtinFonts is the vocabulary of fonts compiled into the widget library.
var builtinFonts = []string{
	"montserrat_8", "montserrat_10", "montserrat_12", "montserrat_14",
	"montserrat_16", "montserrat_18", "montserrat_20", "montserrat_22",
	"montserrat_24", "montserrat_26", "montserrat_28", "montserrat_30",
	"montserrat_32", "montserrat_34", "montserrat_36", "montserrat_38",
	"montserrat_40", "montserrat_42", "montserrat_44", "montserrat_46",
	"montserrat_48",
	"dejavu_16_persian_hebrew", "simsun_16_cjk",
	"unscii_8", "unscii_16",
}

// builtinFont is a validated built-in font name.
type builtinFont string

func isBuiltinFont(name string) bool {
	lower := strings.ToLower(name)
	for _, f := range builtinFonts {
		if lower == f {
			return true
		}
	}
	return false
}

// fontRule accepts a built-in font name (case-insensitive) or a reference
// to a declared font asset. Lookup failure is an UnknownReferenceError and
// leaves the usage record untouched; resources are only recorded at emit.
func fontRule(cc *Context, raw cty.Value, path cty.Path) (any, error) {
	if raw.IsNull() || raw.Type() != cty.String {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: builtinFonts}
	}

	s := raw.AsString()
	if isBuiltinFont(s) {
		return builtinFont(strings.ToLower(s)), nil
	}

	if err := entity.ValidateID(s); err != nil {
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: append([]string{"font ID"}, builtinFonts...)}
	}
	ref, ok := cc.Entities.Lookup(s)
	if !ok || ref.Kind != entity.KindFontAsset {
		return nil, &UnknownReferenceError{Path: path, ID: s, Want: entity.KindFontAsset}
	}
	return ref, nil
}

// fontMapper emits the font reference and records what the build must link
// in: the built-in font symbol, or the external font engine plus the font
// companion component.
func fontMapper(cc *Context, v any) expr.Expr {
	switch t := v.(type) {
	case builtinFont:
		cc.Usage.AddBuiltinFont(string(t))
		return expr.Literal("&lv_font_" + string(t))
	case entity.Entity:
		cc.Usage.AddFontAsset(t.ID)
		cc.Usage.RequireComponent("font")
		return expr.Raw(t.ID + "_engine->get_lv_font()")
	default:
		return literalMapper(cc, v)
	}
}

// Font validates a font: one of the built-in font names (case-insensitive)
// or the ID of a declared font asset.
var Font = New(Config{
	Name:   "font",
	Target: "lv_font_t",
	Shapes: append([]string{"font ID"}, builtinFonts...),
	Rule:   fontRule,
	Mapper: fontMapper,
})
