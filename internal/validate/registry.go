package validate

import "sort"

// builtins indexes every property-kind validator by name for drivers that
// dispatch on configuration keys.
var builtins = map[string]*Validator{
	"angle":             Angle,
	"bool":              Bool,
	"color":             Color,
	"float":             Float,
	"font":              Font,
	"id_name":           IDName,
	"int":               Int,
	"milliseconds":      Milliseconds,
	"opacity":           Opacity,
	"pixels_or_percent": PixelsOrPercent,
	"radius":            Radius,
	"size":              Size,
	"stop_value":        StopValue,
	"text":              Text,
	"zoom":              Zoom,
}

// ByName returns the validator for a property kind.
func ByName(name string) (*Validator, bool) {
	v, ok := builtins[name]
	return v, ok
}

// Names returns all property-kind names, sorted for deterministic output.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
