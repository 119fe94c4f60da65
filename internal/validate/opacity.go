package validate

import (
	"github.com/vk/widgengo/internal/constset"
)

var opacityConsts = constset.New("LV_OPA_", "TRANSP", "COVER")

var opacityShapes = append([]string{"..%"}, opacityConsts.Choices()...)

// Opacity validates an opacity: a percentage in [0, 1] scaled (truncating)
// into 0-255, or one of the transp/cover constants.
var Opacity = New(Config{
	Name:   "opacity",
	Target: "uint32",
	Shapes: opacityShapes,
	Rule: anyOf(opacityShapes,
		percentScaled(255),
		constRule(opacityConsts),
	),
})
