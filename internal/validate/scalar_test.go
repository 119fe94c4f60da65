package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestZoom(t *testing.T) {
	cc := newTestContext(t)

	tests := []struct {
		name string
		in   cty.Value
		want string
	}{
		{"identity", cty.NumberFloatVal(1.0), "256"},
		{"double", cty.NumberFloatVal(2.0), "512"},
		{"max", cty.NumberFloatVal(10.0), "2560"},
		{"min", cty.NumberFloatVal(0.1), "25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustEmit(t, Zoom, cc, tt.in).Render())
		})
	}

	t.Run("below range", func(t *testing.T) {
		err := mustFail(t, Zoom, cc, cty.NumberFloatVal(0.05))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("above range", func(t *testing.T) {
		err := mustFail(t, Zoom, cc, cty.NumberFloatVal(10.5))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("non-number", func(t *testing.T) {
		mustFail(t, Zoom, cc, cty.StringVal("big"))
	})
}

func TestAngle(t *testing.T) {
	cc := newTestContext(t)

	tests := []struct {
		name string
		in   cty.Value
		want string
	}{
		{"half turn", cty.NumberIntVal(180), "1800"},
		{"full turn", cty.NumberIntVal(360), "3600"},
		{"zero", cty.NumberIntVal(0), "0"},
		{"fractional", cty.NumberFloatVal(45.5), "455"},
		{"degree suffix", cty.StringVal("45°"), "450"},
		{"deg suffix", cty.StringVal("90deg"), "900"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustEmit(t, Angle, cc, tt.in).Render())
		})
	}

	t.Run("above range", func(t *testing.T) {
		err := mustFail(t, Angle, cc, cty.NumberIntVal(400))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("below range", func(t *testing.T) {
		err := mustFail(t, Angle, cc, cty.NumberIntVal(-1))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("bad string", func(t *testing.T) {
		mustFail(t, Angle, cc, cty.StringVal("north"))
	})
}

func TestStopValue(t *testing.T) {
	cc := newTestContext(t)

	assert.Equal(t, "0", mustEmit(t, StopValue, cc, cty.NumberIntVal(0)).Render())
	assert.Equal(t, "255", mustEmit(t, StopValue, cc, cty.NumberIntVal(255)).Render())

	err := mustFail(t, StopValue, cc, cty.NumberIntVal(256))
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)

	mustFail(t, StopValue, cc, cty.NumberFloatVal(0.5))
}

func TestIDName(t *testing.T) {
	cc := newTestContext(t)

	assert.Equal(t, "my_widget", mustEmit(t, IDName, cc, cty.StringVal("my_widget")).Render())

	mustFail(t, IDName, cc, cty.StringVal("Bad Name"))
	mustFail(t, IDName, cc, cty.NumberIntVal(3))
}
