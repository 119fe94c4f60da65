package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestFont(t *testing.T) {
	t.Run("builtin font emits symbol and records usage", func(t *testing.T) {
		cc := newTestContext(t)
		got := mustEmit(t, Font, cc, cty.StringVal("montserrat_14"))
		assert.Equal(t, "&lv_font_montserrat_14", got.Render())
		assert.Equal(t, []string{"montserrat_14"}, cc.Usage.BuiltinFonts())
		assert.Empty(t, cc.Usage.Components())
	})

	t.Run("builtin font matched case-insensitively", func(t *testing.T) {
		cc := newTestContext(t)
		got := mustEmit(t, Font, cc, cty.StringVal("Montserrat_14"))
		assert.Equal(t, "&lv_font_montserrat_14", got.Render())
	})

	t.Run("same builtin recorded once across properties", func(t *testing.T) {
		cc := newTestContext(t)
		mustEmit(t, Font, cc, cty.StringVal("montserrat_14"))
		mustEmit(t, Font, cc, cty.StringVal("montserrat_14"))
		assert.Equal(t, []string{"montserrat_14"}, cc.Usage.BuiltinFonts())
	})

	t.Run("font asset reference records asset and component", func(t *testing.T) {
		cc := newTestContext(t)
		got := mustEmit(t, Font, cc, cty.StringVal("heading_font"))
		assert.Equal(t, "heading_font_engine->get_lv_font()", got.Render())
		assert.Equal(t, []string{"heading_font"}, cc.Usage.FontAssets())
		assert.Equal(t, []string{"font"}, cc.Usage.Components())
	})

	t.Run("unknown reference fails without usage mutation", func(t *testing.T) {
		cc := newTestContext(t)
		err := mustFail(t, Font, cc, cty.StringVal("mystery_font"))

		var refErr *UnknownReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "mystery_font", refErr.ID)

		assert.Empty(t, cc.Usage.BuiltinFonts())
		assert.Empty(t, cc.Usage.FontAssets())
		assert.Empty(t, cc.Usage.Components())
	})

	t.Run("wrong entity kind fails", func(t *testing.T) {
		cc := newTestContext(t)
		err := mustFail(t, Font, cc, cty.StringVal("temp"))
		var refErr *UnknownReferenceError
		assert.ErrorAs(t, err, &refErr)
	})

	t.Run("non-string rejected", func(t *testing.T) {
		cc := newTestContext(t)
		err := mustFail(t, Font, cc, cty.NumberIntVal(14))
		var mismatch *ShapeMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("validation alone records nothing", func(t *testing.T) {
		cc := newTestContext(t)
		_, err := Font.Validate(context.Background(), cc, cty.StringVal("unscii_8"), nil)
		require.NoError(t, err)
		assert.Empty(t, cc.Usage.BuiltinFonts())
	})
}
