package constset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestOneOf(t *testing.T) {
	set := New("LV_OPA_", "TRANSP", "COVER")

	t.Run("bare suffix any case", func(t *testing.T) {
		for _, in := range []string{"cover", "COVER", "Cover"} {
			got, err := set.OneOf(cty.StringVal(in), nil)
			require.NoError(t, err, in)
			assert.Equal(t, "LV_OPA_COVER", got.Render())
		}
	})

	t.Run("full token", func(t *testing.T) {
		got, err := set.OneOf(cty.StringVal("LV_OPA_TRANSP"), nil)
		require.NoError(t, err)
		assert.Equal(t, "LV_OPA_TRANSP", got.Render())
	})

	t.Run("unknown suffix lists vocabulary", func(t *testing.T) {
		_, err := set.OneOf(cty.StringVal("opaque"), cty.GetAttrPath("opacity"))
		require.Error(t, err)

		var unknown *UnknownConstantError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "opaque", unknown.Got)
		assert.Contains(t, err.Error(), "transp, cover")
	})

	t.Run("non-string input rejected", func(t *testing.T) {
		_, err := set.OneOf(cty.NumberIntVal(3), nil)
		assert.Error(t, err)

		_, err = set.OneOf(cty.NullVal(cty.String), nil)
		assert.Error(t, err)
	})
}

func TestContains(t *testing.T) {
	set := New("LV_RADIUS_", "CIRCLE")
	assert.True(t, set.Contains(cty.StringVal("circle")))
	assert.False(t, set.Contains(cty.StringVal("square")))
	assert.False(t, set.Contains(cty.NumberIntVal(1)))
}

func TestChoices(t *testing.T) {
	set := New("LV_OPA_", "TRANSP", "COVER")
	assert.Equal(t, []string{"transp", "cover"}, set.Choices())
}
