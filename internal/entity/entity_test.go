package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"my_sensor", true},
		{"a", true},
		{"t3mp_2", true},
		{"", false},
		{"MySensor", false},
		{"2fast", false},
		{"with-dash", false},
		{"has space", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Declare("temp", KindNumericSensor))

	t.Run("lookup hit", func(t *testing.T) {
		e, ok := r.Lookup("temp")
		require.True(t, ok)
		assert.Equal(t, Entity{ID: "temp", Kind: KindNumericSensor}, e)
	})

	t.Run("lookup miss", func(t *testing.T) {
		_, ok := r.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		err := r.Declare("temp", KindColorAsset)
		assert.ErrorContains(t, err, "already declared")
	})

	t.Run("bad identifier rejected", func(t *testing.T) {
		err := r.Declare("Bad-ID", KindColorAsset)
		assert.Error(t, err)
	})
}

func TestParseKind(t *testing.T) {
	for keyword, want := range map[string]Kind{
		"sensor":        KindNumericSensor,
		"binary_sensor": KindBooleanSensor,
		"text_sensor":   KindTextSensor,
		"color":         KindColorAsset,
		"font":          KindFontAsset,
	} {
		got, err := ParseKind(keyword)
		require.NoError(t, err, keyword)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("servo")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "boolean sensor", KindBooleanSensor.String())
	assert.Equal(t, "font", KindFontAsset.String())
}
