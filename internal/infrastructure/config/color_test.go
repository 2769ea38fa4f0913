package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#352a40", color.RGBA{0x35, 0x2a, 0x40, 0xff}},
		{"#202020", color.RGBA{0x20, 0x20, 0x20, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"black", color.Black},
		{" Black ", color.Black},
		{"transparent", color.Transparent},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"#12", "purple", "#zzzzzz"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}
