package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorNilAndNone(t *testing.T) {
	for _, v := range []interface{}{nil, "", "none"} {
		c, err := ParseColor(v)
		assert.NoError(t, err)
		assert.Equal(t, NoneColor(), c)
		assert.False(t, c.IsSet)
	}
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"six digit", "#ff0080", RGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}},
		{"three digit shorthand", "#f08", RGBA{R: 0xff, G: 0x00, B: 0x88, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.hex)
			assert.NoError(t, err)
			assert.True(t, c.IsSet)
			assert.Equal(t, tt.want, c.RGBA)
		})
	}
}

func TestParseColorRGBAFunc(t *testing.T) {
	c, err := ParseColor("rgba(10, 20, 30, 128)")
	assert.NoError(t, err)
	assert.True(t, c.IsSet)
	assert.Equal(t, RGBA{R: 10, G: 20, B: 30, A: 128}, c.RGBA)
}

func TestParseColorInvalid(t *testing.T) {
	tests := []interface{}{"#zzzzzz", "#1234", "rgba(1,2,3)", "purple", 5}
	for _, v := range tests {
		_, err := ParseColor(v)
		assert.Error(t, err)
	}
}

func TestRGBBuildsOpaqueColor(t *testing.T) {
	assert.Equal(t, RGBA{R: 1, G: 2, B: 3, A: 255}, RGB(1, 2, 3))
}
