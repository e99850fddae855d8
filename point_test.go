package plotter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	p := NewPoint(2, 3, Red)
	assert.Equal(t, float32(2), p.X())
	assert.Equal(t, float32(3), p.Y())
	assert.Equal(t, Red, p.Color())

	q := p.WithColor(Blue)
	assert.Equal(t, Blue, q.Color())
	assert.Equal(t, Red, p.Color(), "WithColor must not change the original")
	assert.Equal(t, p.X(), q.X())
	assert.Equal(t, p.Y(), q.Y())
}

func TestParsePoint(t *testing.T) {
	cases := []struct {
		x, y string
		expX float32
		expY float32
	}{
		{"2", "3", 2, 3},
		{"-1.5", "0.25", -1.5, 0.25},
		{" 10 ", "1e2", 10, 100},
		{"+4", "-0", 4, 0},
	}

	for _, c := range cases {
		p, err := ParsePoint(c.x, c.y, Black)
		require.NoError(t, err, "x=%q y=%q", c.x, c.y)
		assert.Equal(t, c.expX, p.X())
		assert.Equal(t, c.expY, p.Y())
		assert.Equal(t, Black, p.Color())
	}
}

func TestParsePointInvalid(t *testing.T) {
	cases := [][2]string{
		{"abc", "1"},
		{"1", "abc"},
		{"", "1"},
		{"1", " "},
		{"NaN", "1"},
		{"1", "Inf"},
		{"-infinity", "1"},
		{"1e39", "1"},
		{"1,5", "1"},
	}

	for _, c := range cases {
		p, err := ParsePoint(c[0], c[1], Black)
		require.Error(t, err, "x=%q y=%q", c[0], c[1])
		assert.True(t, IsParseError(err), "expected a parse error, got %v", err)
		assert.Equal(t, Point{}, p)
	}
}

func TestPointString(t *testing.T) {
	p := NewPoint(4, 1.5, Red)
	assert.Equal(t, "(4, 1.5) #FFFF0000", p.String())
}
