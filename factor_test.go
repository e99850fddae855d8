package plotter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor(t *testing.T) {
	f := F(2.5)
	assert.True(t, f.IsSet())
	assert.Equal(t, float32(2.5), f.Value())
	assert.Equal(t, float32(2.5), f.Or(7))
	assert.Equal(t, "2.5", f.String())

	assert.False(t, NoFactor.IsSet())
	assert.True(t, math.IsNaN(float64(NoFactor.Value())))
	assert.Equal(t, float32(7), NoFactor.Or(7))
	assert.Equal(t, "-", NoFactor.String())

	var zero Factor
	assert.Equal(t, NoFactor, zero)
}

func TestParseFactor(t *testing.T) {
	f, err := ParseFactor("")
	require.NoError(t, err)
	assert.False(t, f.IsSet())

	f, err = ParseFactor("  ")
	require.NoError(t, err)
	assert.False(t, f.IsSet())

	f, err = ParseFactor("-0.5")
	require.NoError(t, err)
	assert.Equal(t, F(-0.5), f)

	f, err = ParseFactor("0")
	require.NoError(t, err)
	assert.Equal(t, F(0), f)

	_, err = ParseFactor("x")
	assert.True(t, IsParseError(err))

	_, err = ParseFactor("NaN")
	assert.True(t, IsParseError(err))
}
