package plotter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))
	canvas := Canvas{Width: 100, Height: 50}

	valid := []Op{
		{Transformation: Scale, X: F(2), Y: F(3)},
		{Transformation: Scale, X: F(2)},
		{Transformation: Translate, Y: F(-1)},
		{Transformation: Translate, X: F(0), Y: F(4)},
		{Transformation: Rotate, X: F(0.5)},
		{Transformation: ShearX, X: F(-1)},
		{Transformation: ShearY, X: F(1), Y: F(0)},
		{Transformation: MirrorX, Canvas: canvas},
		{Transformation: MirrorY, Canvas: canvas},
		{Transformation: MirrorCenter, Canvas: canvas, X: F(0)},
	}
	for _, op := range valid {
		assert.NoError(t, op.Validate(), op.String())
	}

	invalid := []Op{
		{Transformation: Scale},
		{Transformation: Scale, X: F(0), Y: F(0)},
		{Transformation: Translate, X: F(nan), Y: F(1)},
		{Transformation: Translate, X: F(1), Y: F(inf)},
		{Transformation: Rotate},
		{Transformation: Rotate, X: F(0)},
		{Transformation: Rotate, Y: F(1)},
		{Transformation: ShearX, X: F(nan)},
		{Transformation: ShearY, X: F(inf)},
		{Transformation: MirrorX},
		{Transformation: MirrorY, Canvas: Canvas{Width: 10}},
		{Transformation: MirrorCenter, Canvas: Canvas{Width: -1, Height: 10}},
		{Transformation: Transformation(99), X: F(1), Y: F(1), Canvas: canvas},
	}
	for _, op := range invalid {
		err := op.Validate()
		if assert.Error(t, err, op.String()) {
			assert.True(t, IsValidationError(err), op.String())
		}
	}
}

func TestResolve(t *testing.T) {
	op := Op{Transformation: Scale, X: F(2)}.Resolve()
	assert.Equal(t, F(2), op.X)
	assert.Equal(t, F(0), op.Y)

	got := op.Apply([]Point{NewPoint(3, 4, Red)})
	assert.Equal(t, []Point{NewPoint(6, 0, Red)}, got)
}
