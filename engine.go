package plotter

import (
	"fmt"
	"math"

	"github.com/akeil/plotter/internal/logging"
)

// Canvas holds the size of the drawing area in pixels.
// Only the mirror transformations make use of it.
type Canvas struct {
	Width  int
	Height int
}

func (c Canvas) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Op is a transformation together with its parameters.
//
// Two-factor transformations read X and Y. One-factor transformations read X
// and ignore Y. Mirrors ignore both and use the Canvas instead.
type Op struct {
	Transformation Transformation
	X              Factor
	Y              Factor
	Canvas         Canvas
}

func (o Op) String() string {
	switch o.Transformation.Arity() {
	case TwoFactors:
		return fmt.Sprintf("%v(%v, %v)", o.Transformation, o.X, o.Y)
	case OneFactor:
		return fmt.Sprintf("%v(%v)", o.Transformation, o.X)
	default:
		return fmt.Sprintf("%v(%v)", o.Transformation, o.Canvas)
	}
}

// Apply applies a single transformation to every point and returns the
// transformed points in the same order.
//
// Colors are kept. The input is only read, the result is always a new slice.
// Absent factors count as NaN.
func Apply(points []Point, t Transformation, x, y Factor, c Canvas) []Point {
	return Op{Transformation: t, X: x, Y: y, Canvas: c}.Apply(points)
}

// Apply applies the operation to every point, see Apply.
func (o Op) Apply(points []Point) []Point {
	logging.Debug("Apply %v to %d points", o, len(points))
	if !o.Transformation.Valid() {
		logging.Warning("Unknown transformation %v, points are left unchanged", o.Transformation)
	}

	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = o.Point(p)
	}
	return result
}

// Point applies the operation to a single point.
func (o Op) Point(p Point) Point {
	x, y := p.x, p.y

	switch o.Transformation {
	case Scale:
		x, y = x*o.X.Value(), y*o.Y.Value()
	case Translate:
		x, y = x+o.X.Value(), y+o.Y.Value()
	case Rotate:
		x, y = rotate(x, y, o.X.Value())
	case ShearX:
		// conversion rounds the product, no fused multiply-add
		x = x + float32(o.X.Value()*y)
	case ShearY:
		y = y + float32(o.X.Value()*x)
	case MirrorX:
		x = abs(x - float32(o.Canvas.Width))
	case MirrorY:
		y = abs(y - float32(o.Canvas.Height))
	case MirrorCenter:
		x = abs(x - float32(o.Canvas.Width))
		y = abs(y - float32(o.Canvas.Height))
	}

	return Point{x: x, y: y, color: p.color}
}

// rotate turns x,y counter clockwise around the origin.
// The angle is given in radians.
//
//  cos(angle)   -sin(angle)
//  sin(angle)    cos(angle)
//
func rotate(x, y, angle float32) (float32, float32) {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))

	rx := float32(x*cos) - float32(y*sin)
	ry := float32(x*sin) + float32(y*cos)
	return rx, ry
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
