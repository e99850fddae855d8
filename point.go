package plotter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a colored coordinate in canvas space.
//
// Points are values and cannot be changed once created;
// transformations always produce new points.
type Point struct {
	x     float32
	y     float32
	color Color
}

// NewPoint creates a point from numeric coordinates.
func NewPoint(x, y float32, c Color) Point {
	return Point{x: x, y: y, color: c}
}

// ParsePoint creates a point from textual coordinates,
// e.g. the contents of two input fields.
//
// Returns a parse error if either text is not a finite decimal number.
func ParsePoint(x, y string, c Color) (Point, error) {
	px, err := parseCoordinate(x)
	if err != nil {
		return Point{}, Wrap(err, "invalid x-coordinate")
	}

	py, err := parseCoordinate(y)
	if err != nil {
		return Point{}, Wrap(err, "invalid y-coordinate")
	}

	return NewPoint(px, py, c), nil
}

// X returns the x-coordinate.
func (p Point) X() float32 {
	return p.x
}

// Y returns the y-coordinate.
func (p Point) Y() float32 {
	return p.y
}

// Color returns the color of this point.
func (p Point) Color() Color {
	return p.color
}

// WithColor returns a copy of this point with a different color.
func (p Point) WithColor(c Color) Point {
	return Point{x: p.x, y: p.y, color: c}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v) %v", formatFloat(p.x), formatFloat(p.y), p.color.Hex())
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// parseCoordinate reads a float32 and rejects NaN, infinities and values
// that do not fit a float32.
func parseCoordinate(s string) (float32, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(trimmed, 32)
	if err != nil {
		return 0, newParseError(s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newParseError(s, strconv.ErrRange)
	}
	return float32(v), nil
}
