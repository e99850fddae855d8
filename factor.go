package plotter

import (
	"math"
	"strings"
)

// Factor is an optional scalar parameter for a transformation.
// The zero value is an absent factor.
type Factor struct {
	value float32
	set   bool
}

// NoFactor is the absent factor.
var NoFactor = Factor{}

// F creates a factor with the given value.
func F(v float32) Factor {
	return Factor{value: v, set: true}
}

// ParseFactor reads a factor from text.
// Blank text yields an absent factor; anything else must be a finite
// decimal number.
func ParseFactor(s string) (Factor, error) {
	if strings.TrimSpace(s) == "" {
		return NoFactor, nil
	}

	v, err := parseCoordinate(s)
	if err != nil {
		return NoFactor, err
	}
	return F(v), nil
}

// IsSet tells whether a value was supplied.
func (f Factor) IsSet() bool {
	return f.set
}

// Value returns the factor value, or NaN if the factor is absent.
func (f Factor) Value() float32 {
	if !f.set {
		return float32(math.NaN())
	}
	return f.value
}

// Or returns the factor value, or def if the factor is absent.
func (f Factor) Or(def float32) float32 {
	if !f.set {
		return def
	}
	return f.value
}

func (f Factor) String() string {
	if !f.set {
		return "-"
	}
	return formatFloat(f.value)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
