package plotter

import (
	"fmt"
	"strings"
)

// Transformation is one of the predefined geometric transformations.
type Transformation int

const (
	Scale Transformation = iota
	Translate
	Rotate
	MirrorX
	MirrorY
	MirrorCenter
	ShearX
	ShearY
)

var transformationNames = [...]string{
	Scale:        "Scale",
	Translate:    "Translate",
	Rotate:       "Rotate",
	MirrorX:      "MirrorX",
	MirrorY:      "MirrorY",
	MirrorCenter: "MirrorCenter",
	ShearX:       "ShearX",
	ShearY:       "ShearY",
}

// Transformations returns all transformations in display order.
func Transformations() []Transformation {
	all := make([]Transformation, len(transformationNames))
	for i := range transformationNames {
		all[i] = Transformation(i)
	}
	return all
}

// ParseTransformation looks up a transformation by name.
// Case is ignored, as are dashes and underscores ("mirror-x" is MirrorX).
func ParseTransformation(name string) (Transformation, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for i, n := range transformationNames {
		if strings.ToLower(n) == norm {
			return Transformation(i), nil
		}
	}
	return -1, fmt.Errorf("unknown transformation %q", name)
}

// Valid tells whether t is one of the predefined transformations.
func (t Transformation) Valid() bool {
	return t >= Scale && int(t) < len(transformationNames)
}

func (t Transformation) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Transformation(%d)", int(t))
	}
	return transformationNames[t]
}

// Arity is the number of user supplied factors a transformation consumes.
type Arity int

const (
	// NoFactors is used by the mirrors; they take their parameter from the
	// canvas size.
	NoFactors Arity = iota
	OneFactor
	TwoFactors
)

func (a Arity) String() string {
	switch a {
	case NoFactors:
		return "none"
	case OneFactor:
		return "one"
	case TwoFactors:
		return "two"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// Arity returns the number of factors for this transformation.
func (t Transformation) Arity() Arity {
	switch t {
	case Scale, Translate:
		return TwoFactors
	case Rotate, ShearX, ShearY:
		return OneFactor
	default:
		return NoFactors
	}
}

// HasOneFactor is true for Rotate and the shears.
func (t Transformation) HasOneFactor() bool {
	return t.Arity() == OneFactor
}

// HasTwoFactors is true for Scale and Translate.
func (t Transformation) HasTwoFactors() bool {
	return t.Arity() == TwoFactors
}
