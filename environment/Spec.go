package environment

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the bounds of a reward or a discount.
type SpecType int

const (
	Reward SpecType = iota
	Discount
)

func (s SpecType) String() string {
	switch s {
	case Reward:
		return "Reward"
	case Discount:
		return "Discount"
	}
	return fmt.Sprintf("SpecType(%d)", int(s))
}

// Spec implements an environment specification, which tells the type
// and bounds of a scalar signal in an environment
type Spec struct {
	Type   SpecType
	Bounds r1.Interval
}

// NewSpec constructs a new environment specification. NewSpec panics
// if the lower bound exceeds the upper bound.
func NewSpec(t SpecType, min, max float64) Spec {
	if min > max {
		panic(fmt.Sprintf("newSpec: lower bound %v must not exceed upper "+
			"bound %v", min, max))
	}
	return Spec{Type: t, Bounds: r1.Interval{Min: min, Max: max}}
}

// Contains returns whether v lies within the bounds of the Spec
func (s Spec) Contains(v float64) bool {
	return v >= s.Bounds.Min && v <= s.Bounds.Max
}
