package environment

import (
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// FunctionEnder ends an episode whenever a function of the position
// in the TimeStep's observation returns true.
type FunctionEnder struct {
	end     func(spec.Position) bool
	endType timestep.EndType
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes with
// end type endType when f returns true.
func NewFunctionEnder(f func(spec.Position) bool,
	endType timestep.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if f.end(t.Observation) {
		t.StepType = timestep.Last
		t.SetEnd(f.endType)
		return true
	}
	return false
}

// EnderList ends an episode as soon as any of its Enders does. Enders
// are consulted in order, so earlier Enders decide the EndType when
// more than one would end the episode on the same step.
type EnderList []Ender

// NewEnderList returns an Ender that combines the argument Enders
func NewEnderList(enders ...Ender) Ender {
	return EnderList(enders)
}

// End implements the Ender interface
func (e EnderList) End(t *timestep.TimeStep) bool {
	for _, ender := range e {
		if ender.End(t) {
			return true
		}
	}
	return false
}
