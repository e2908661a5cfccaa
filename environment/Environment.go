// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// Starter returns the starting state of each episode
type Starter interface {
	Start() spec.Position
}

// Ender determines when episodes should end
type Ender interface {
	// End determines whether the episode should end at the argument
	// TimeStep. If so, End marks the TimeStep as the last in the
	// episode and records why the episode ended.
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment with discrete
// positions and directional actions
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes
	Step(action spec.Direction) (timestep.TimeStep, bool)
	CurrentTimeStep() timestep.TimeStep
	RewardSpec() Spec
	DiscountSpec() Spec

	// Render returns a human-readable text view of the environment
	Render() string
}
