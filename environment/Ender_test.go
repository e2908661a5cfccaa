package environment

import (
	"testing"

	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/stretchr/testify/assert"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	step := timestep.New(timestep.Mid, 0, 1, spec.NewPosition(0, 0), 2)
	assert.False(t, limit.End(&step))
	assert.True(t, step.Mid())

	step = timestep.New(timestep.Mid, 0, 1, spec.NewPosition(0, 0), 3)
	assert.True(t, limit.End(&step))
	assert.True(t, step.Last())
	assert.Equal(t, timestep.Timeout, step.EndType())
}

func TestEnderListOrder(t *testing.T) {
	goal := spec.NewPosition(3, 0)
	atGoal := NewFunctionEnder(func(p spec.Position) bool {
		return p == goal
	}, timestep.TerminalStateReached)
	ender := NewEnderList(atGoal, NewStepLimit(5))

	// Both enders would fire, the goal ender is consulted first
	step := timestep.New(timestep.Mid, 0, 1, goal, 5)
	assert.True(t, ender.End(&step))
	assert.Equal(t, timestep.TerminalStateReached, step.EndType())

	step = timestep.New(timestep.Mid, 0, 1, spec.NewPosition(0, 0), 5)
	assert.True(t, ender.End(&step))
	assert.Equal(t, timestep.Timeout, step.EndType())

	step = timestep.New(timestep.Mid, 0, 1, spec.NewPosition(0, 0), 1)
	assert.False(t, ender.End(&step))
	assert.Equal(t, timestep.Nil, step.EndType())
}

func TestSpec(t *testing.T) {
	s := NewSpec(Reward, -1.001, 0.999)
	assert.True(t, s.Contains(-0.001))
	assert.False(t, s.Contains(1.0))
	assert.Equal(t, "Reward", s.Type.String())

	assert.Panics(t, func() { NewSpec(Reward, 1, 0) })
}

func TestSingleStart(t *testing.T) {
	assert.Equal(t, spec.NewPosition(0, 2), NewSingleStart(0, 2).Start())
}
