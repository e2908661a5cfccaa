package timestep

import (
	"testing"

	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/stretchr/testify/assert"
)

func TestStepType(t *testing.T) {
	step := New(First, 0, 0.99, spec.NewPosition(0, 2), 0)
	assert.True(t, step.First())
	assert.False(t, step.Mid())
	assert.False(t, step.Last())
	assert.Equal(t, Nil, step.EndType())

	step.StepType = Last
	step.SetEnd(Timeout)
	assert.True(t, step.Last())
	assert.Equal(t, Timeout, step.EndType())
	assert.Equal(t, "Timeout", step.EndType().String())
}

func TestNewTransition(t *testing.T) {
	step := New(First, 0, 0.99, spec.NewPosition(1, 1), 0)
	next := New(Mid, -0.001, 0.99, spec.NewPosition(0, 1), 1)

	tr := NewTransition(step, spec.Left, next, spec.Up)
	assert.Equal(t, Transition{
		State:      spec.NewPosition(1, 1),
		Action:     spec.Left,
		Reward:     -0.001,
		Discount:   0.99,
		NextState:  spec.NewPosition(0, 1),
		NextAction: spec.Up,
	}, tr)
}
