package timestep

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/spec"
)

// Transition is a single on-policy SARSA transition: the action taken
// in some state, the reward and discount that followed, the next
// state, and the action taken in the next state
type Transition struct {
	State      spec.Position
	Action     spec.Direction
	Reward     float64
	Discount   float64
	NextState  spec.Position
	NextAction spec.Direction
}

// NewTransition creates a Transition from two consecutive TimeSteps and
// the actions taken in each
func NewTransition(step TimeStep, action spec.Direction, nextStep TimeStep,
	nextAction spec.Direction) Transition {
	return Transition{
		State:      step.Observation,
		Action:     action,
		Reward:     nextStep.Reward,
		Discount:   nextStep.Discount,
		NextState:  nextStep.Observation,
		NextAction: nextAction,
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | %v %v --%.4f--> %v %v", t.State,
		t.Action, t.Reward, t.NextState, t.NextAction)
}
