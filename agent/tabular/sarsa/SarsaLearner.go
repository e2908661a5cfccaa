package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// SarsaLearner implements the update functionality for the one-step
// Sarsa algorithm.
type SarsaLearner struct {
	table  *Table
	policy *Greedy

	step       timestep.TimeStep
	action     spec.Direction
	nextStep   timestep.TimeStep
	nextAction spec.Direction

	// selected is true once the action for nextStep has been chosen by
	// Step, and false until then
	selected bool
	observed bool
	tdError  float64

	learningRate float64
	discount     float64
}

// NewSarsaLearner creates a new SarsaLearner which updates table,
// bootstrapping off the actions that policy selects
func NewSarsaLearner(table *Table, policy *Greedy, learningRate,
	discount float64) (*SarsaLearner, error) {
	if learningRate <= 0 || learningRate > 1 {
		return nil, fmt.Errorf("newSarsaLearner: learning rate must be "+
			"in (0, 1], got %v", learningRate)
	}
	if discount < 0 || discount > 1 {
		return nil, fmt.Errorf("newSarsaLearner: discount must be in "+
			"[0, 1], got %v", discount)
	}

	return &SarsaLearner{
		table:        table,
		policy:       policy,
		learningRate: learningRate,
		discount:     discount,
	}, nil
}

// Update performs the Sarsa update
//
//	Q(s1, a1) <- Q(s1, a1) * (1 - α) + α * (r + γ * Q(s2, a2))
//
// Both action values are read with Table.Value, so unseen pairs are
// inserted with value 0 before the update is applied.
func (s *SarsaLearner) Update(s1 spec.Position, a1 spec.Direction,
	reward float64, s2 spec.Position, a2 spec.Direction) {
	nextQ := s.table.Value(s2, a2)
	nowQ := s.table.Value(s1, a1)

	newQ := nowQ*(1.0-s.learningRate) +
		(nextQ*s.discount+reward)*s.learningRate
	s.table.Set(s1, a1, newQ)
}

// TdError returns the Sarsa TD error on a transition
func (s *SarsaLearner) TdError(t timestep.Transition) float64 {
	nextQ := s.table.Value(t.NextState, t.NextAction)
	nowQ := s.table.Value(t.State, t.Action)
	return t.Reward + s.discount*nextQ - nowQ
}

// ObserveFirst observes and records the first episodic timestep
func (s *SarsaLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: should only be called on the "+
			"first timestep (current timestep = %d)", t.Number)
	}
	s.step = timestep.TimeStep{}
	s.nextStep = t
	s.selected = false
	s.observed = false
	s.tdError = 0
	return nil
}

// Observe observes and records any timestep other than the first timestep
func (s *SarsaLearner) Observe(action spec.Direction,
	nextStep timestep.TimeStep) error {
	if !action.Valid() {
		return fmt.Errorf("observe: invalid action %v", action)
	}
	if nextStep.Number != s.nextStep.Number+1 {
		return fmt.Errorf("observe: timestep %d does not follow timestep %d",
			nextStep.Number, s.nextStep.Number)
	}

	s.step = s.nextStep
	s.action = action
	s.nextStep = nextStep
	s.selected = false
	s.observed = true
	return nil
}

// Step selects the action to take in the most recently observed state
// and then updates the action value of the previous state and action
// towards the value of that next state and action. The next action is
// chosen before the update so that the action the agent then takes is
// the one that was bootstrapped from.
func (s *SarsaLearner) Step() error {
	if !s.observed {
		return fmt.Errorf("step: no transition observed")
	}
	s.observed = false

	s.nextAction = s.policy.Action(s.nextStep.Observation)
	s.selected = true

	t := timestep.NewTransition(s.step, s.action, s.nextStep, s.nextAction)
	s.tdError = s.TdError(t)
	s.Update(t.State, t.Action, t.Reward, t.NextState, t.NextAction)
	return nil
}

// LastTdError returns the TD error of the transition used in the most
// recent call to Step, computed before the update was applied
func (s *SarsaLearner) LastTdError() float64 {
	return s.tdError
}

// EndEpisode performs cleanup at the end of an episode
func (s *SarsaLearner) EndEpisode() {
	s.selected = false
	s.observed = false
}

// pending returns the action chosen for timestep t by the last call to
// Step, if there was one
func (s *SarsaLearner) pending(t timestep.TimeStep) (spec.Direction, bool) {
	if s.selected && t.Number == s.nextStep.Number &&
		t.Observation == s.nextStep.Observation {
		return s.nextAction, true
	}
	return spec.Left, false
}
