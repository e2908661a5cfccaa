// Package sarsa implements the one-step Sarsa algorithm with a
// tabular action-value function and a greedy policy.
package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// Sarsa implements the online, on-policy Sarsa algorithm. Actions are
// always selected greedily with respect to the current action values.
type Sarsa struct {
	*SarsaLearner
	policy *Greedy
	table  *Table
}

// New creates a new Sarsa agent with an empty action-value table
func New(config Config) (*Sarsa, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	table := NewTable()
	policy := NewGreedy(table)
	learner, err := NewSarsaLearner(table, policy, config.LearningRate,
		config.Discount)
	if err != nil {
		return nil, fmt.Errorf("new: cannot create learner: %v", err)
	}

	return &Sarsa{learner, policy, table}, nil
}

// SelectAction returns the action to take at timestep t. If Step has
// already chosen the action for t while computing its update target,
// that same action is returned. Otherwise the greedy action is
// returned.
func (s *Sarsa) SelectAction(t timestep.TimeStep) spec.Direction {
	if action, ok := s.pending(t); ok {
		return action
	}
	return s.policy.SelectAction(t)
}

// Value returns the action value of taking direction d at position p,
// inserting a 0 value if the pair has never been seen
func (s *Sarsa) Value(p spec.Position, d spec.Direction) float64 {
	return s.table.Value(p, d)
}

// Greedy returns the greedy direction at position p
func (s *Sarsa) Greedy(p spec.Position) spec.Direction {
	return s.policy.Action(p)
}

// Table returns the agent's action-value table
func (s *Sarsa) Table() *Table {
	return s.table
}

func (s *Sarsa) String() string {
	return fmt.Sprintf("Sarsa | α: %v  |  γ: %v\n%v", s.learningRate,
		s.discount, s.table)
}
