package sarsa

import (
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"gonum.org/v1/gonum/floats"
)

// Greedy implements a greedy policy over a tabular action-value
// function. No exploration is performed.
type Greedy struct {
	table *Table
}

// NewGreedy creates a new Greedy policy acting on table
func NewGreedy(table *Table) *Greedy {
	return &Greedy{table}
}

// Action returns the direction with the largest action value at p.
// Directions are compared in enumeration order and ties go to the
// earliest, so Left is chosen when all values are equal.
func (g *Greedy) Action(p spec.Position) spec.Direction {
	values := make([]float64, spec.NumDirections)
	for i, d := range spec.Directions {
		values[i] = g.table.Value(p, d)
	}
	return spec.Directions[floats.MaxIdx(values)]
}

// SelectAction selects the greedy action in the TimeStep's state
func (g *Greedy) SelectAction(t timestep.TimeStep) spec.Direction {
	return g.Action(t.Observation)
}
