package sarsa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samuelfneumann/gridsarsa/spec"
	"gonum.org/v1/gonum/mat"
)

// Key indexes a single action value
type Key struct {
	Position  spec.Position
	Direction spec.Direction
}

// Table is a tabular action-value function. Action values that have
// never been looked up default to 0 and are added to the table the
// first time they are looked up. Entries are never removed.
type Table struct {
	values map[Key]float64
}

// NewTable returns a new, empty Table
func NewTable() *Table {
	return &Table{values: make(map[Key]float64)}
}

// Value returns the action value of taking direction d at position p.
// If the pair has never been seen, it is inserted with value 0 and 0
// is returned.
func (t *Table) Value(p spec.Position, d spec.Direction) float64 {
	key := Key{p, d}
	value, ok := t.values[key]
	if !ok {
		t.values[key] = 0.0
	}
	return value
}

// Set sets the action value of taking direction d at position p
func (t *Table) Set(p spec.Position, d spec.Direction, value float64) {
	t.values[Key{p, d}] = value
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	return len(t.values)
}

// Keys returns the keys of all entries, sorted by row, then column,
// then direction
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.values))
	for key := range t.values {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Position.Y != b.Position.Y {
			return a.Position.Y < b.Position.Y
		}
		if a.Position.X != b.Position.X {
			return a.Position.X < b.Position.X
		}
		return a.Direction < b.Direction
	})
	return keys
}

// Positions returns every position with at least one entry in the
// table, in the same order as Keys
func (t *Table) Positions() []spec.Position {
	var positions []spec.Position
	for _, key := range t.Keys() {
		n := len(positions)
		if n == 0 || positions[n-1] != key.Position {
			positions = append(positions, key.Position)
		}
	}
	return positions
}

// Matrix returns the table as a matrix with one row per position
// returned by Positions and one column per direction, in enumeration
// order. Missing entries are reported as 0 without being inserted. If
// the table is empty, Matrix returns nil.
func (t *Table) Matrix() (*mat.Dense, []spec.Position) {
	positions := t.Positions()
	if len(positions) == 0 {
		return nil, nil
	}

	m := mat.NewDense(len(positions), spec.NumDirections, nil)
	for i, p := range positions {
		for j, d := range spec.Directions {
			m.Set(i, j, t.values[Key{p, d}])
		}
	}
	return m, positions
}

func (t *Table) String() string {
	m, positions := t.Matrix()
	if m == nil {
		return "Table | empty"
	}

	var s strings.Builder
	fmt.Fprintf(&s, "Table | %d entries\n", t.Len())
	for i, p := range positions {
		fmt.Fprintf(&s, "%v", p)
		for j, d := range spec.Directions {
			fmt.Fprintf(&s, "  %v: %+.6f", d, m.At(i, j))
		}
		s.WriteRune('\n')
	}
	return s.String()
}
