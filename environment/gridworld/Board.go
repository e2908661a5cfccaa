package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/spec"
)

// Board is a fixed-size grid of Cells. The board is stored as a
// flattened row-major slice, so that position (x, y) is stored at
// index y*cols + x.
type Board struct {
	rows, cols int
	cells      []Cell
}

// NewBoard returns a new board of r rows and c columns with every cell
// Empty. NewBoard panics if either dimension is not positive.
func NewBoard(r, c int) *Board {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("newBoard: dimensions must be positive, got "+
			"(%d, %d)", r, c))
	}
	return &Board{r, c, make([]Cell, r*c)}
}

// Dims gets the rows and columns of the Board
func (b *Board) Dims() (r, c int) {
	return b.rows, b.cols
}

// Contains returns whether p lies on the board
func (b *Board) Contains(p spec.Position) bool {
	return p.X >= 0 && p.X < b.cols && p.Y >= 0 && p.Y < b.rows
}

// At returns the cell at position p. At panics if p is not on the
// board.
func (b *Board) At(p spec.Position) Cell {
	return b.cells[b.index(p)]
}

// Set places cell c at position p. Set panics if p is not on the
// board.
func (b *Board) Set(p spec.Position, c Cell) {
	b.cells[b.index(p)] = c
}

// Find returns the positions of all cells of type c in row-major order
func (b *Board) Find(c Cell) []spec.Position {
	var found []spec.Position
	for i, cell := range b.cells {
		if cell == c {
			found = append(found, b.position(i))
		}
	}
	return found
}

// Validate returns an error if the board is not a playable layout for
// an agent starting at start: there must be exactly one Goal, the start
// must be an Empty cell, and the Goal must be reachable from the start.
func (b *Board) Validate(start spec.Position) error {
	goals := b.Find(Goal)
	if len(goals) != 1 {
		return fmt.Errorf("validate: expected exactly one goal, found %d",
			len(goals))
	}
	if !b.Contains(start) {
		return fmt.Errorf("validate: start %v is off the board", start)
	}
	if c := b.At(start); c != Empty {
		return fmt.Errorf("validate: start %v is on a %v cell", start, c)
	}
	if !b.Reachable(start, goals[0]) {
		return fmt.Errorf("validate: goal %v is unreachable from start %v",
			goals[0], start)
	}
	return nil
}

// Reachable returns whether there is a path of non-wall cells from
// `from` to `to` using single left, right, up, and down moves
func (b *Board) Reachable(from, to spec.Position) bool {
	if !b.Contains(from) || !b.Contains(to) {
		return false
	}
	if b.At(from) == Wall || b.At(to) == Wall {
		return false
	}

	visited := make([]bool, len(b.cells))
	visited[b.index(from)] = true
	queue := []spec.Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return true
		}

		for _, d := range spec.Directions {
			next := current.Add(d.Delta())
			if !b.Contains(next) || b.At(next) == Wall {
				continue
			}
			if i := b.index(next); !visited[i] {
				visited[i] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func (b *Board) index(p spec.Position) int {
	if !b.Contains(p) {
		panic(fmt.Sprintf("index: position %v out of bounds (%d, %d)", p,
			b.cols, b.rows))
	}
	return p.Y*b.cols + p.X
}

func (b *Board) position(i int) spec.Position {
	y := i / b.cols
	x := i - (y * b.cols)
	return spec.NewPosition(x, y)
}
