package gridworld

import "fmt"

// Cell is the contents of a single square of a GridWorld board
type Cell int

const (
	Empty Cell = iota
	Wall
	Goal
	Trap
)

// Score returns the reward for occupying the cell, before any step
// penalty is applied
func (c Cell) Score() float64 {
	switch c {
	case Goal:
		return 1.0
	case Trap:
		return -1.0
	default:
		return 0.0
	}
}

// Rune returns the character used to render the cell
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Goal:
		return 'G'
	case Trap:
		return 'T'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Goal:
		return "Goal"
	case Trap:
		return "Trap"
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}
