// Package spec implements the state and action specifications shared by
// environments and agents
package spec

import (
	"fmt"
	"strings"
)

// Position is the (x, y) location of an agent on a grid. The x
// coordinate indexes columns and the y coordinate indexes rows, with
// y = 0 being the top row.
type Position struct {
	X, Y int
}

// NewPosition returns a new Position at (x, y)
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by (dx, dy). No bounds checking is
// performed.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a single discrete action: one cell left, right, up, or
// down
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// NumDirections is the cardinality of the action space
const NumDirections int = 4

// Directions lists every Direction in enumeration order. Anything that
// iterates over actions, such as greedy action selection, uses this
// order.
var Directions = [NumDirections]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid returns whether d is one of the four enumerated directions
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// Delta returns the unclamped (dx, dy) offset of moving one cell in
// direction d. Up decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	panic(fmt.Sprintf("delta: invalid direction %d", int(d)))
}

// ParseDirection converts a case-insensitive direction name into a
// Direction
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Left, fmt.Errorf("parseDirection: no such direction %q", s)
}
