// Package gridworld implements a small deterministic 2D gridworld with a
// goal, a trap, and a wall
package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/samuelfneumann/gridsarsa/utils/intutils"
)

// Reference layout
const (
	Cols int = 4
	Rows int = 3

	// DefaultCutoff is the default number of steps per episode
	DefaultCutoff int = 100

	// DefaultDiscount is the default discount returned in TimeSteps
	DefaultDiscount float64 = 0.99
)

var (
	WallPosition  = spec.Position{X: 2, Y: 1}
	TrapPosition  = spec.Position{X: 3, Y: 2}
	GoalPosition  = spec.Position{X: 3, Y: 0}
	StartPosition = spec.Position{X: 0, Y: 2}
)

// GridWorld represents a gridworld environment
//
// The board never changes after construction, only the agent's
// position does. Positions outside the board are unrepresentable:
// moves are clamped at the edges and reverted when they would enter
// a wall.
type GridWorld struct {
	environment.Starter
	board    *Board
	position spec.Position

	ender       environment.Ender
	discount    float64
	currentStep timestep.TimeStep
}

// New returns the reference gridworld: 4 columns and 3 rows with a
// wall at (2, 1), a trap at (3, 2), a goal at (3, 0), and the agent
// starting at (0, 2). Episodes are cut off after DefaultCutoff steps.
func New() *GridWorld {
	g, _, err := NewEnvironment(DefaultCutoff, DefaultDiscount)
	if err != nil {
		panic(fmt.Sprintf("new: %v", err))
	}
	return g
}

// NewEnvironment returns the reference gridworld with episodes cut off
// after cutoff steps and discount placed in each TimeStep, as well as
// the first TimeStep of the first episode
func NewEnvironment(cutoff int, discount float64) (*GridWorld,
	timestep.TimeStep, error) {
	if cutoff <= 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("newEnvironment: "+
			"cutoff must be positive, got %d", cutoff)
	}
	if discount < 0 || discount > 1 {
		return nil, timestep.TimeStep{}, fmt.Errorf("newEnvironment: "+
			"discount must be in [0, 1], got %v", discount)
	}

	board := NewBoard(Rows, Cols)
	board.Set(WallPosition, Wall)
	board.Set(TrapPosition, Trap)
	board.Set(GoalPosition, Goal)

	starter := environment.NewSingleStart(StartPosition.X, StartPosition.Y)
	if err := board.Validate(starter.Start()); err != nil {
		panic(fmt.Sprintf("newEnvironment: invalid layout: %v", err))
	}

	g := &GridWorld{
		Starter:  starter,
		board:    board,
		discount: discount,
	}
	g.ender = environment.NewEnderList(
		environment.NewFunctionEnder(g.atGoal, timestep.TerminalStateReached),
		environment.NewStepLimit(cutoff),
	)

	return g, g.Reset(), nil
}

// Reset moves the agent back to the starting position and starts a
// new episode
func (g *GridWorld) Reset() timestep.TimeStep {
	g.position = g.Start()
	startStep := timestep.New(timestep.First, 0, g.discount, g.position, 0)
	g.currentStep = startStep
	return startStep
}

// Move moves the agent one cell in direction d. Moving past an edge
// leaves that coordinate unchanged, and moving into a wall leaves the
// position entirely unchanged.
func (g *GridWorld) Move(d spec.Direction) {
	previous := g.position
	dx, dy := d.Delta()

	next := spec.Position{
		X: intutils.Clip(previous.X+dx, 0, g.board.cols-1),
		Y: intutils.Clip(previous.Y+dy, 0, g.board.rows-1),
	}

	if g.board.At(next) == Wall {
		next = previous
	}
	g.position = next
}

// Step takes one action in the environment, returning the resulting
// TimeStep and whether the episode has ended
func (g *GridWorld) Step(action spec.Direction) (timestep.TimeStep, bool) {
	g.Move(action)

	number := g.currentStep.Number + 1
	step := timestep.New(timestep.Mid, g.Reward(), g.discount, g.position,
		number)
	last := g.ender.End(&step)

	g.currentStep = step
	return step, last
}

// CurrentTimeStep returns the most recent TimeStep
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// Position returns the agent's current position
func (g *GridWorld) Position() spec.Position {
	return g.position
}

// Board returns the gridworld's board. The board should not be
// modified.
func (g *GridWorld) Board() *Board {
	return g.board
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.board.Dims()
}

// Render returns the board as text, one line per row with `@` marking
// the agent
func (g *GridWorld) Render() string {
	var s strings.Builder
	for y := 0; y < g.board.rows; y++ {
		for x := 0; x < g.board.cols; x++ {
			p := spec.NewPosition(x, y)
			if p == g.position {
				s.WriteRune('@')
			} else {
				s.WriteRune(g.board.At(p).Rune())
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |   Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.position, GoalPosition, g.board.cols,
		g.board.rows)
}
