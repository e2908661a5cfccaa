package gridworld

import (
	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/spec"
	"gonum.org/v1/gonum/floats"
)

// StepPenalty is subtracted from the cell score on every step, so that
// shorter paths to the goal have a higher discounted return
const StepPenalty float64 = 0.001

// Reward returns the score of the cell the agent occupies minus the
// step penalty. The penalty is applied on terminal steps as well.
func (g *GridWorld) Reward() float64 {
	return g.board.At(g.position).Score() - StepPenalty
}

// IsTerminal returns whether the agent is on the goal. The trap is not
// terminal.
func (g *GridWorld) IsTerminal() bool {
	return g.atGoal(g.position)
}

func (g *GridWorld) atGoal(p spec.Position) bool {
	return g.board.At(p) == Goal
}

// Min returns the minimum reward attainable in the GridWorld
func (g *GridWorld) Min() float64 {
	return floats.Min(g.rewards())
}

// Max returns the maximum reward attainable in the GridWorld
func (g *GridWorld) Max() float64 {
	return floats.Max(g.rewards())
}

func (g *GridWorld) rewards() []float64 {
	rewards := make([]float64, 0, len(g.board.cells))
	for _, cell := range g.board.cells {
		rewards = append(rewards, cell.Score()-StepPenalty)
	}
	return rewards
}

// RewardSpec returns the reward specification of the environment
func (g *GridWorld) RewardSpec() environment.Spec {
	return environment.NewSpec(environment.Reward, g.Min(), g.Max())
}

// DiscountSpec returns the discount specification of the environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	return environment.NewSpec(environment.Discount, g.discount, g.discount)
}
