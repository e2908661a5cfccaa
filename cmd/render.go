package cmd

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/render"
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		colour   bool
		png      string
		cellSize int
		moves    []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the gridworld board",
		Long: `Print the gridworld board, one line per row: @ is the agent, # the
wall, G the goal, T the trap, and . an empty cell.

With --move, the agent is first moved by the given directions (left,
right, up, or down), printing the reward of each move. Moving stops
early once the episode ends.`,
		Args: cobra.NoArgs,
		Example: `  # The initial board
  gridsarsa render

  # Walk to the goal by hand
  gridsarsa render --move up,up,right,right,right`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			g := gridworld.New()

			for _, m := range moves {
				d, err := spec.ParseDirection(m)
				if err != nil {
					return fmt.Errorf("render: %v", err)
				}
				step, last := g.Step(d)
				fmt.Fprintf(out, "%v: %+.3f\n", d, step.Reward)
				if last {
					break
				}
			}
			fmt.Fprint(out, render.Colour(g, colour))

			if png == "" {
				return nil
			}
			if err := render.SavePNG(png, g, nil, cellSize); err != nil {
				return fmt.Errorf("render: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&colour, "colour", true, "colour the board")
	cmd.Flags().StringVar(&png, "png", "",
		"also save the board as a PNG image")
	cmd.Flags().StringSliceVarP(&moves, "move", "m", nil,
		"comma-separated directions to move the agent before printing")
	cmd.Flags().IntVar(&cellSize, "cell-size", DefaultCellSize,
		"side length in pixels of a cell in the PNG image")

	return cmd
}
