package cmd

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gridsarsa/agent/tabular/sarsa"
	"github.com/samuelfneumann/gridsarsa/experiment"
	"github.com/samuelfneumann/gridsarsa/experiment/trackers"
	"github.com/samuelfneumann/gridsarsa/render"
	"github.com/samuelfneumann/gridsarsa/utils/progressbar"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train a SARSA agent on the gridworld",
		Long: `Train a greedy tabular SARSA agent on the gridworld.

By default a single episode is run and the board, the action-value
table, the action, and the reward are logged on every step.`,
		Example: `  # A single verbose episode
  gridsarsa run

  # 50 quiet episodes, saving data and a learning curve
  gridsarsa run --episodes 50 --quiet --output ./results

  # Save the learned greedy policy as an image
  gridsarsa run --episodes 20 --quiet --png policy.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.experimentConfig(cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return run(cmd, c, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configFile, "config", "c", "",
		"JSON experiment config file")
	flags.IntVarP(&o.episodes, "episodes", "e", experiment.DefaultEpisodes,
		"number of episodes to run")
	flags.IntVarP(&o.steps, "steps", "s", experiment.DefaultMaxSteps,
		"maximum number of steps per episode")
	flags.Float64Var(&o.alpha, "alpha", sarsa.DefaultLearningRate,
		"learning rate")
	flags.Float64Var(&o.gamma, "gamma", sarsa.DefaultDiscount,
		"discount factor")
	flags.StringVarP(&o.output, "output", "o", "",
		"directory to save tracked data and the learning curve to")
	flags.BoolVarP(&o.quiet, "quiet", "q", false,
		"do not log every step, show a progress bar instead")
	flags.BoolVar(&o.colour, "colour", true,
		"colour the final board")
	flags.StringVar(&o.png, "png", "",
		"save the final board and greedy policy as a PNG image")
	flags.IntVar(&o.cellSize, "cell-size", DefaultCellSize,
		"side length in pixels of a cell in the PNG image")

	return cmd
}

func run(cmd *cobra.Command, c experiment.Config, o runOptions) error {
	out := cmd.OutOrStdout()
	logger := log.New(out, "", 0)

	s, err := c.NewSession(logger)
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}
	if !c.Verbose {
		bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
			c.Episodes)
		s.Exp.SetProgressBar(bar)
		defer fmt.Fprintln(cmd.ErrOrStderr())
	}

	if err := s.Run(); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	fmt.Fprintf(out, "Session %v\n", s.ID)
	fmt.Fprint(out, render.Colour(s.Env, o.colour))
	if agent, ok := s.Agent.(fmt.Stringer); ok {
		fmt.Fprintln(out, agent)
	}

	lengths := make([]float64, len(s.Lengths.Data()))
	for i, l := range s.Lengths.Data() {
		lengths[i] = float64(l)
	}
	fmt.Fprintf(out, "Return  %v\n", trackers.Summarize(s.Returns.Data()))
	fmt.Fprintf(out, "Length  %v\n", trackers.Summarize(lengths))

	if c.OutputDir != "" {
		fmt.Fprintf(out, "Saved data and learning curve to %v\n",
			c.OutputDir)
	}

	if o.png != "" {
		a, ok := s.Agent.(*sarsa.Sarsa)
		if !ok {
			return fmt.Errorf("run: cannot draw the policy of agent %T",
				s.Agent)
		}
		if err := render.SavePNG(o.png, s.Env, a.Table(), o.cellSize); err != nil {
			return fmt.Errorf("run: %v", err)
		}
		fmt.Fprintf(out, "Saved policy image to %v\n", o.png)
	}

	return nil
}
