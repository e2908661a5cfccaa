package cmd

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/agent/tabular/sarsa"
	"github.com/samuelfneumann/gridsarsa/experiment"
)

// runOptions holds the flags of the run command
type runOptions struct {
	configFile string
	episodes   int
	steps      int
	alpha      float64
	gamma      float64
	output     string
	quiet      bool
	colour     bool
	png        string
	cellSize   int
}

// experimentConfig builds the experiment configuration for a run.
// Settings are taken from, in increasing order of precedence: the
// defaults, the JSON config file, the environment, and the flags for
// which changed returns true.
func (o runOptions) experimentConfig(changed func(flag string) bool) (
	experiment.Config, error) {
	c := experiment.DefaultConfig()
	if o.configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(o.configFile); err != nil {
			return experiment.Config{}, fmt.Errorf("experimentConfig: %v",
				err)
		}
	}

	agentConf, ok := c.AgentConf.Config.(sarsa.Config)
	if !ok {
		return experiment.Config{}, fmt.Errorf("experimentConfig: "+
			"unsupported agent type %q", c.AgentConf.Type)
	}

	if err := fromEnv(&c, &agentConf); err != nil {
		return experiment.Config{}, fmt.Errorf("experimentConfig: %v", err)
	}

	// Flags
	if changed("episodes") {
		c.Episodes = o.episodes
	}
	if changed("steps") {
		c.MaxSteps = o.steps
	}
	if changed("alpha") {
		agentConf.LearningRate = o.alpha
	}
	if changed("gamma") {
		agentConf.Discount = o.gamma
	}
	if changed("output") {
		c.OutputDir = o.output
	}
	if o.quiet {
		c.Verbose = false
	}

	c.AgentConf = sarsa.NewTypedConfig(agentConf.LearningRate,
		agentConf.Discount)
	if err := c.Validate(); err != nil {
		return experiment.Config{}, fmt.Errorf("experimentConfig: %v", err)
	}
	return c, nil
}

// fromEnv overrides the experiment and agent configurations with the
// GRIDSARSA_* environment variables which are set
func fromEnv(c *experiment.Config, agentConf *sarsa.Config) error {
	if v, ok, err := lookupFloat(EnvAlpha); err != nil {
		return err
	} else if ok {
		agentConf.LearningRate = v
	}

	if v, ok, err := lookupFloat(EnvGamma); err != nil {
		return err
	} else if ok {
		agentConf.Discount = v
	}

	if v, ok, err := lookupInt(EnvEpisodes); err != nil {
		return err
	} else if ok {
		c.Episodes = v
	}

	if v, ok, err := lookupInt(EnvSteps); err != nil {
		return err
	} else if ok {
		c.MaxSteps = v
	}

	c.OutputDir = getEnvWithDefault(EnvOutput, c.OutputDir)
	return nil
}
