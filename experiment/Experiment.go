// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samuelfneumann/gridsarsa/agent"
	"github.com/samuelfneumann/gridsarsa/agent/tabular/sarsa"
	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/experiment/plot"
	"github.com/samuelfneumann/gridsarsa/experiment/trackers"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
)

// Experiment outlines structs that can run experiments. The Run()
// method will run all episodes, while the RunEpisode() function will
// run a single episode. Data is tracked by Trackers, which are sent
// every TimeStep of the experiment and save their data with Save().
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether all episodes are done

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment.
	Register(t trackers.Tracker)
}

// Type is the type of an experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Default experiment settings: a single episode of at most 100 steps
const (
	DefaultEpisodes int = 1
	DefaultMaxSteps int = gridworld.DefaultCutoff
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Episodes  int
	MaxSteps  int // Per episode
	AgentConf agent.TypedConfig

	// OutputDir is where tracked data and plots are saved. If empty,
	// nothing is saved.
	OutputDir string

	// Verbose logs the board, agent, action, and reward on every step
	Verbose bool
}

// DefaultConfig returns the default experiment configuration: one
// episode of at most 100 steps with a Sarsa agent using α = 0.1 and
// γ = 0.99, logging every step and saving nothing
func DefaultConfig() Config {
	return Config{
		Type:      OnlineExp,
		Episodes:  DefaultEpisodes,
		MaxSteps:  DefaultMaxSteps,
		AgentConf: agent.NewTypedConfig(sarsa.DefaultConfig()),
		Verbose:   true,
	}
}

// LoadConfig reads a JSON experiment Config from filename. Fields
// missing from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %v", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse %v: %v",
			filename, err)
	}
	return config, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return fmt.Errorf("validate: no such experiment type %q", c.Type)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("validate: episodes must be positive, got %d",
			c.Episodes)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("validate: max steps must be positive, got %d",
			c.MaxSteps)
	}
	if c.AgentConf.Config == nil {
		return fmt.Errorf("validate: no agent configured")
	}
	if err := c.AgentConf.Config.Validate(); err != nil {
		return fmt.Errorf("validate: invalid agent config: %v", err)
	}
	return nil
}

// Session is a single configured run of an experiment, together with
// the data tracked while running it
type Session struct {
	ID uuid.UUID

	Env       *gridworld.GridWorld
	Agent     agent.Agent
	Exp       *Online
	Returns   *trackers.Return
	Lengths   *trackers.EpisodeLength
	outputDir string
}

// NewSession creates the environment, agent, and trackers described by
// the Config. If logger is not nil and the Config is verbose, every
// step is logged to logger.
func (c Config) NewSession(logger *log.Logger) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newSession: %v", err)
	}

	e, _, err := gridworld.NewEnvironment(c.MaxSteps,
		gridworld.DefaultDiscount)
	if err != nil {
		return nil, fmt.Errorf("newSession: could not create "+
			"environment: %v", err)
	}

	a, err := c.AgentConf.Config.CreateAgent()
	if err != nil {
		return nil, fmt.Errorf("newSession: could not create agent: %v",
			err)
	}

	s := &Session{
		ID:        uuid.New(),
		Env:       e,
		Agent:     a,
		outputDir: c.OutputDir,
	}
	s.Returns = trackers.NewReturn(s.Filename("return", ".bin"))
	s.Lengths = trackers.NewEpisodeLength(s.Filename("length", ".bin"))

	s.Exp = NewOnline(e, a, c.Episodes, s.Returns, s.Lengths)
	if c.Verbose {
		s.Exp.SetLogger(logger)
	}

	return s, nil
}

// Filename returns the path of an output file of the Session. Output
// files are prefixed with the Session ID so that runs sharing an
// output directory do not overwrite each other.
func (s *Session) Filename(name, extension string) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%v-%v%v", s.ID, name,
		extension))
}

// Run runs the experiment. If the Session has an output directory,
// tracked data and a learning curve plot are saved there afterwards.
func (s *Session) Run() error {
	if err := s.Exp.Run(); err != nil {
		return fmt.Errorf("run: %v", err)
	}
	if s.outputDir == "" {
		return nil
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("run: could not create output directory: %v", err)
	}
	if err := s.Exp.Save(); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	err := plot.LearningCurve(s.Filename("curve", ".html"), s.Returns.Data(),
		s.Lengths.Data())
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}
	return nil
}
