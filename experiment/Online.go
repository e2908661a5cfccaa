package experiment

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gridsarsa/agent"
	env "github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/experiment/trackers"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/samuelfneumann/gridsarsa/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed. The Online experiment owns both the
// environment and the agent and is the only thing that steps either.
type Online struct {
	env.Environment
	agent.Agent
	episodes       int
	currentEpisode int
	trackers       []trackers.Tracker

	logger   *log.Logger
	progress *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetLogger sets a logger which is sent the board, the agent, the
// action taken, the reward received, and the TD error of the update
// on every step. A nil logger disables step logging.
func (o *Online) SetLogger(l *log.Logger) {
	o.logger = l
}

// SetProgressBar sets a progress bar which is incremented and
// displayed after every episode
func (o *Online) SetProgressBar(p *progressbar.ManualProgressBar) {
	o.progress = p
}

// Episodes returns the number of episodes that have been run
func (o *Online) Episodes() int {
	return o.currentEpisode
}

// RunEpisode runs a single episode of the experiment, returning
// whether the experiment has run all its episodes
func (o *Online) RunEpisode() (bool, error) {
	if o.currentEpisode >= o.episodes {
		return true, nil
	}

	step := o.Environment.Reset()
	if err := o.Agent.ObserveFirst(step); err != nil {
		return false, fmt.Errorf("runEpisode: %v", err)
	}
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		o.logStep(action)
		step, _ = o.Environment.Step(action)
		o.logReward(step)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
		if err := o.Agent.Step(); err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
		o.logTdError()
	}
	o.Agent.EndEpisode()
	o.logEnd(step)

	o.currentEpisode++
	if o.progress != nil {
		o.progress.Increment()
		o.progress.Display()
	}

	return o.currentEpisode >= o.episodes, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for {
		ended, err := o.RunEpisode()
		if err != nil {
			return err
		}
		if ended {
			return nil
		}
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

func (o *Online) logStep(action fmt.Stringer) {
	if o.logger == nil {
		return
	}
	o.logger.Print(o.Environment.Render())
	if s, ok := o.Agent.(fmt.Stringer); ok {
		o.logger.Print(s)
	}
	o.logger.Printf("Act: %v", action)
}

func (o *Online) logReward(step ts.TimeStep) {
	if o.logger == nil {
		return
	}
	o.logger.Printf("Rwd: %v", step.Reward)
}

func (o *Online) logTdError() {
	if o.logger == nil {
		return
	}
	if l, ok := o.Agent.(agent.TdErrorer); ok {
		o.logger.Printf("TD: %+.6f", l.LastTdError())
	}
}

func (o *Online) logEnd(step ts.TimeStep) {
	if o.logger == nil {
		return
	}
	o.logger.Print(o.Environment.Render())
	switch step.EndType() {
	case ts.TerminalStateReached:
		o.logger.Printf("GOAL!, t=%d", step.Number)
	default:
		o.logger.Printf("Episode ended (%v), t=%d", step.EndType(),
			step.Number)
	}
}
