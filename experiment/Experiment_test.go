package experiment

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridsarsa/agent"
	"github.com/samuelfneumann/gridsarsa/agent/tabular/sarsa"
	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/experiment/trackers"
	"github.com/samuelfneumann/gridsarsa/utils/progressbar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, c Config, logger *log.Logger) *Session {
	t.Helper()
	s, err := c.NewSession(logger)
	require.NoError(t, err)
	return s
}

func TestSingleEpisodeReachesGoal(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(&out, "", 0)

	s := newSession(t, DefaultConfig(), logger)
	require.True(t, s.Env.Board().Reachable(gridworld.StartPosition,
		gridworld.GoalPosition))
	require.NoError(t, s.Run())

	assert.True(t, s.Env.IsTerminal())
	assert.Equal(t, 1, s.Exp.Episodes())

	lengths := s.Lengths.Data()
	require.Len(t, lengths, 1)
	assert.Less(t, lengths[0], DefaultMaxSteps)

	logged := out.String()
	assert.Contains(t, logged, "GOAL!")
	assert.Contains(t, logged, "Act: ")
	assert.Contains(t, logged, "Rwd: ")
	assert.Contains(t, logged, "Sarsa | α: ")
	assert.Contains(t, logged, "TD: -0.001000")

	// Every step logs the TD error of its update
	assert.Equal(t, lengths[0], bytes.Count(out.Bytes(), []byte("TD: ")))

	// Every step logs its reward
	assert.Equal(t, lengths[0], bytes.Count(out.Bytes(), []byte("Rwd: ")))
}

func TestEpisodesGetShorter(t *testing.T) {
	c := DefaultConfig()
	c.Episodes = 5
	c.Verbose = false

	s := newSession(t, c, nil)
	require.NoError(t, s.Run())

	lengths := s.Lengths.Data()
	require.Len(t, lengths, c.Episodes)
	for i := 1; i < len(lengths); i++ {
		assert.LessOrEqual(t, lengths[i], lengths[i-1], "episode %d", i)
	}
	assert.Less(t, lengths[len(lengths)-1], lengths[0])

	// The table persists across episodes
	a, ok := s.Agent.(*sarsa.Sarsa)
	require.True(t, ok)
	assert.Greater(t, a.Table().Len(), 0)

	// Running past the configured number of episodes does nothing
	done, err := s.Exp.RunEpisode()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Len(t, s.Lengths.Data(), c.Episodes)
}

func TestTimeout(t *testing.T) {
	c := DefaultConfig()
	c.MaxSteps = 2
	c.Verbose = false

	s := newSession(t, c, nil)
	require.NoError(t, s.Run())
	assert.False(t, s.Env.IsTerminal())
	assert.Equal(t, []int{2}, s.Lengths.Data())
}

func TestProgressBar(t *testing.T) {
	c := DefaultConfig()
	c.Episodes = 2
	c.Verbose = false

	var out bytes.Buffer
	s := newSession(t, c, nil)
	bar := progressbar.NewManualProgressBar(&out, 10, c.Episodes)
	s.Exp.SetProgressBar(bar)
	require.NoError(t, s.Run())

	assert.Equal(t, 1.0, bar.Progress())
	assert.Contains(t, out.String(), "100.00%")
}

func TestSessionOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := DefaultConfig()
	c.Episodes = 2
	c.Verbose = false
	c.OutputDir = dir

	s := newSession(t, c, nil)
	require.NoError(t, s.Run())

	returns, err := trackers.LoadData(s.Filename("return", ".bin"))
	require.NoError(t, err)
	assert.Equal(t, s.Returns.Data(), returns)

	lengths, err := trackers.LoadEpisodeLengths(s.Filename("length", ".bin"))
	require.NoError(t, err)
	assert.Equal(t, s.Lengths.Data(), lengths)

	_, err = os.Stat(s.Filename("curve", ".html"))
	assert.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(s.Filename("curve", ".html")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Type = "Offline"
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Episodes = 0
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.MaxSteps = -1
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.AgentConf = agent.TypedConfig{}
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.AgentConf = sarsa.NewTypedConfig(0, 0.99)
	assert.Error(t, c.Validate())

	_, err := c.NewSession(nil)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{
		"Episodes": 3,
		"AgentConf": {
			"Type": "GreedySarsa-Tabular",
			"Config": {"LearningRate": 0.2, "Discount": 0.9}
		},
		"Verbose": false
	}`)
	require.NoError(t, os.WriteFile(filename, data, 0o644))

	c, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, OnlineExp, c.Type)
	assert.Equal(t, 3, c.Episodes)
	assert.Equal(t, DefaultMaxSteps, c.MaxSteps)
	assert.False(t, c.Verbose)
	assert.Equal(t, sarsa.Config{LearningRate: 0.2, Discount: 0.9},
		c.AgentConf.Config)

	// Agent config fields missing from the file keep their defaults
	data = []byte(`{
		"AgentConf": {
			"Type": "GreedySarsa-Tabular",
			"Config": {"LearningRate": 0.5}
		}
	}`)
	require.NoError(t, os.WriteFile(filename, data, 0o644))
	c, err = LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, sarsa.Config{LearningRate: 0.5,
		Discount: sarsa.DefaultDiscount}, c.AgentConf.Config)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filename, []byte("{"), 0o644))
	_, err = LoadConfig(filename)
	assert.Error(t, err)
}
