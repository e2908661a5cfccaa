package sarsa

import (
	"encoding/json"
	"testing"

	"github.com/samuelfneumann/gridsarsa/agent"
	"github.com/samuelfneumann/gridsarsa/spec"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func newAgent(t *testing.T) *Sarsa {
	t.Helper()
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestValueLazyDefault(t *testing.T) {
	s := newAgent(t)
	p := spec.NewPosition(2, 2)

	assert.Equal(t, 0, s.Table().Len())
	assert.Equal(t, 0.0, s.Value(p, spec.Up))
	assert.Equal(t, 1, s.Table().Len())

	// Repeated lookups neither change the value nor grow the table
	assert.Equal(t, 0.0, s.Value(p, spec.Up))
	assert.Equal(t, 1, s.Table().Len())
}

func TestGreedyTieBreak(t *testing.T) {
	s := newAgent(t)
	p := spec.NewPosition(1, 1)

	assert.Equal(t, spec.Left, s.Greedy(p))
	assert.Equal(t, spec.NumDirections, s.Table().Len())

	for _, d := range spec.Directions {
		s.Table().Set(p, d, 0.5)
	}
	assert.Equal(t, spec.Left, s.Greedy(p))

	// Earlier directions win ties among the maximal values only
	s.Table().Set(p, spec.Left, 0.1)
	assert.Equal(t, spec.Right, s.Greedy(p))

	s.Table().Set(p, spec.Down, 0.7)
	assert.Equal(t, spec.Down, s.Greedy(p))

	s.Table().Set(p, spec.Up, 0.7)
	assert.Equal(t, spec.Up, s.Greedy(p))
}

func TestGreedyNegativeValues(t *testing.T) {
	s := newAgent(t)
	p := spec.NewPosition(0, 0)

	s.Table().Set(p, spec.Left, -3)
	s.Table().Set(p, spec.Right, -2)
	s.Table().Set(p, spec.Up, -5)
	s.Table().Set(p, spec.Down, -2)
	assert.Equal(t, spec.Right, s.Greedy(p))
}

func TestUpdate(t *testing.T) {
	s := newAgent(t)
	p := spec.NewPosition(1, 1)

	s.Update(p, spec.Left, -0.001, p, spec.Left)
	assert.InDelta(t, -0.0001, s.Value(p, spec.Left), tolerance)
	assert.InDelta(t, 0.0*0.9+(0.0*0.99+(-0.001))*0.1,
		s.Value(p, spec.Left), tolerance)

	// A second identical update bootstraps off the updated value
	s.Update(p, spec.Left, -0.001, p, spec.Left)
	want := -0.0001*0.9 + (-0.0001*0.99-0.001)*0.1
	assert.InDelta(t, want, s.Value(p, spec.Left), tolerance)
}

func TestUpdateWritesFirstStateKey(t *testing.T) {
	s := newAgent(t)
	s1 := spec.NewPosition(1, 2)
	s2 := spec.NewPosition(1, 1)

	s.Table().Set(s2, spec.Up, 1.0)
	s.Update(s1, spec.Up, 0.0, s2, spec.Up)

	assert.InDelta(t, 0.099, s.Value(s1, spec.Up), tolerance)
	assert.Equal(t, 1.0, s.Value(s2, spec.Up))

	// No entry was written under the mixed (s1.X, s2.Y) coordinates
	assert.Equal(t, 0.0, s.Value(spec.NewPosition(s1.X, s2.Y), spec.Left))
	assert.Equal(t, 1.0, s.Value(spec.NewPosition(1, 1), spec.Up))
}

func TestTdError(t *testing.T) {
	s := newAgent(t)
	tr := timestep.Transition{
		State:      spec.NewPosition(2, 0),
		Action:     spec.Right,
		Reward:     0.999,
		NextState:  spec.NewPosition(3, 0),
		NextAction: spec.Left,
	}
	assert.InDelta(t, 0.999, s.TdError(tr), tolerance)

	s.Table().Set(tr.State, tr.Action, 0.5)
	assert.InDelta(t, 0.499, s.TdError(tr), tolerance)
}

func TestStepSelectsBeforeUpdate(t *testing.T) {
	s := newAgent(t)
	start := spec.NewPosition(0, 2)

	first := timestep.New(timestep.First, 0, 0.99, start, 0)
	require.NoError(t, s.ObserveFirst(first))
	action := s.SelectAction(first)
	require.Equal(t, spec.Left, action)

	// Bumping into the left edge leaves the agent in place
	next := timestep.New(timestep.Mid, -0.001, 0.99, start, 1)
	require.NoError(t, s.Observe(action, next))
	require.NoError(t, s.Step())

	// Left was chosen for the next action before Q(start, Left) was
	// lowered, and that is the action the agent then takes
	assert.InDelta(t, -0.0001, s.Value(start, spec.Left), tolerance)

	// The TD error is taken before the update: r + γ·0 - 0
	assert.InDelta(t, -0.001, s.LastTdError(), tolerance)
	var _ agent.TdErrorer = s
	assert.Equal(t, spec.Left, s.SelectAction(next))

	// A fresh greedy lookup now prefers Right
	assert.Equal(t, spec.Right, s.Greedy(start))

	s.EndEpisode()
	assert.Equal(t, spec.Right, s.SelectAction(next))

	require.NoError(t, s.ObserveFirst(first))
	assert.Equal(t, 0.0, s.LastTdError())
}

func TestLearnerErrors(t *testing.T) {
	s := newAgent(t)
	p := spec.NewPosition(0, 2)

	assert.Error(t, s.ObserveFirst(timestep.New(timestep.Mid, 0, 1, p, 3)))
	require.NoError(t, s.ObserveFirst(timestep.New(timestep.First, 0, 1, p,
		0)))

	assert.Error(t, s.Step())
	assert.Error(t, s.Observe(spec.Direction(9),
		timestep.New(timestep.Mid, 0, 1, p, 1)))
	assert.Error(t, s.Observe(spec.Left,
		timestep.New(timestep.Mid, 0, 1, p, 4)))
}

func TestConfig(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{LearningRate: 1, Discount: 0}.Validate())
	assert.Error(t, Config{LearningRate: 0, Discount: 0.5}.Validate())
	assert.Error(t, Config{LearningRate: 1.1, Discount: 0.5}.Validate())
	assert.Error(t, Config{LearningRate: 0.1, Discount: -0.1}.Validate())
	assert.Error(t, Config{LearningRate: 0.1, Discount: 1.01}.Validate())

	_, err := New(Config{})
	assert.Error(t, err)

	a, err := DefaultConfig().CreateAgent()
	require.NoError(t, err)
	assert.True(t, DefaultConfig().ValidAgent(a))
}

func TestTypedConfigJSON(t *testing.T) {
	typed := NewTypedConfig(0.2, 0.9)
	data, err := json.Marshal(typed)
	require.NoError(t, err)

	var decoded agent.TypedConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, agent.GreedySarsaTabular, decoded.Type)
	assert.Equal(t, Config{LearningRate: 0.2, Discount: 0.9}, decoded.Config)

	// Missing fields are filled from the default config
	err = json.Unmarshal([]byte(`{"Type": "GreedySarsa-Tabular", `+
		`"Config": {"Discount": 0.5}}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, Config{LearningRate: DefaultLearningRate, Discount: 0.5},
		decoded.Config)

	err = json.Unmarshal([]byte(`{"Type": "GreedySarsa-Tabular"}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), decoded.Config)

	err = json.Unmarshal([]byte(`{"Type": "Unknown", "Config": {}}`),
		&decoded)
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	table := NewTable()
	m, positions := table.Matrix()
	assert.Nil(t, m)
	assert.Nil(t, positions)
	assert.Equal(t, "Table | empty", table.String())

	table.Set(spec.NewPosition(1, 1), spec.Down, 0.25)
	table.Set(spec.NewPosition(0, 1), spec.Right, -0.5)
	table.Set(spec.NewPosition(3, 0), spec.Left, 1)

	assert.Equal(t, []spec.Position{
		spec.NewPosition(3, 0),
		spec.NewPosition(0, 1),
		spec.NewPosition(1, 1),
	}, table.Positions())

	m, positions = table.Matrix()
	require.NotNil(t, m)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, spec.NumDirections, c)
	assert.Equal(t, spec.NewPosition(0, 1), positions[1])
	assert.Equal(t, -0.5, m.At(1, int(spec.Right)))
	assert.Equal(t, 0.25, m.At(2, int(spec.Down)))
	assert.Equal(t, 0.0, m.At(2, int(spec.Up)))

	// Matrix does not insert missing entries
	assert.Equal(t, 3, table.Len())
	assert.Contains(t, table.String(), "(1, 1)  Left: +0.000000")
}
