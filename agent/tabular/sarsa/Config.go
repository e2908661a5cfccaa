package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/agent"
)

const (
	DefaultLearningRate float64 = 0.1
	DefaultDiscount     float64 = 0.99
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.GreedySarsaTabular, DefaultConfig())
}

// Config represents a configuration for the Sarsa agent
type Config struct {
	LearningRate float64 // α
	Discount     float64 // γ
}

// DefaultConfig returns a Config with α = 0.1 and γ = 0.99
func DefaultConfig() Config {
	return Config{LearningRate: DefaultLearningRate, Discount: DefaultDiscount}
}

// NewTypedConfig returns a new Config as an agent.TypedConfig so that
// it can easily be JSON serialized/deserialized without knowing the
// underlying concrete type.
func NewTypedConfig(learningRate, discount float64) agent.TypedConfig {
	return agent.NewTypedConfig(Config{
		LearningRate: learningRate,
		Discount:     discount,
	})
}

// CreateAgent creates the agent from the Config. The action-value
// table always starts empty.
func (c Config) CreateAgent() (agent.Agent, error) {
	s, err := New(c)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*Sarsa)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], got %v",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1], got %v", c.Discount)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.GreedySarsaTabular
}
