package environment

import "github.com/samuelfneumann/gridsarsa/spec"

// SingleStart starts every episode at the same position
type SingleStart struct {
	start spec.Position
}

// NewSingleStart returns a Starter which always starts at (x, y)
func NewSingleStart(x, y int) SingleStart {
	return SingleStart{spec.NewPosition(x, y)}
}

// Start returns the starting position
func (s SingleStart) Start() spec.Position {
	return s.start
}
