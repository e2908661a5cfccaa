// Package render draws gridworlds and the greedy policy of an agent,
// either as coloured terminal text or as PNG images
package render

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/spec"
)

// Colour returns the same text as g.Render(), with each character
// coloured by the type of cell it shows. If colour is false, no
// escape codes are added.
func Colour(g *gridworld.GridWorld, colour bool) string {
	au := aurora.NewAurora(colour)
	board := g.Board()
	rows, cols := board.Dims()

	var s strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := spec.NewPosition(x, y)
			if p == g.Position() {
				s.WriteString(au.Bold(au.Cyan("@")).String())
				continue
			}

			cell := board.At(p)
			char := string(cell.Rune())
			switch cell {
			case gridworld.Wall:
				s.WriteString(au.White(char).String())
			case gridworld.Goal:
				s.WriteString(au.Green(char).String())
			case gridworld.Trap:
				s.WriteString(au.Red(char).String())
			default:
				s.WriteString(au.Blue(char).String())
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
