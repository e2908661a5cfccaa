package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/spec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ActionValuer is an action-value function which can be read as a
// matrix, one row per position and one column per direction
type ActionValuer interface {
	Matrix() (*mat.Dense, []spec.Position)
}

// Cell colours
var (
	EmptyColour  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	WallColour   = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	GoalColour   = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	TrapColour   = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	AgentColour  = color.RGBA{R: 30, G: 136, B: 229, A: 255}
	ArrowColour  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BorderColour = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// Draw draws the gridworld with cellSize pixel square cells. If q is
// not nil, an arrow pointing in the greedy direction is drawn on
// every position q has a value for. Drawing never adds entries to q.
func Draw(g *gridworld.GridWorld, q ActionValuer, cellSize int) image.Image {
	board := g.Board()
	rows, cols := board.Dims()
	size := float64(cellSize)

	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetColor(EmptyColour)
	dc.Clear()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dc.DrawRectangle(float64(x)*size, float64(y)*size, size, size)
			dc.SetColor(cellColour(board.At(spec.NewPosition(x, y))))
			dc.FillPreserve()
			dc.SetColor(BorderColour)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
	}

	// Agent
	p := g.Position()
	dc.DrawCircle(centre(p.X, size), centre(p.Y, size), size/4)
	dc.SetColor(AgentColour)
	dc.Fill()

	if q != nil {
		drawArrows(dc, q, size)
	}

	return dc.Image()
}

// SavePNG draws the gridworld as in Draw and saves it to filename
func SavePNG(filename string, g *gridworld.GridWorld, q ActionValuer,
	cellSize int) error {
	if cellSize <= 0 {
		return fmt.Errorf("savePNG: cell size must be positive, got %d",
			cellSize)
	}

	img := Draw(g, q, cellSize)
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("savePNG: %v", err)
	}
	return nil
}

func drawArrows(dc *gg.Context, q ActionValuer, size float64) {
	m, positions := q.Matrix()
	if m == nil {
		return
	}

	dc.SetColor(ArrowColour)
	dc.SetLineWidth(2)
	for i, p := range positions {
		d := spec.Directions[floats.MaxIdx(m.RawRowView(i))]
		dx, dy := d.Delta()

		cx, cy := centre(p.X, size), centre(p.Y, size)
		length := size * 0.35
		tipX, tipY := cx+float64(dx)*length, cy+float64(dy)*length
		dc.DrawLine(cx, cy, tipX, tipY)

		// Arrow head
		head := size * 0.1
		px, py := float64(-dy)*head, float64(dx)*head
		backX, backY := tipX-float64(dx)*head, tipY-float64(dy)*head
		dc.DrawLine(tipX, tipY, backX+px, backY+py)
		dc.DrawLine(tipX, tipY, backX-px, backY-py)
		dc.Stroke()
	}
}

func cellColour(c gridworld.Cell) color.Color {
	switch c {
	case gridworld.Wall:
		return WallColour
	case gridworld.Goal:
		return GoalColour
	case gridworld.Trap:
		return TrapColour
	default:
		return EmptyColour
	}
}

func centre(i int, size float64) float64 {
	return float64(i)*size + size/2
}
