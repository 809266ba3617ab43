package render

import "math"

// Grid maps canvas coordinates onto terminal cells.
type Grid struct {
	Width, Height float64 // canvas
	Cols, Rows    int
}

// Cell returns the 1-based column and row for a canvas point. ok is false
// when the point falls outside of the terminal.
func (g Grid) Cell(x, y float64) (col, row uint16, ok bool) {
	c := int(math.Floor(x/g.Width*float64(g.Cols))) + 1
	r := int(math.Floor(y/g.Height*float64(g.Rows))) + 1
	if c < 1 || c > g.Cols || r < 1 || r > g.Rows {
		return 0, 0, false
	}
	return uint16(c), uint16(r), true
}

// Centered is the column that centres a message of n cells.
func (g Grid) Centered(n int) uint16 {
	c := (g.Cols-n)/2 + 1
	if c < 1 {
		c = 1
	}
	return uint16(c)
}

// Row clamps a 1-based row onto the terminal.
func (g Grid) Row(r int) uint16 {
	if r > g.Rows {
		r = g.Rows
	}
	if r < 1 {
		r = 1
	}
	return uint16(r)
}
