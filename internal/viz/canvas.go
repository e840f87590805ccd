package viz

import (
	"strings"

	"github.com/san-kum/dalitz/internal/kinematics"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = rune(0x2800)

// Canvas is a grid of Braille cells addressed in sub-pixels: Width*2 by
// Height*4, with y growing downwards.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// IsSet reports whether sub-pixel (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a Bresenham line between two sub-pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DalitzPlot draws the kinematic boundary of m and the given points on a
// w x h cell canvas, m2_ab on the horizontal axis and m2_bc on the vertical.
func DalitzPlot(m kinematics.Masses, points []kinematics.Point, w, h int) *Canvas {
	c := NewCanvas(w, h)
	ab, bc := kinematics.BoundingBox(m, 4*w)

	pw, ph := 2*w-1, 4*h-1
	project := func(x, y float64) (int, int) {
		px := int((x - ab[0]) / (ab[1] - ab[0]) * float64(pw))
		py := ph - int((y-bc[0])/(bc[1]-bc[0])*float64(ph))
		return px, py
	}

	// Trace the lower edge left to right and the upper edge right to left so
	// the boundary closes on itself.
	steps := 2 * pw
	var lower, upper [][2]int
	for i := 0; i <= steps; i++ {
		x := ab[0] + (ab[1]-ab[0])*float64(i)/float64(steps)
		lo, hi, ok := kinematics.M2BCRange(x, m)
		if !ok {
			continue
		}
		lx, ly := project(x, lo)
		ux, uy := project(x, hi)
		lower = append(lower, [2]int{lx, ly})
		upper = append(upper, [2]int{ux, uy})
	}
	path := lower
	for i := len(upper) - 1; i >= 0; i-- {
		path = append(path, upper[i])
	}
	for i := 1; i < len(path); i++ {
		c.DrawLine(path[i-1][0], path[i-1][1], path[i][0], path[i][1])
	}

	for _, p := range points {
		c.Set(project(p.M2AB, p.M2BC))
	}
	return c
}
