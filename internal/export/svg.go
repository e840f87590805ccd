// Package export writes Dalitz-plot views as SVG documents.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/viz"
)

const (
	background = "#0a0a0a"
	boundary   = "#00cccc"
	eventFill  = "#ff88ff"
	margin     = 10.0
)

// CanvasToSVG draws every lit Braille dot of canvas as a circle, scale
// pixels apart.
func CanvasToSVG(w io.Writer, canvas *viz.Canvas, scale float64) error {
	bw := bufio.NewWriter(w)
	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4
	header(bw, width, height)

	fmt.Fprintf(bw, "<g fill=%q>\n", eventFill)
	for y := 0; y < 4*canvas.Height; y++ {
		for x := 0; x < 2*canvas.Width; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(bw, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, scale*0.4)
		}
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

// DalitzSVG draws the kinematic boundary of m as a closed path and each
// point as a dot, on a width x height document with m2_ab horizontal.
func DalitzSVG(w io.Writer, m kinematics.Masses, points []kinematics.Point, width, height int) error {
	if width <= 2*margin || height <= 2*margin {
		return fmt.Errorf("svg size %dx%d too small", width, height)
	}
	bw := bufio.NewWriter(w)
	header(bw, float64(width), float64(height))

	ab, bc := kinematics.BoundingBox(m, 400)
	sx := (float64(width) - 2*margin) / (ab[1] - ab[0])
	sy := (float64(height) - 2*margin) / (bc[1] - bc[0])
	project := func(x, y float64) (float64, float64) {
		return margin + (x-ab[0])*sx, float64(height) - margin - (y-bc[0])*sy
	}

	const steps = 400
	lower := make([][2]float64, 0, steps+1)
	upper := make([][2]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := ab[0] + (ab[1]-ab[0])*float64(i)/steps
		lo, hi, ok := kinematics.M2BCRange(x, m)
		if !ok {
			continue
		}
		lx, ly := project(x, lo)
		ux, uy := project(x, hi)
		lower = append(lower, [2]float64{lx, ly})
		upper = append(upper, [2]float64{ux, uy})
	}

	fmt.Fprintf(bw, "<path fill=\"none\" stroke=%q stroke-width=\"1.5\" d=\"", boundary)
	for i, p := range lower {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(bw, "%s%.2f,%.2f ", cmd, p[0], p[1])
	}
	for i := len(upper) - 1; i >= 0; i-- {
		fmt.Fprintf(bw, "L%.2f,%.2f ", upper[i][0], upper[i][1])
	}
	bw.WriteString("Z\"/>\n")

	fmt.Fprintf(bw, "<g fill=%q fill-opacity=\"0.6\">\n", eventFill)
	for _, p := range points {
		x, y := project(p.M2AB, p.M2BC)
		fmt.Fprintf(bw, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"1.2\"/>\n", x, y)
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

func header(w io.Writer, width, height float64) {
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill=%q/>
`, width, height, width, height, background)
}
