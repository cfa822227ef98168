package report

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	improvedColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	worsenedColor = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
)

// callout is one annotated point: an arrow from the label to (X, Y).
type callout struct {
	X, Y  float64
	Label string
}

// arrows draws a labelled arrow for every callout. dx and dy place the label
// relative to the point, in data units.
type arrows struct {
	callouts []callout
	color    color.Color
	dx, dy   float64
}

func newArrows(callouts []callout, clr color.Color, dx, dy float64) *arrows {
	return &arrows{callouts: callouts, color: clr, dx: dx, dy: dy}
}

// Plot implements plot.Plotter.
func (a *arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	line := draw.LineStyle{Color: a.color, Width: vg.Points(1.5)}
	sty := text.Style{
		Color:   a.color,
		Font:    font.From(plot.DefaultFont, vg.Points(12)),
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}

	for _, co := range a.callouts {
		head := vg.Point{X: trX(co.X), Y: trY(co.Y)}
		tail := vg.Point{X: trX(co.X + a.dx), Y: trY(co.Y + a.dy)}
		head = shorten(tail, head, vg.Points(7))

		c.StrokeLine2(line, tail.X, tail.Y, head.X, head.Y)
		if tri := arrowHead(tail, head, vg.Points(8)); tri != nil {
			c.FillPolygon(a.color, tri)
		}
		c.FillText(sty, vg.Point{X: tail.X + vg.Points(2), Y: tail.Y}, co.Label)
	}
}

// DataRange implements plot.DataRanger so labels stay inside the axes.
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, co := range a.callouts {
		for _, pt := range [][2]float64{{co.X, co.Y}, {co.X + a.dx, co.Y + a.dy}} {
			xmin, xmax = math.Min(xmin, pt[0]), math.Max(xmax, pt[0])
			ymin, ymax = math.Min(ymin, pt[1]), math.Max(ymax, pt[1])
		}
	}
	return xmin, xmax, ymin, ymax
}

// shorten pulls head back towards tail by d so the arrow stops at the marker
// edge instead of its centre.
func shorten(tail, head vg.Point, d vg.Length) vg.Point {
	dx, dy := float64(head.X-tail.X), float64(head.Y-tail.Y)
	n := math.Hypot(dx, dy)
	if n <= float64(d) {
		return head
	}
	k := (n - float64(d)) / n
	return vg.Point{X: tail.X + vg.Length(dx*k), Y: tail.Y + vg.Length(dy*k)}
}

// arrowHead returns the triangle at head pointing away from tail.
func arrowHead(tail, head vg.Point, size vg.Length) []vg.Point {
	dx, dy := float64(head.X-tail.X), float64(head.Y-tail.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return nil
	}
	ux, uy := dx/n, dy/n
	s := float64(size)
	base := vg.Point{X: head.X - vg.Length(ux*s), Y: head.Y - vg.Length(uy*s)}
	px, py := vg.Length(-uy*s/2), vg.Length(ux*s/2)
	return []vg.Point{
		head,
		{X: base.X + px, Y: base.Y + py},
		{X: base.X - px, Y: base.Y - py},
	}
}
