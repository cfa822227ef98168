// Package report draws the passer rating vs QBScore chart: every player as a
// labelled point, the least-squares trend line, arrows on the biggest movers
// and a summary table for each mover group.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/albapepper/qbscore/internal/pipeline"
	"github.com/albapepper/qbscore/internal/ranking"
)

const (
	DefaultWidth  = 22 * vg.Inch
	DefaultHeight = 14 * vg.Inch
)

var ErrNoPlayers = errors.New("no players to plot")

// RenderError wraps any failure while building, encoding or showing the
// figure.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render %s: %v", e.Op, e.Err) }

func (e *RenderError) Unwrap() error { return e.Err }

// Options sizes the figure.
type Options struct {
	Width  vg.Length
	Height vg.Length
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Build assembles the chart for res.
func Build(res *pipeline.Result) (*plot.Plot, error) {
	if res == nil || len(res.Players) == 0 {
		return nil, &RenderError{Op: "build", Err: ErrNoPlayers}
	}

	p := plot.New()
	p.Title.Text = "QB Performance: Passer Rating vs Context-Adjusted QBScore"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Passer Rating"
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Context-Adjusted QBScore (Scaled 0-100)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.Players))
	names := make([]string, len(res.Players))
	for i, pl := range res.Players {
		pts[i].X = pl.PasserRating
		pts[i].Y = pl.QBScore
		names[i] = pl.Player
	}

	// Points: translucent gray fill with a black edge.
	fill, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, &RenderError{Op: "scatter", Err: err}
	}
	fill.GlyphStyle = draw.GlyphStyle{
		Color:  color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xb3},
		Radius: vg.Points(6),
		Shape:  draw.CircleGlyph{},
	}
	edge, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, &RenderError{Op: "scatter", Err: err}
	}
	edge.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(6),
		Shape:  draw.RingGlyph{},
	}
	p.Add(fill, edge)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return nil, &RenderError{Op: "labels", Err: err}
	}
	labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].Rotation = math.Pi / 6
	}
	p.Add(labels)

	if improved := callouts(res.Movers.Improved, "+%d"); len(improved) > 0 {
		p.Add(newArrows(improved, improvedColor, 0.5, 3))
	}
	if worsened := callouts(res.Movers.Worsened, "%d"); len(worsened) > 0 {
		p.Add(newArrows(worsened, worsenedColor, 0.5, -5))
	}

	trend, err := trendLine(pts)
	if err != nil {
		return nil, &RenderError{Op: "trend", Err: err}
	}
	p.Add(trend)

	p.Add(
		moverTable(res.Movers.Improved, "Improvement", upperLeft),
		moverTable(res.Movers.Worsened, "Decline", lowerRight),
	)
	return p, nil
}

func callouts(players []ranking.RankedPlayer, format string) []callout {
	out := make([]callout, len(players))
	for i, pl := range players {
		out[i] = callout{X: pl.PasserRating, Y: pl.QBScore, Label: fmt.Sprintf(format, pl.RankDiff)}
	}
	return out
}

// trendLine fits score against rating and draws the fit at each player's
// rating as a dashed blue line.
func trendLine(pts plotter.XYs) (*plotter.Line, error) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	fit := Fit(xs, ys)

	line := make(plotter.XYs, len(pts))
	for i, x := range xs {
		line[i].X = x
		line[i].Y = fit.At(x)
	}
	sort.Slice(line, func(a, b int) bool { return line[a].X < line[b].X })

	l, err := plotter.NewLine(line)
	if err != nil {
		return nil, err
	}
	l.LineStyle = draw.LineStyle{
		Color:  color.RGBA{B: 0xff, A: 0xff},
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(8), vg.Points(5)},
	}
	return l, nil
}
