package report

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/albapepper/qbscore/internal/ranking"
)

// box is a rectangle in axes fractions: origin (X, Y) from the bottom-left
// corner of the data area, then width and height.
type box struct {
	X, Y, W, H float64
}

var (
	upperLeft  = box{X: 0.01, Y: 0.65, W: 0.35, H: 0.3}
	lowerRight = box{X: 0.65, Y: 0.05, W: 0.35, H: 0.3}
)

// colWeights splits the table width; the player column gets the most room.
var colWeights = []float64{0.4, 0.2, 0.2, 0.2}

// table draws a bordered grid of text cells pinned to a corner of the data
// area. It has no data range of its own.
type table struct {
	header []string
	rows   [][]string
	at     box
}

// moverTable lays out one mover group as Player, PasserPos, QBScorePos and
// the delta column named diffLabel.
func moverTable(players []ranking.RankedPlayer, diffLabel string, at box) *table {
	rows := make([][]string, len(players))
	for i, p := range players {
		rows[i] = []string{
			p.Player,
			strconv.Itoa(p.PasserRank),
			strconv.Itoa(p.QBScoreRank),
			strconv.Itoa(p.RankDiff),
		}
	}
	return &table{
		header: []string{"Player", "PasserPos", "QBScorePos", diffLabel},
		rows:   rows,
		at:     at,
	}
}

// Plot implements plot.Plotter.
func (t *table) Plot(c draw.Canvas, _ *plot.Plot) {
	size := c.Rectangle.Size()
	x0 := c.Min.X + vg.Length(t.at.X)*size.X
	y0 := c.Min.Y + vg.Length(t.at.Y)*size.Y
	w := vg.Length(t.at.W) * size.X
	h := vg.Length(t.at.H) * size.Y

	nrows := len(t.rows) + 1
	rowH := h / vg.Length(nrows)
	top := y0 + h

	c.FillPolygon(color.White, []vg.Point{
		{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: top}, {X: x0, Y: top},
	})

	border := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	cellStyle := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(10)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	headerStyle := cellStyle
	headerStyle.Font.Size = vg.Points(10.5)

	for r := 0; r < nrows; r++ {
		cells, sty := t.header, headerStyle
		if r > 0 {
			cells, sty = t.rows[r-1], cellStyle
		}
		yHi := top - vg.Length(r)*rowH
		yLo := yHi - rowH

		x := x0
		for col, weight := range colWeights {
			cw := vg.Length(weight) * w
			c.StrokeLines(border, []vg.Point{
				{X: x, Y: yLo}, {X: x + cw, Y: yLo}, {X: x + cw, Y: yHi}, {X: x, Y: yHi}, {X: x, Y: yLo},
			})
			if col < len(cells) {
				c.FillText(sty, vg.Point{X: x + cw/2, Y: (yLo + yHi) / 2}, cells[col])
			}
			x += cw
		}
	}
}
